package aion

import (
	"context"
	"crypto/ed25519"

	"github.com/openweb3-io/txsigner/signer"
	"github.com/openweb3-io/txsigner/types"
)

type LocalSigner struct {
	key ed25519.PrivateKey
}

func NewLocalSigner(key ed25519.PrivateKey) signer.Signer {
	return &LocalSigner{key}
}

// NewLocalSignerFromSeed accepts the 32 byte private key seed.
func NewLocalSignerFromSeed(seed []byte) (signer.Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, types.NewErr(types.ErrInvalidPrivateKey, "ed25519 private key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return NewLocalSigner(ed25519.NewKeyFromSeed(seed)), nil
}

func (s *LocalSigner) PublicKey(ctx context.Context) ([]byte, error) {
	return s.key.Public().(ed25519.PublicKey), nil
}

func (s *LocalSigner) Sign(ctx context.Context, payload types.TxDataToSign) (types.TxSignature, error) {
	return ed25519.Sign(s.key, payload), nil
}
