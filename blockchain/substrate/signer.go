package substrate

import (
	"context"
	"crypto/ed25519"

	"github.com/openweb3-io/txsigner/blockchain/substrate/address"
	"github.com/openweb3-io/txsigner/signer"
	"github.com/openweb3-io/txsigner/types"
)

type LocalSigner struct {
	key ed25519.PrivateKey
}

var _ signer.Signer = &LocalSigner{}

// NewLocalSigner takes the 32 byte ed25519 seed.
func NewLocalSigner(seed []byte) (*LocalSigner, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, types.NewErr(types.ErrInvalidPrivateKey, "ed25519 private key must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return &LocalSigner{ed25519.NewKeyFromSeed(seed)}, nil
}

func (s *LocalSigner) PublicKey(ctx context.Context) ([]byte, error) {
	return s.key.Public().(ed25519.PublicKey), nil
}

func (s *LocalSigner) Sign(ctx context.Context, payload types.TxDataToSign) (types.TxSignature, error) {
	return ed25519.Sign(s.key, payload), nil
}

// Address is the signer's account on a network.
func (s *LocalSigner) Address(network uint16) (string, error) {
	return address.Encode(s.key.Public().(ed25519.PublicKey), network)
}
