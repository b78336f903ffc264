package evm

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/openweb3-io/txsigner/signer"
	"github.com/openweb3-io/txsigner/types"
)

type LocalSigner struct {
	key *ecdsa.PrivateKey
}

func NewLocalSigner(key *ecdsa.PrivateKey) signer.Signer {
	return &LocalSigner{key}
}

func NewLocalSignerFromBytes(privateKey []byte) (signer.Signer, error) {
	key, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, types.WrapErr(types.ErrInvalidPrivateKey, err)
	}
	return NewLocalSigner(key), nil
}

// PublicKey returns the uncompressed 65 byte key.
func (s *LocalSigner) PublicKey(ctx context.Context) ([]byte, error) {
	pubkey := s.key.Public().(*ecdsa.PublicKey)
	return crypto.FromECDSAPub(pubkey), nil
}

func (s *LocalSigner) Sign(ctx context.Context, payload types.TxDataToSign) (types.TxSignature, error) {
	return crypto.Sign(payload, s.key)
}
