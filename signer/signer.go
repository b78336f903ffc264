package signer

import (
	"context"

	"github.com/openweb3-io/txsigner/types"
)

//go:generate mockgen -destination=mock/signer.go -package=mock . Signer

// Signer produces raw signatures over a preimage digest. Local signers hold a
// private key; remote signers only forward the digest.
type Signer interface {
	PublicKey(ctx context.Context) ([]byte, error)
	Sign(ctx context.Context, payload types.TxDataToSign) (types.TxSignature, error)
}
