package signer

import (
	"context"

	"github.com/openweb3-io/txsigner/types"
)

type SignerProvider interface {
	Register(blockchain types.Blockchain, creator SignerCreator)
	Provide(ctx context.Context, blockchain types.Blockchain, privateKey []byte) (Signer, error)
}
