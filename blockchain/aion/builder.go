package aion

import (
	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
)

type TxBuilder struct{}

var _ builder.TxBuilder = &TxBuilder{}

func NewTxBuilder(options ...builder.BuilderOption) (*TxBuilder, error) {
	if _, err := builder.NewOptions(options...); err != nil {
		return nil, err
	}
	return &TxBuilder{}, nil
}

func (b *TxBuilder) Blockchain() xc.Blockchain {
	return xc.BlockchainAion
}

func (b *TxBuilder) NewSigningInput() xc.SigningInput {
	return &SigningInput{}
}

func (b *TxBuilder) Build(input xc.SigningInput) (xc.Tx, error) {
	aionInput, ok := input.(*SigningInput)
	if !ok {
		return nil, xc.NewErr(xc.ErrInvalidInput, "expected aion signing input, got %T", input)
	}
	return NewTx(aionInput)
}

func (b *TxBuilder) NewLocalSigner(privateKey []byte) (signer.Signer, error) {
	return NewLocalSignerFromSeed(privateKey)
}
