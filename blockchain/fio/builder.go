package fio

import (
	"encoding/hex"
	"strings"

	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
	"go.uber.org/zap"
)

type TxBuilder struct {
	chainID []byte
}

var _ builder.TxBuilder = &TxBuilder{}

// NewTxBuilder takes the hex chain id from the options. Without one every
// request must carry its own.
func NewTxBuilder(options ...builder.BuilderOption) (*TxBuilder, error) {
	opts, err := builder.NewOptions(options...)
	if err != nil {
		return nil, err
	}
	b := &TxBuilder{}
	if chainID, ok := opts.GetChainID(); ok && chainID != "" {
		b.chainID, err = hex.DecodeString(strings.TrimPrefix(chainID, "0x"))
		if err != nil {
			return nil, xc.NewErr(xc.ErrInvalidValue, "chain id %q is not hex", chainID)
		}
		if len(b.chainID) != ChainIDLength {
			return nil, xc.NewErr(xc.ErrInvalidValue, "chain id must be %d bytes, got %d", ChainIDLength, len(b.chainID))
		}
	}
	return b, nil
}

func (b *TxBuilder) Blockchain() xc.Blockchain {
	return xc.BlockchainFIO
}

func (b *TxBuilder) NewSigningInput() xc.SigningInput {
	return &SigningInput{}
}

func (b *TxBuilder) Build(input xc.SigningInput) (xc.Tx, error) {
	fioInput, ok := input.(*SigningInput)
	if !ok {
		return nil, xc.NewErr(xc.ErrInvalidInput, "expected fio signing input, got %T", input)
	}
	tx, err := NewTx(fioInput, b.chainID)
	if err != nil {
		return nil, err
	}
	action := tx.trx.Actions[0]
	zap.S().Debugw("built fio transaction",
		"action", action.Name.String(),
		"actor", tx.actor.String(),
		"expiration", tx.trx.Expiration,
		"ref_block_num", tx.trx.RefBlockNum,
	)
	return tx, nil
}

func (b *TxBuilder) NewLocalSigner(privateKey []byte) (signer.Signer, error) {
	return NewLocalSigner(privateKey)
}
