package substrate

import (
	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
	"go.uber.org/zap"
)

type TxBuilder struct {
	network uint16
}

var _ builder.TxBuilder = &TxBuilder{}

// NewTxBuilder defaults to the polkadot network unless configured otherwise.
func NewTxBuilder(options ...builder.BuilderOption) (*TxBuilder, error) {
	opts, err := builder.NewOptions(options...)
	if err != nil {
		return nil, err
	}
	network, _ := opts.GetNetwork()
	return &TxBuilder{network: network}, nil
}

func (b *TxBuilder) Blockchain() xc.Blockchain {
	return xc.BlockchainSubstrate
}

func (b *TxBuilder) NewSigningInput() xc.SigningInput {
	return &SigningInput{}
}

func (b *TxBuilder) Build(input xc.SigningInput) (xc.Tx, error) {
	substrateInput, ok := input.(*SigningInput)
	if !ok {
		return nil, xc.NewErr(xc.ErrInvalidInput, "expected substrate signing input, got %T", input)
	}
	tx, err := NewExtrinsic(substrateInput, b.network)
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("built extrinsic",
		"spec_version", substrateInput.SpecVersion,
		"nonce", substrateInput.Nonce,
		"raw_accounts", tx.raw,
		"fee_asset", tx.feeAsset != nil,
		"metadata_hash", tx.metadataHash,
	)
	return tx, nil
}

func (b *TxBuilder) NewLocalSigner(privateKey []byte) (signer.Signer, error) {
	return NewLocalSigner(privateKey)
}
