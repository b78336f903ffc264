package blockchains

import (
	"github.com/openweb3-io/txsigner/blockchain/aion"
	evmbuilder "github.com/openweb3-io/txsigner/blockchain/evm/builder"
	"github.com/openweb3-io/txsigner/blockchain/fio"
	"github.com/openweb3-io/txsigner/blockchain/substrate"
	xcbuilder "github.com/openweb3-io/txsigner/builder"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/tidwall/btree"
)

type TxBuilderCreator func(options ...xcbuilder.BuilderOption) (xcbuilder.TxBuilder, error)

// ordered so listings are deterministic
var creators btree.Map[xc.Blockchain, TxBuilderCreator]

func RegisterTxBuilder(blockchain xc.Blockchain, creator TxBuilderCreator) {
	creators.Set(blockchain, creator)
}

func init() {
	RegisterTxBuilder(xc.BlockchainAion, func(options ...xcbuilder.BuilderOption) (xcbuilder.TxBuilder, error) {
		return aion.NewTxBuilder(options...)
	})

	RegisterTxBuilder(xc.BlockchainEVM, func(options ...xcbuilder.BuilderOption) (xcbuilder.TxBuilder, error) {
		return evmbuilder.NewTxBuilder(options...)
	})

	RegisterTxBuilder(xc.BlockchainFIO, func(options ...xcbuilder.BuilderOption) (xcbuilder.TxBuilder, error) {
		return fio.NewTxBuilder(options...)
	})

	RegisterTxBuilder(xc.BlockchainSubstrate, func(options ...xcbuilder.BuilderOption) (xcbuilder.TxBuilder, error) {
		return substrate.NewTxBuilder(options...)
	})
}

// Supported lists the registered drivers in order.
func Supported() []xc.Blockchain {
	var out []xc.Blockchain
	creators.Scan(func(blockchain xc.Blockchain, _ TxBuilderCreator) bool {
		out = append(out, blockchain)
		return true
	})
	return out
}

// NewTxBuilder returns the builder of the chain's driver with the chain's defaults applied.
func NewTxBuilder(cfg *xc.ChainConfig) (xcbuilder.TxBuilder, error) {
	creator, ok := creators.Get(cfg.Blockchain)
	if !ok {
		return nil, xc.NewErr(xc.ErrUnsupportedBlockchain, "no tx-builder defined for %q", cfg.Blockchain)
	}
	return creator(xcbuilder.WithChainConfig(cfg))
}
