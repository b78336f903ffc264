package factory

import (
	"context"
	"strings"

	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/factory/blockchains"
	"github.com/openweb3-io/txsigner/factory/defaults/chains"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/tidwall/btree"
)

type IFactory interface {
	GetChain(chain string) (*xc.ChainConfig, error)
	NewTxBuilder(cfg *xc.ChainConfig) (builder.TxBuilder, error)
	NewSigner(ctx context.Context, cfg *xc.ChainConfig, privateKey []byte) (signer.Signer, error)
}

type Factory struct {
	chains  *btree.Map[string, *xc.ChainConfig]
	signers signer.SignerProvider
}

var _ IFactory = &Factory{}

func chainKey(chain string) string {
	return strings.ToUpper(chain)
}

// NewFactory serves the given chains. Chain names are case-insensitive and must
// be unique.
func NewFactory(configs []*xc.ChainConfig, options ...signer.Option) (*Factory, error) {
	f := &Factory{
		chains:  btree.NewMap[string, *xc.ChainConfig](0),
		signers: signer.NewSignerProvider(options...),
	}
	for _, cfg := range configs {
		if _, err := blockchains.NewTxBuilder(cfg); err != nil {
			return nil, err
		}
		if _, exists := f.chains.Set(chainKey(cfg.Chain), cfg); exists {
			return nil, xc.NewErr(xc.ErrInvalidInput, "chain %s is configured twice", cfg.Chain)
		}
	}
	for _, blockchain := range blockchains.Supported() {
		blockchain := blockchain
		f.signers.Register(blockchain, func(ctx context.Context, privateKey []byte) (signer.Signer, error) {
			b, err := blockchains.NewTxBuilder(&xc.ChainConfig{Blockchain: blockchain})
			if err != nil {
				return nil, err
			}
			return b.NewLocalSigner(privateKey)
		})
	}
	return f, nil
}

// NewDefaultFactory serves the embedded chain defaults.
func NewDefaultFactory() *Factory {
	f, err := NewFactory(chains.Default)
	if err != nil {
		panic(err)
	}
	return f
}

// Chains lists the configured chains by name.
func (f *Factory) Chains() []*xc.ChainConfig {
	out := make([]*xc.ChainConfig, 0, f.chains.Len())
	f.chains.Scan(func(_ string, cfg *xc.ChainConfig) bool {
		out = append(out, cfg)
		return true
	})
	return out
}

func (f *Factory) GetChain(chain string) (*xc.ChainConfig, error) {
	cfg, ok := f.chains.Get(chainKey(chain))
	if !ok {
		return nil, xc.NewErr(xc.ErrNotSupported, "unknown chain %q", chain)
	}
	return cfg, nil
}

func (f *Factory) NewTxBuilder(cfg *xc.ChainConfig) (builder.TxBuilder, error) {
	return blockchains.NewTxBuilder(cfg)
}

// NewSigner returns the local signer of the chain's key type unless a failover
// signer was configured for unsupported drivers.
func (f *Factory) NewSigner(ctx context.Context, cfg *xc.ChainConfig, privateKey []byte) (signer.Signer, error) {
	return f.signers.Provide(ctx, cfg.Blockchain, privateKey)
}
