package signer

import (
	"context"

	"github.com/openweb3-io/txsigner/types"
)

type Options struct {
	failoverSignerCreator SignerCreator
}

type Option func(*Options)

func WithFailoverSignerCreator(v SignerCreator) Option {
	return func(o *Options) {
		o.failoverSignerCreator = v
	}
}

type SignerCreator = func(ctx context.Context, privateKey []byte) (Signer, error)

type signerProvider struct {
	opts       *Options
	creatorMap map[types.Blockchain]SignerCreator
}

func NewSignerProvider(o ...Option) SignerProvider {
	opts := &Options{}

	for _, opt := range o {
		opt(opts)
	}

	return &signerProvider{
		opts:       opts,
		creatorMap: make(map[types.Blockchain]SignerCreator),
	}
}

func (p *signerProvider) Register(blockchain types.Blockchain, creator SignerCreator) {
	p.creatorMap[blockchain] = creator
}

func (p *signerProvider) Provide(ctx context.Context, blockchain types.Blockchain, privateKey []byte) (Signer, error) {
	creator, ok := p.creatorMap[blockchain]
	if !ok {
		if p.opts.failoverSignerCreator == nil {
			return nil, types.NewErr(types.ErrUnsupportedBlockchain, "no signer for %s", blockchain)
		}

		creator = p.opts.failoverSignerCreator
	}

	return creator(ctx, privateKey)
}
