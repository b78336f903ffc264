package builder

import (
	"strconv"

	"github.com/pkg/errors"

	xc_types "github.com/openweb3-io/txsigner/types"
)

// All possible builder arguments go in here, privately available.
// Chain builders read the ones they need through ChainOptions.
type builderOptions struct {
	chainID  *string
	network  *uint16
	decimals *int32
}

// ChainOptions are the defaults a chain builder applies to requests that omit them.
type ChainOptions interface {
	GetChainID() (string, bool)
	GetNetwork() (uint16, bool)
	GetDecimals() (int32, bool)
}

var _ ChainOptions = &builderOptions{}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

func (opts *builderOptions) GetChainID() (string, bool) { return get(opts.chainID) }
func (opts *builderOptions) GetNetwork() (uint16, bool) { return get(opts.network) }
func (opts *builderOptions) GetDecimals() (int32, bool) { return get(opts.decimals) }

type BuilderOption func(opts *builderOptions) error

func WithChainID(chainID string) BuilderOption {
	return func(opts *builderOptions) error {
		opts.chainID = &chainID
		return nil
	}
}

func WithNetwork(network uint16) BuilderOption {
	return func(opts *builderOptions) error {
		opts.network = &network
		return nil
	}
}

func WithDecimals(decimals int32) BuilderOption {
	return func(opts *builderOptions) error {
		if decimals < 0 {
			return errors.Errorf("invalid decimals %d", decimals)
		}
		opts.decimals = &decimals
		return nil
	}
}

// WithChainConfig applies every default a chain config carries.
func WithChainConfig(cfg *xc_types.ChainConfig) BuilderOption {
	return func(opts *builderOptions) error {
		if cfg == nil {
			return nil
		}
		if cfg.ChainID != "" {
			if err := WithChainID(cfg.ChainID)(opts); err != nil {
				return err
			}
		}
		if cfg.Blockchain == xc_types.BlockchainSubstrate {
			if err := WithNetwork(cfg.Network)(opts); err != nil {
				return err
			}
		}
		if cfg.Decimals > 0 {
			return WithDecimals(cfg.Decimals)(opts)
		}
		return nil
	}
}

func NewOptions(options ...BuilderOption) (ChainOptions, error) {
	opts := &builderOptions{}
	for _, opt := range options {
		if err := opt(opts); err != nil {
			return nil, errors.Wrap(err, "invalid builder option")
		}
	}
	return opts, nil
}

// ChainIDUint64 parses the decimal chain id option.
func ChainIDUint64(opts ChainOptions) (uint64, bool, error) {
	chainID, ok := opts.GetChainID()
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseUint(chainID, 10, 64)
	if err != nil {
		return 0, false, errors.Wrapf(err, "chain id %q is not a decimal integer", chainID)
	}
	return v, true, nil
}
