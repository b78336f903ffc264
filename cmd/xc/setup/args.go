package setup

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/openweb3-io/txsigner/factory"
	"github.com/openweb3-io/txsigner/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type ContextKey string

const (
	ContextXc    ContextKey = "xc"
	ContextChain ContextKey = "chain"

	EnvPrefix = "XC"
)

func WrapXc(ctx context.Context, xcFactory *factory.Factory) context.Context {
	ctx = context.WithValue(ctx, ContextXc, xcFactory)
	return ctx
}

func UnwrapXc(ctx context.Context) *factory.Factory {
	return ctx.Value(ContextXc).(*factory.Factory)
}

func WrapChain(ctx context.Context, chain *types.ChainConfig) context.Context {
	ctx = context.WithValue(ctx, ContextChain, chain)
	return ctx
}

func UnwrapChain(ctx context.Context) *types.ChainConfig {
	chain, _ := ctx.Value(ContextChain).(*types.ChainConfig)
	return chain
}

func CreateContext(xcFactory *factory.Factory, chain *types.ChainConfig) context.Context {
	ctx := context.Background()
	ctx = WrapXc(ctx, xcFactory)
	if chain != nil {
		ctx = WrapChain(ctx, chain)
	}
	return ctx
}

type Args struct {
	Chain   string
	Config  string
	Verbose bool
	// chains from the config file, replacing the defaults
	Chains []*types.ChainConfig
}

func AddArgs(cmd *cobra.Command) {
	cmd.PersistentFlags().String("chain", "", "Chain to use, e.g. ETH or DOT.")
	cmd.PersistentFlags().String("config", "", "Optional config file with a chains list.")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log protocol steps.")
}

// ArgsFromCmd reads flags, falling back to XC_ environment variables and the
// config file.
func ArgsFromCmd(cmd *cobra.Command) (*Args, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	args := &Args{
		Chain:   v.GetString("chain"),
		Config:  v.GetString("config"),
		Verbose: v.GetBool("verbose"),
	}
	if args.Config != "" {
		v.SetConfigFile(args.Config)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read config %s", args.Config)
		}
		if err := v.UnmarshalKey("chains", &args.Chains); err != nil {
			return nil, errors.Wrap(err, "invalid chains in config")
		}
		if args.Chain == "" {
			args.Chain = v.GetString("chain")
		}
	}
	return args, nil
}

func LoadFactory(args *Args) (*factory.Factory, error) {
	if len(args.Chains) == 0 {
		return factory.NewDefaultFactory(), nil
	}
	logrus.WithField("chains", len(args.Chains)).Debug("using configured chains")
	return factory.NewFactory(args.Chains)
}

func LoadChain(xcFactory *factory.Factory, chain string) (*types.ChainConfig, error) {
	if chain == "" {
		return nil, errors.New("--chain required")
	}
	var options []string
	for _, cfg := range xcFactory.Chains() {
		options = append(options, cfg.Chain)
	}
	cfg, err := xcFactory.GetChain(chain)
	if err != nil {
		return nil, errors.Errorf("invalid chain: %s\noptions: %v", chain, options)
	}
	return cfg, nil
}

// ReadInput reads a request file, or stdin for "-".
func ReadInput(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("--input required")
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
