package main

import (
	"github.com/openweb3-io/txsigner/cmd/xc/setup"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "xc",
		Short:        "Build, sign and compile transactions offline",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			args, err := setup.ArgsFromCmd(cmd)
			if err != nil {
				return err
			}
			if args.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
				if logger, err := zap.NewDevelopment(); err == nil {
					zap.ReplaceGlobals(logger)
				}
			}

			xcFactory, err := setup.LoadFactory(args)
			if err != nil {
				return err
			}

			if cmd.Name() == "chains" {
				cmd.SetContext(setup.CreateContext(xcFactory, nil))
				return nil
			}

			chainConfig, err := setup.LoadChain(xcFactory, args.Chain)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{
				"chain":      chainConfig.Chain,
				"blockchain": chainConfig.Blockchain,
			}).Info("chain")

			cmd.SetContext(setup.CreateContext(xcFactory, chainConfig))
			return nil
		},
	}
	setup.AddArgs(cmd)

	cmd.AddCommand(CmdChains())
	cmd.AddCommand(CmdSign())
	cmd.AddCommand(CmdPreImage())
	cmd.AddCommand(CmdCompile())
	return cmd
}

func main() {
	_ = newRootCmd().Execute()
}
