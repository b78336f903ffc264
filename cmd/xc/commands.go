package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openweb3-io/txsigner/blockchain/fio"
	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/cmd/xc/setup"
	"github.com/openweb3-io/txsigner/compiler"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func printJson(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return nil
}

// printOutput prints the envelope and fails the command when it carries an error.
func printOutput(cmd *cobra.Command, out *compiler.Output) error {
	if err := printJson(cmd, out); err != nil {
		return err
	}
	if out.Error != nil {
		return fmt.Errorf("%s", out.Error.Message)
	}
	return nil
}

func loadRequest(cmd *cobra.Command) (builder.TxBuilder, xc.SigningInput, error) {
	xcFactory := setup.UnwrapXc(cmd.Context())
	chain := setup.UnwrapChain(cmd.Context())

	b, err := xcFactory.NewTxBuilder(chain)
	if err != nil {
		return nil, nil, err
	}
	path, _ := cmd.Flags().GetString("input")
	data, err := setup.ReadInput(path)
	if err != nil {
		return nil, nil, err
	}
	input, err := compiler.DecodeSigningInput(b, data)
	if err != nil {
		return nil, nil, err
	}
	if amount, _ := cmd.Flags().GetString("amount"); amount != "" {
		options := []builder.BuilderOption{builder.WithChainConfig(chain)}
		if cmd.Flags().Changed("decimals") {
			decimals, _ := cmd.Flags().GetInt32("decimals")
			options = append(options, builder.WithDecimals(decimals))
		}
		if err := compiler.SetHumanAmount(input, amount, options...); err != nil {
			return nil, nil, err
		}
	}
	return b, input, nil
}

// addRequestFlags registers the flags every request command reads.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().String("input", "", "Request file (json or yaml), - for stdin.")
	cmd.Flags().String("amount", "", "Optional amount in whole coins, replacing the request's amount.")
	cmd.Flags().Int32("decimals", 0, "Decimals for --amount, defaults to the chain's.")
}

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func CmdChains() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List information on all supported chains.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			xcFactory := setup.UnwrapXc(cmd.Context())
			type chainInfo struct {
				*xc.ChainConfig
				SignatureType   xc.SignatureType   `json:"signature_type"`
				PublicKeyFormat xc.PublicKeyFormat `json:"public_key_format"`
			}
			infos := []chainInfo{}
			for _, cfg := range xcFactory.Chains() {
				infos = append(infos, chainInfo{
					ChainConfig:     cfg,
					SignatureType:   cfg.Blockchain.SignatureAlgorithm(),
					PublicKeyFormat: cfg.Blockchain.PublicKeyFormat(),
				})
			}
			return printJson(cmd, infos)
		},
	}
}

func CmdSign() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a request with the private key it carries.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, input, err := loadRequest(cmd)
			if err != nil {
				return printOutput(cmd, compiler.NewOutput(nil, nil, err))
			}
			if len(input.GetPrivateKey()) == 0 {
				return printOutput(cmd, compiler.NewOutput(nil, nil, xc.NewErr(xc.ErrMissingField, "private_key is required to sign")))
			}
			xcFactory := setup.UnwrapXc(cmd.Context())
			chain := setup.UnwrapChain(cmd.Context())
			s, err := xcFactory.NewSigner(cmd.Context(), chain, input.GetPrivateKey())
			if err != nil {
				return printOutput(cmd, compiler.NewOutput(nil, nil, err))
			}
			signed, err := compiler.SignWith(cmd.Context(), b, input, s)
			return printOutput(cmd, compiler.NewOutput(signed, nil, err))
		},
	}
	addRequestFlags(cmd)
	return cmd
}

func CmdPreImage() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preimage",
		Aliases: []string{"hash"},
		Short:   "Print what a remote signer must sign for a request.",
		Args:    cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, input, err := loadRequest(cmd)
			if err != nil {
				return printOutput(cmd, compiler.NewOutput(nil, nil, err))
			}
			preImage, err := compiler.PreImageHash(b, input)
			return printOutput(cmd, compiler.NewOutput(nil, preImage, err))
		},
	}
	addRequestFlags(cmd)
	return cmd
}

func CmdCompile() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Attach an externally produced signature to a request.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain := setup.UnwrapChain(cmd.Context())
			sigFlag, _ := cmd.Flags().GetString("signature")
			pubFlag, _ := cmd.Flags().GetString("public-key")

			var (
				sig []byte
				err error
			)
			if chain.Blockchain == xc.BlockchainFIO && strings.HasPrefix(sigFlag, fio.SignaturePrefix) {
				sig, err = fio.ParseSignature(sigFlag)
			} else {
				sig, err = decodeHex(sigFlag)
				if err != nil {
					err = xc.WrapErr(xc.ErrInvalidSignature, err)
				}
			}
			if err != nil {
				return printOutput(cmd, compiler.NewOutput(nil, nil, err))
			}

			var pub []byte
			if pubFlag != "" {
				if chain.Blockchain == xc.BlockchainFIO && strings.HasPrefix(pubFlag, fio.PublicKeyPrefix) {
					pub, err = fio.ParsePublicKey(pubFlag)
				} else if pub, err = decodeHex(pubFlag); err != nil {
					err = xc.WrapErr(xc.ErrInvalidPublicKey, err)
				}
				if err != nil {
					return printOutput(cmd, compiler.NewOutput(nil, nil, err))
				}
			}

			b, input, err := loadRequest(cmd)
			if err != nil {
				return printOutput(cmd, compiler.NewOutput(nil, nil, err))
			}
			logrus.WithFields(logrus.Fields{
				"signature_len":  len(sig),
				"public_key_len": len(pub),
			}).Debug("compiling")
			signed, err := compiler.Compile(b, input, sig, pub)
			return printOutput(cmd, compiler.NewOutput(signed, nil, err))
		},
	}
	addRequestFlags(cmd)
	cmd.Flags().String("signature", "", "Hex signature, or SIG_K1_ text for fio.")
	cmd.Flags().String("public-key", "", "Optional hex public key, or FIO text for fio.")
	return cmd
}
