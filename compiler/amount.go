package compiler

import (
	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/builder/validation"
	xc "github.com/openweb3-io/txsigner/types"
	"go.uber.org/zap"
)

// SetHumanAmount replaces the amount of input with human, given in whole
// coins. The decimals come from the builder options, usually the chain config
// followed by an explicit override.
func SetHumanAmount(input xc.SigningInput, human string, options ...builder.BuilderOption) error {
	setter, ok := input.(xc.AmountSetter)
	if !ok {
		return xc.NewErr(xc.ErrNotSupported, "%s requests have no amount", input.GetBlockchain())
	}
	opts, err := builder.NewOptions(options...)
	if err != nil {
		return xc.WrapErr(xc.ErrInvalidValue, err)
	}
	decimals, ok := opts.GetDecimals()
	if !ok {
		return xc.NewErr(xc.ErrMissingField, "decimals are required to convert %s", human)
	}
	amount, err := validation.HumanToBlockchain(human, decimals)
	if err != nil {
		return err
	}
	if err := setter.SetAmount(amount); err != nil {
		return err
	}
	zap.S().Debugw("set amount",
		"blockchain", input.GetBlockchain(),
		"amount", amount.String(),
		"human", amount.ToHuman(decimals).String(),
		"decimals", decimals,
	)
	return nil
}
