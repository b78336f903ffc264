package types

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// BigInt is an amount in base units, as it is written on the wire.
type BigInt big.Int

// AmountHumanReadable is a decimal amount in whole coins.
type AmountHumanReadable decimal.Decimal

func (amount BigInt) String() string {
	v := big.Int(amount)
	return v.String()
}

// Int returns a copy of the amount as *big.Int.
func (amount BigInt) Int() *big.Int {
	v := big.Int(amount)
	return new(big.Int).Set(&v)
}

func (amount BigInt) Sign() int {
	v := big.Int(amount)
	return v.Sign()
}

// Uint64 returns the low 64 bits. Use validation.Uint64 when the field must not truncate.
func (amount BigInt) Uint64() uint64 {
	v := big.Int(amount)
	return v.Uint64()
}

func (amount *BigInt) Cmp(other *BigInt) int {
	return amount.Int().Cmp(other.Int())
}

func (amount *BigInt) IsZero() bool {
	return amount.Sign() == 0
}

func (amount *BigInt) ToHuman(decimals int32) AmountHumanReadable {
	return AmountHumanReadable(decimal.NewFromBigInt(amount.Int(), -decimals))
}

func NewBigIntFromUint64(u64 uint64) BigInt {
	return BigInt(*new(big.Int).SetUint64(u64))
}

func NewBigIntFromInt64(i64 int64) BigInt {
	return BigInt(*new(big.Int).SetInt64(i64))
}

// NewBigIntFromStr parses a decimal or 0x-prefixed amount. Invalid input yields zero.
func NewBigIntFromStr(str string) BigInt {
	v, ok := new(big.Int).SetString(str, 0)
	if !ok {
		return NewBigIntFromUint64(0)
	}
	return BigInt(*v)
}

func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	d, err := decimal.NewFromString(str)
	return AmountHumanReadable(d), err
}

// ToBlockchain shifts the amount into base units, dropping any fraction below one unit.
func (amount AmountHumanReadable) ToBlockchain(decimals int32) BigInt {
	return BigInt(*decimal.Decimal(amount).Shift(decimals).BigInt())
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

func (amount AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte(`"` + amount.String() + `"`), nil
}

func (amount *AmountHumanReadable) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	d, err := decimal.NewFromString(strings.Trim(string(p), `"`))
	if err != nil {
		return err
	}
	*amount = AmountHumanReadable(d)
	return nil
}

// Amounts travel as decimal strings so values past 2^53 survive JSON.
func (amount BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + amount.String() + `"`), nil
}

func (amount *BigInt) UnmarshalJSON(p []byte) error {
	if string(p) == "null" {
		return nil
	}
	str := strings.Trim(string(p), `"`)
	var v big.Int
	if _, ok := v.SetString(str, 10); !ok {
		return fmt.Errorf("not a valid big integer: %s", p)
	}
	*amount = BigInt(v)
	return nil
}
