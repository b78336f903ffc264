package validation

import (
	"math/big"

	xc_types "github.com/openweb3-io/txsigner/types"
	"github.com/shopspring/decimal"
)

var (
	maxUint64  = new(big.Int).SetUint64(^uint64(0))
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

func checkRange(field string, amount xc_types.BigInt, limit *big.Int, bits int) (*big.Int, error) {
	v := amount.Int()
	if v.Sign() < 0 {
		return nil, xc_types.NewErr(xc_types.ErrInvalidValue, "%s must not be negative", field)
	}
	if v.Cmp(limit) > 0 {
		return nil, xc_types.NewErr(xc_types.ErrInvalidValue, "%s %s overflows %d bits", field, v, bits)
	}
	return v, nil
}

// Uint64 checks that an amount fits a 64-bit wire field.
func Uint64(field string, amount xc_types.BigInt) (uint64, error) {
	v, err := checkRange(field, amount, maxUint64, 64)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// Uint128 checks that an amount fits a 128-bit balance.
func Uint128(field string, amount xc_types.BigInt) (*big.Int, error) {
	return checkRange(field, amount, maxUint128, 128)
}

// Uint256 checks that an amount fits a 256-bit word.
func Uint256(field string, amount xc_types.BigInt) (*big.Int, error) {
	return checkRange(field, amount, maxUint256, 256)
}

// ByteIndex rejects indices that do not fit in one byte instead of truncating them.
func ByteIndex(field string, index uint32) (byte, error) {
	if index > 0xff {
		return 0, xc_types.NewErr(xc_types.ErrInvalidCallIndex, "%s %d exceeds 255", field, index)
	}
	return byte(index), nil
}

// FixedLength checks that b is exactly n bytes, reporting kind otherwise.
func FixedLength(kind *xc_types.Error, field string, b []byte, n int) error {
	if len(b) != n {
		return xc_types.NewErr(kind, "%s must be %d bytes, got %d", field, n, len(b))
	}
	return nil
}

// HumanToBlockchain converts a decimal amount into base units, rejecting
// amounts with more precision than the asset has.
func HumanToBlockchain(human string, decimals int32) (xc_types.BigInt, error) {
	amount, err := xc_types.NewAmountHumanReadableFromStr(human)
	if err != nil {
		return xc_types.BigInt{}, xc_types.WrapErr(xc_types.ErrInvalidValue, err)
	}
	raised := decimal.Decimal(amount).Shift(decimals)
	if !raised.Equal(raised.Truncate(0)) {
		return xc_types.BigInt{}, xc_types.NewErr(xc_types.ErrInvalidValue, "%s has more than %d decimals", human, decimals)
	}
	return amount.ToBlockchain(decimals), nil
}
