package address

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	xc "github.com/openweb3-io/txsigner/types"
)

// FromHex parses a 0x-prefixed address. Mixed case input must carry a valid checksum.
func FromHex(address string) (common.Address, error) {
	mixed, err := common.NewMixedcaseAddressFromString(address)
	if err != nil {
		return common.Address{}, xc.NewErr(xc.ErrInvalidAddress, "%s is not a valid address", address)
	}
	original := strings.TrimPrefix(mixed.Original(), "0x")
	if original != strings.TrimPrefix(mixed.Address().Hex(), "0x") && hasUpper(original) && hasLower(original) {
		return common.Address{}, xc.NewErr(xc.ErrInvalidAddress, "%s has an invalid checksum", address)
	}
	return mixed.Address(), nil
}

func hasUpper(s string) bool {
	for _, c := range s {
		if c >= 'A' && c <= 'F' {
			return true
		}
	}
	return false
}

func hasLower(s string) bool {
	for _, c := range s {
		if c >= 'a' && c <= 'f' {
			return true
		}
	}
	return false
}
