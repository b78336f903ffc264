package aion

import (
	"encoding/hex"
	"strings"

	xc "github.com/openweb3-io/txsigner/types"
)

const (
	AddressLength = 32
	addressPrefix = 0xa0
)

// ParseAddress decodes a 0x-prefixed hex account address.
func ParseAddress(address string) ([]byte, error) {
	bz, err := hex.DecodeString(strings.TrimPrefix(address, "0x"))
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidAddress, err)
	}
	if len(bz) != AddressLength || bz[0] != addressPrefix {
		return nil, xc.NewErr(xc.ErrInvalidAddress, "not an aion address: %s", address)
	}
	return bz, nil
}
