package testutil

import (
	"encoding/hex"
	"strings"

	xc_types "github.com/openweb3-io/txsigner/types"
)

func FromHex(s string) []byte {
	bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return bz
}

func HumanToBlockchain(amount string, decimals int) xc_types.BigInt {
	h, err := xc_types.NewAmountHumanReadableFromStr(amount)
	if err != nil {
		panic(err)
	}
	return h.ToBlockchain(int32(decimals))
}
