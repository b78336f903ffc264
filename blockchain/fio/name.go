package fio

import (
	"strings"

	xc "github.com/openweb3-io/txsigner/types"
)

const nameCharmap = ".12345abcdefghijklmnopqrstuvwxyz"

// Name is an account or action name packed into 64 bits: twelve 5 bit symbols
// followed by one 4 bit symbol.
type Name uint64

func nameSymbol(c byte) (uint64, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 6, true
	case c >= '1' && c <= '5':
		return uint64(c-'1') + 1, true
	case c == '.':
		return 0, true
	}
	return 0, false
}

// ParseName encodes s. Only ".12345a-z" are allowed and the 13th symbol must
// fit in 4 bits.
func ParseName(s string) (Name, error) {
	if len(s) > 13 {
		return 0, xc.NewErr(xc.ErrInvalidValue, "name %q is longer than 13 characters", s)
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		sym, ok := nameSymbol(s[i])
		if !ok {
			return 0, xc.NewErr(xc.ErrInvalidValue, "name %q has invalid character %q", s, s[i])
		}
		if i < 12 {
			n |= sym << (64 - 5*(i+1))
		} else {
			if sym > 0x0f {
				return 0, xc.NewErr(xc.ErrInvalidValue, "name %q has invalid 13th character %q", s, s[i])
			}
			n |= sym
		}
	}
	return Name(n), nil
}

func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String drops trailing dots.
func (n Name) String() string {
	var out [13]byte
	v := uint64(n)
	for i := 0; i < 13; i++ {
		if i == 0 {
			out[12] = nameCharmap[v&0x0f]
			v >>= 4
		} else {
			out[12-i] = nameCharmap[v&0x1f]
			v >>= 5
		}
	}
	return strings.TrimRight(string(out[:]), ".")
}

var (
	contractAddress = MustParseName("fio.address")
	contractToken   = MustParseName("fio.token")
	contractReqObt  = MustParseName("fio.reqobt")

	actionRegAddress   = MustParseName("regaddress")
	actionAddAddress   = MustParseName("addaddress")
	actionRenewAddress = MustParseName("renewaddress")
	actionTransfer     = MustParseName("trnsfiopubky")
	actionNewFundsReq  = MustParseName("newfundsreq")

	permissionActive = MustParseName("active")
)
