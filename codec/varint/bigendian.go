package varint

import (
	"math/big"

	xc "github.com/openweb3-io/txsigner/types"
)

// BigEndian returns v as big-endian bytes without leading zeros. Zero is empty.
func BigEndian(v uint64) []byte {
	var buf [8]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte(v)
		v >>= 8
	}
	return append([]byte{}, buf[i:]...)
}

// BigEndianInt is BigEndian for arbitrary precision values.
func BigEndianInt(v *big.Int) ([]byte, error) {
	if v == nil {
		return []byte{}, nil
	}
	if v.Sign() < 0 {
		return nil, xc.NewErr(xc.ErrInvalidValue, "negative integer %s", v)
	}
	return v.Bytes(), nil
}

// ParseBigEndian decodes a minimal big-endian integer of at most 8 bytes.
func ParseBigEndian(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, xc.NewErr(xc.ErrInvalidValue, "integer of %d bytes overflows 64 bits", len(b))
	}
	if len(b) > 0 && b[0] == 0 {
		return 0, xc.NewErr(xc.ErrInvalidValue, "integer has leading zero bytes")
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}
