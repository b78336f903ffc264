// Package varint holds the integer primitives the wire codecs are built from:
// LEB128 varints, minimal big-endian integers and SCALE compact integers.
package varint

import (
	"encoding/binary"
	"math"

	xc "github.com/openweb3-io/txsigner/types"
)

// AppendUvarint appends the LEB128 encoding of v to dst.
func AppendUvarint(dst []byte, v uint64) []byte {
	return binary.AppendUvarint(dst, v)
}

// UvarintLen returns the number of bytes AppendUvarint writes for v.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}

// ReadUvarint decodes a LEB128 value from the start of b and returns it with the
// number of bytes consumed.
func ReadUvarint(b []byte) (uint64, int, error) {
	v, n := binary.Uvarint(b)
	switch {
	case n == 0:
		return 0, 0, xc.NewErr(xc.ErrTruncatedInput, "varint needs more than %d bytes", len(b))
	case n < 0:
		return 0, 0, xc.NewErr(xc.ErrInvalidValue, "varint overflows 64 bits")
	}
	return v, n, nil
}

// ReadUvarint32 is ReadUvarint for values that must fit in 32 bits.
func ReadUvarint32(b []byte) (uint32, int, error) {
	v, n, err := ReadUvarint(b)
	if err != nil {
		return 0, 0, err
	}
	if v > math.MaxUint32 {
		return 0, 0, xc.NewErr(xc.ErrInvalidValue, "varint %d overflows 32 bits", v)
	}
	return uint32(v), n, nil
}
