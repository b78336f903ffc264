package varint

import (
	"encoding/binary"
	"math/big"
	"slices"

	xc "github.com/openweb3-io/txsigner/types"
)

// Compact integers carry their size class in the two low bits of the first byte.
const (
	compactSingle = 0b00
	compactTwo    = 0b01
	compactFour   = 0b10
	compactBig    = 0b11

	compactSingleLimit = 1 << 6
	compactTwoLimit    = 1 << 14
	compactFourLimit   = 1 << 30

	// the bignum header holds len-4 in six bits
	compactMaxBytes = 63 + 4
)

// AppendCompactUint64 appends the compact encoding of v.
func AppendCompactUint64(dst []byte, v uint64) []byte {
	switch {
	case v < compactSingleLimit:
		return append(dst, byte(v)<<2|compactSingle)
	case v < compactTwoLimit:
		return binary.LittleEndian.AppendUint16(dst, uint16(v)<<2|compactTwo)
	case v < compactFourLimit:
		return binary.LittleEndian.AppendUint32(dst, uint32(v)<<2|compactFour)
	}
	n := 4
	for n < 8 && v>>(8*n) != 0 {
		n++
	}
	dst = append(dst, byte(n-4)<<2|compactBig)
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// AppendCompact appends the compact encoding of an arbitrary precision value.
func AppendCompact(dst []byte, v *big.Int) ([]byte, error) {
	if v == nil || v.Sign() == 0 {
		return append(dst, 0), nil
	}
	if v.Sign() < 0 {
		return nil, xc.NewErr(xc.ErrInvalidValue, "negative compact integer %s", v)
	}
	if v.IsUint64() {
		return AppendCompactUint64(dst, v.Uint64()), nil
	}
	le := v.Bytes()
	if len(le) > compactMaxBytes {
		return nil, xc.NewErr(xc.ErrInvalidValue, "compact integer of %d bytes is too large", len(le))
	}
	slices.Reverse(le)
	dst = append(dst, byte(len(le)-4)<<2|compactBig)
	return append(dst, le...), nil
}

// ReadCompact decodes a compact integer from the start of b and returns it with
// the number of bytes consumed. Encodings that do not use the smallest class are
// rejected, so decoding is the exact inverse of AppendCompact.
func ReadCompact(b []byte) (*big.Int, int, error) {
	if len(b) == 0 {
		return nil, 0, xc.NewErr(xc.ErrTruncatedInput, "empty compact integer")
	}
	switch b[0] & 0b11 {
	case compactSingle:
		return big.NewInt(int64(b[0] >> 2)), 1, nil
	case compactTwo:
		if len(b) < 2 {
			return nil, 0, xc.NewErr(xc.ErrTruncatedInput, "compact integer needs 2 bytes")
		}
		v := binary.LittleEndian.Uint16(b) >> 2
		if v < compactSingleLimit {
			return nil, 0, xc.NewErr(xc.ErrInvalidValue, "non-canonical compact integer %d", v)
		}
		return big.NewInt(int64(v)), 2, nil
	case compactFour:
		if len(b) < 4 {
			return nil, 0, xc.NewErr(xc.ErrTruncatedInput, "compact integer needs 4 bytes")
		}
		v := binary.LittleEndian.Uint32(b) >> 2
		if v < compactTwoLimit {
			return nil, 0, xc.NewErr(xc.ErrInvalidValue, "non-canonical compact integer %d", v)
		}
		return big.NewInt(int64(v)), 4, nil
	}
	n := int(b[0]>>2) + 4
	if len(b) < 1+n {
		return nil, 0, xc.NewErr(xc.ErrTruncatedInput, "compact integer needs %d bytes", 1+n)
	}
	if b[n] == 0 {
		return nil, 0, xc.NewErr(xc.ErrInvalidValue, "compact integer has trailing zero bytes")
	}
	be := slices.Clone(b[1 : 1+n])
	slices.Reverse(be)
	v := new(big.Int).SetBytes(be)
	if v.Cmp(big.NewInt(compactFourLimit)) < 0 {
		return nil, 0, xc.NewErr(xc.ErrInvalidValue, "non-canonical compact integer %s", v)
	}
	return v, 1 + n, nil
}

// ReadCompactUint64 is ReadCompact for values that must fit in 64 bits.
func ReadCompactUint64(b []byte) (uint64, int, error) {
	v, n, err := ReadCompact(b)
	if err != nil {
		return 0, 0, err
	}
	if !v.IsUint64() {
		return 0, 0, xc.NewErr(xc.ErrInvalidValue, "compact integer %s overflows 64 bits", v)
	}
	return v.Uint64(), n, nil
}
