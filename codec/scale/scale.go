// Package scale implements the SCALE primitives substrate extrinsics are built from.
package scale

import (
	"encoding/binary"
	"math/big"

	"github.com/openweb3-io/txsigner/codec/varint"
	xc "github.com/openweb3-io/txsigner/types"
)

const AccountIDLength = 32

// multi-address variant tag for a plain account id
const accountIDTag = 0x00

func Compact(v uint64) []byte {
	return varint.AppendCompactUint64(nil, v)
}

func CompactBig(v *big.Int) ([]byte, error) {
	return varint.AppendCompact(nil, v)
}

func Bool(b bool) []byte {
	if b {
		return []byte{0x01}
	}
	return []byte{0x00}
}

func U8(v uint8) []byte { return []byte{v} }

func U16(v uint16) []byte { return binary.LittleEndian.AppendUint16(nil, v) }

func U32(v uint32) []byte { return binary.LittleEndian.AppendUint32(nil, v) }

func U64(v uint64) []byte { return binary.LittleEndian.AppendUint64(nil, v) }

// LengthPrefixed returns compact(len(payload)) || payload.
func LengthPrefixed(payload []byte) []byte {
	out := varint.AppendCompactUint64(nil, uint64(len(payload)))
	return append(out, payload...)
}

// Vector returns compact(len(items)) followed by the already encoded items.
func Vector(items ...[]byte) []byte {
	out := varint.AppendCompactUint64(nil, uint64(len(items)))
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// Option returns 0x00 for nil, 0x01 || v otherwise.
func Option(v []byte) []byte {
	if v == nil {
		return []byte{0x00}
	}
	return append([]byte{0x01}, v...)
}

// AccountID encodes a 32 byte account key. Unless raw, the key is tagged as the
// account id variant of a multi-address.
func AccountID(key []byte, raw bool) ([]byte, error) {
	if len(key) != AccountIDLength {
		return nil, xc.NewErr(xc.ErrInvalidAddress, "account id must be %d bytes, got %d", AccountIDLength, len(key))
	}
	out := make([]byte, 0, AccountIDLength+1)
	if !raw {
		out = append(out, accountIDTag)
	}
	return append(out, key...), nil
}
