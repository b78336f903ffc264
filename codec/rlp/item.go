// Package rlp implements the recursive length prefix encoding.
package rlp

import (
	"bytes"
	"math"
	"math/big"

	"github.com/openweb3-io/txsigner/codec/varint"
	xc "github.com/openweb3-io/txsigner/types"
)

type Kind uint8

const (
	KindBytes Kind = iota
	KindList
	KindUInt
)

func (k Kind) String() string {
	switch k {
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindUInt:
		return "uint"
	}
	return "unknown"
}

// Item is a node of an RLP tree. Items are immutable once constructed.
type Item struct {
	kind    Kind
	payload []byte
	list    []Item
}

// Bytes returns a byte string item.
func Bytes(b []byte) Item {
	return Item{kind: KindBytes, payload: bytes.Clone(b)}
}

func String(s string) Item {
	return Item{kind: KindBytes, payload: []byte(s)}
}

// List returns a list item of the given children.
func List(items ...Item) Item {
	return Item{kind: KindList, list: append([]Item{}, items...)}
}

// Uint64 returns an integer item holding the minimal big-endian bytes of v.
func Uint64(v uint64) Item {
	return Item{kind: KindUInt, payload: varint.BigEndian(v)}
}

// BigInt returns an integer item for a non-negative value of at most 256 bits.
func BigInt(v *big.Int) (Item, error) {
	be, err := varint.BigEndianInt(v)
	if err != nil {
		return Item{}, err
	}
	return UInt(be)
}

// UInt returns an integer item from big-endian bytes. The bytes must be minimal,
// so zero is the empty slice.
func UInt(be []byte) (Item, error) {
	if len(be) > 32 {
		return Item{}, xc.NewErr(xc.ErrInvalidValue, "integer of %d bytes exceeds 256 bits", len(be))
	}
	if len(be) > 0 && be[0] == 0 {
		return Item{}, xc.NewErr(xc.ErrInvalidValue, "integer has leading zero bytes")
	}
	return Item{kind: KindUInt, payload: bytes.Clone(be)}, nil
}

// Long returns the item some chains use for 64-bit quantities: the minimal
// integer while v fits in 32 bits, otherwise all 8 big-endian bytes.
func Long(v uint64) Item {
	if v <= math.MaxUint32 {
		return Uint64(v)
	}
	var be [8]byte
	for i := 7; i >= 0; i-- {
		be[i] = byte(v)
		v >>= 8
	}
	return Item{kind: KindBytes, payload: be[:]}
}

func (it Item) Kind() Kind   { return it.kind }
func (it Item) IsList() bool { return it.kind == KindList }

// Payload returns the content of a bytes or integer item.
func (it Item) Payload() []byte { return bytes.Clone(it.payload) }

// Items returns the children of a list item.
func (it Item) Items() []Item { return append([]Item{}, it.list...) }

// Uint64 interprets a bytes or integer item as a minimal big-endian integer.
func (it Item) Uint64() (uint64, error) {
	if it.kind == KindList {
		return 0, xc.NewErr(xc.ErrInvalidValue, "list is not an integer")
	}
	return varint.ParseBigEndian(it.payload)
}

// Equal compares two trees. Integers and byte strings share a wire form, so an
// integer equals the byte string holding the same bytes.
func (it Item) Equal(other Item) bool {
	if it.IsList() != other.IsList() {
		return false
	}
	if !it.IsList() {
		return bytes.Equal(it.payload, other.payload)
	}
	if len(it.list) != len(other.list) {
		return false
	}
	for i := range it.list {
		if !it.list[i].Equal(other.list[i]) {
			return false
		}
	}
	return true
}
