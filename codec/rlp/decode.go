package rlp

import (
	"github.com/openweb3-io/txsigner/codec/varint"
	xc "github.com/openweb3-io/txsigner/types"
)

// Decode parses exactly one item spanning all of b. Only canonical encodings
// are accepted, so Encode(Decode(b)) == b for every b that decodes.
func Decode(b []byte) (Item, error) {
	it, rest, err := DecodeFirst(b)
	if err != nil {
		return Item{}, err
	}
	if len(rest) != 0 {
		return Item{}, xc.NewErr(xc.ErrInvalidInput, "%d trailing bytes after rlp item", len(rest))
	}
	return it, nil
}

// DecodeFirst parses the first item of b and returns the remaining bytes.
// Decoded scalars are byte strings, the wire does not tell integers apart.
func DecodeFirst(b []byte) (Item, []byte, error) {
	isList, payload, rest, err := split(b)
	if err != nil {
		return Item{}, nil, err
	}
	if !isList {
		return Bytes(payload), rest, nil
	}
	items := []Item{}
	for len(payload) > 0 {
		var child Item
		child, payload, err = DecodeFirst(payload)
		if err != nil {
			return Item{}, nil, err
		}
		items = append(items, child)
	}
	return Item{kind: KindList, list: items}, rest, nil
}

func split(b []byte) (isList bool, payload []byte, rest []byte, err error) {
	if len(b) == 0 {
		return false, nil, nil, xc.NewErr(xc.ErrTruncatedInput, "empty rlp input")
	}
	prefix := b[0]
	switch {
	case prefix < offsetString:
		return false, b[:1], b[1:], nil
	case prefix < offsetString+maxShortLength+1:
		n := int(prefix - offsetString)
		if len(b) < 1+n {
			return false, nil, nil, xc.NewErr(xc.ErrTruncatedInput, "rlp string needs %d bytes, have %d", n, len(b)-1)
		}
		if n == 1 && b[1] < offsetString {
			return false, nil, nil, xc.NewErr(xc.ErrInvalidInput, "non-canonical single byte string")
		}
		return false, b[1 : 1+n], b[1+n:], nil
	case prefix < offsetList:
		payload, rest, err = splitLong(b, int(prefix-offsetString-maxShortLength))
		return false, payload, rest, err
	case prefix < offsetList+maxShortLength+1:
		n := int(prefix - offsetList)
		if len(b) < 1+n {
			return false, nil, nil, xc.NewErr(xc.ErrTruncatedInput, "rlp list needs %d bytes, have %d", n, len(b)-1)
		}
		return true, b[1 : 1+n], b[1+n:], nil
	default:
		payload, rest, err = splitLong(b, int(prefix-offsetList-maxShortLength))
		return true, payload, rest, err
	}
}

func splitLong(b []byte, lengthOfLength int) ([]byte, []byte, error) {
	if len(b) < 1+lengthOfLength {
		return nil, nil, xc.NewErr(xc.ErrTruncatedInput, "rlp length needs %d bytes", lengthOfLength)
	}
	length, err := varint.ParseBigEndian(b[1 : 1+lengthOfLength])
	if err != nil {
		return nil, nil, err
	}
	if length <= maxShortLength {
		return nil, nil, xc.NewErr(xc.ErrInvalidInput, "non-canonical long length %d", length)
	}
	start := uint64(1 + lengthOfLength)
	if uint64(len(b))-start < length {
		return nil, nil, xc.NewErr(xc.ErrTruncatedInput, "rlp payload needs %d bytes, have %d", length, uint64(len(b))-start)
	}
	return b[start : start+length], b[start+length:], nil
}
