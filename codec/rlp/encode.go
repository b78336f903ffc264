package rlp

import (
	"fmt"

	"github.com/openweb3-io/txsigner/codec/varint"
)

const (
	offsetString = 0x80
	offsetList   = 0xc0
	// payloads longer than this carry their length in separate bytes
	maxShortLength = 55
	maxLengthBytes = 8
)

// Encode serializes an item tree.
func Encode(it Item) []byte {
	return appendItem(nil, it)
}

// EncodeList serializes a list of items without building the List first.
func EncodeList(items ...Item) []byte {
	return Encode(List(items...))
}

func appendItem(dst []byte, it Item) []byte {
	if it.kind != KindList {
		if len(it.payload) == 1 && it.payload[0] < offsetString {
			return append(dst, it.payload[0])
		}
		dst = appendHeader(dst, offsetString, len(it.payload))
		return append(dst, it.payload...)
	}
	var body []byte
	for _, child := range it.list {
		body = appendItem(body, child)
	}
	dst = appendHeader(dst, offsetList, len(body))
	return append(dst, body...)
}

func appendHeader(dst []byte, offset byte, length int) []byte {
	if length <= maxShortLength {
		return append(dst, offset+byte(length))
	}
	lengthBytes := varint.BigEndian(uint64(length))
	if len(lengthBytes) > maxLengthBytes {
		panic(fmt.Sprintf("rlp: length of length %d exceeds %d bytes", len(lengthBytes), maxLengthBytes))
	}
	dst = append(dst, offset+maxShortLength+byte(len(lengthBytes)))
	return append(dst, lengthBytes...)
}

// EncodeUint64 is Encode(Uint64(v)).
func EncodeUint64(v uint64) []byte {
	return Encode(Uint64(v))
}

// EncodeLong is Encode(Long(v)): minimal integer bytes up to 32 bits,
// otherwise the fixed 9 byte form 0x88 || uint64 big-endian.
func EncodeLong(v uint64) []byte {
	return Encode(Long(v))
}
