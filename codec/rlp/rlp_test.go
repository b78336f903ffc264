package rlp_test

import (
	"encoding/hex"
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strings"
	"testing"

	ethrlp "github.com/ethereum/go-ethereum/rlp"
	"github.com/openweb3-io/txsigner/codec/rlp"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/stretchr/testify/require"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestEncodeVectors(t *testing.T) {
	vectors := []struct {
		name     string
		item     rlp.Item
		expected string
	}{
		{"empty string", rlp.String(""), "80"},
		{"single char", rlp.String("d"), "64"},
		{"dog", rlp.String("dog"), "83646f67"},
		{"zero", rlp.Uint64(0), "80"},
		{"127", rlp.Uint64(127), "7f"},
		{"128", rlp.Uint64(128), "8180"},
		{"256", rlp.Uint64(256), "820100"},
		{"1024", rlp.Uint64(1024), "820400"},
		{"u32 max", rlp.Uint64(math.MaxUint32), "84ffffffff"},
		{"u64 max", rlp.Uint64(math.MaxUint64), "88ffffffffffffffff"},
		{"empty list", rlp.List(), "c0"},
		{"ints", rlp.List(rlp.Uint64(1), rlp.Uint64(2), rlp.Uint64(3)), "c3010203"},
		{"strings", rlp.List(rlp.String("cat"), rlp.String("dog")), "c88363617483646f67"},
		{
			"long string",
			rlp.String("Lorem ipsum dolor sit amet, consectetur adipisicing elit"),
			"b8384c6f72656d20697073756d20646f6c6f722073697420616d65742c20636f6e7365637465747572206164697069736963696e6720656c6974",
		},
		{
			"nested",
			rlp.List(
				rlp.List(rlp.Uint64(1), rlp.Uint64(2), rlp.Uint64(3)),
				rlp.List(rlp.String("apple"), rlp.String("banana"), rlp.String("cherry")),
				rlp.List(rlp.Bytes(mustHex("abcdef")), rlp.Bytes(mustHex("00010203040506070809"))),
				rlp.List(rlp.String("bitcoin"), rlp.String("beeenbee"), rlp.String("eth")),
			),
			"f841d9c3010203d4856170706c658662616e616e6186636865727279e6cf83abcdef8a00010203040506070809d587626974636f696e88626565656e62656583657468",
		},
	}
	for _, v := range vectors {
		require.Equal(t, v.expected, hex.EncodeToString(rlp.Encode(v.item)), v.name)
	}
}

func TestBigInt(t *testing.T) {
	v, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)
	item, err := rlp.BigInt(v)
	require.NoError(t, err)
	require.Equal(t, "a0"+strings.Repeat("ff", 32), hex.EncodeToString(rlp.Encode(item)))

	_, err = rlp.BigInt(new(big.Int).Lsh(big.NewInt(1), 256))
	require.True(t, errors.Is(err, xc.ErrInvalidValue))
	_, err = rlp.BigInt(big.NewInt(-1))
	require.True(t, errors.Is(err, xc.ErrInvalidValue))
	_, err = rlp.UInt([]byte{0x00, 0x01})
	require.True(t, errors.Is(err, xc.ErrInvalidValue))
}

func TestSingleByteShortCircuit(t *testing.T) {
	for b := 0; b < 0x80; b++ {
		require.Equal(t, []byte{byte(b)}, rlp.Encode(rlp.Bytes([]byte{byte(b)})))
	}
	for b := 0x80; b <= 0xff; b++ {
		require.Equal(t, []byte{0x81, byte(b)}, rlp.Encode(rlp.Bytes([]byte{byte(b)})))
	}
}

func TestLongNumber(t *testing.T) {
	for _, v := range []uint64{0, 1, 0x7f, 0x80, 21000, 0xffffff, 0xffffffff} {
		require.Equal(t, rlp.EncodeUint64(v), rlp.EncodeLong(v), "value %d", v)
	}
	for _, v := range []uint64{0x100000000, 20000000000, math.MaxUint64} {
		encoded := rlp.EncodeLong(v)
		require.Len(t, encoded, 9)
		require.Equal(t, byte(0x88), encoded[0])
		var be [8]byte
		for i := 0; i < 8; i++ {
			be[i] = byte(v >> (56 - 8*i))
		}
		require.Equal(t, be[:], encoded[1:])
	}
	require.Equal(t, "8800000004a817c800", hex.EncodeToString(rlp.EncodeLong(20000000000)))
}

func TestMatchesGoEthereum(t *testing.T) {
	type payload struct {
		Nonce uint64
		Price *big.Int
		To    []byte
		Data  []byte
		Tags  []string
		Inner []uint64
	}
	p := payload{
		Nonce: 1024,
		Price: big.NewInt(20000000000),
		To:    mustHex("3535353535353535353535353535353535353535"),
		Data:  []byte(strings.Repeat("x", 300)),
		Tags:  []string{"a", "", strings.Repeat("b", 56)},
		Inner: []uint64{0, 127, 128, math.MaxUint64},
	}
	expected, err := ethrlp.EncodeToBytes(&p)
	require.NoError(t, err)

	price, err := rlp.BigInt(p.Price)
	require.NoError(t, err)
	tags := []rlp.Item{}
	for _, tag := range p.Tags {
		tags = append(tags, rlp.String(tag))
	}
	inner := []rlp.Item{}
	for _, v := range p.Inner {
		inner = append(inner, rlp.Uint64(v))
	}
	actual := rlp.EncodeList(
		rlp.Uint64(p.Nonce),
		price,
		rlp.Bytes(p.To),
		rlp.Bytes(p.Data),
		rlp.List(tags...),
		rlp.List(inner...),
	)
	require.Equal(t, hex.EncodeToString(expected), hex.EncodeToString(actual))
}

func randomItem(r *rand.Rand, depth int) rlp.Item {
	if depth > 0 && r.Intn(3) == 0 {
		n := r.Intn(6)
		children := make([]rlp.Item, n)
		for i := range children {
			children[i] = randomItem(r, depth-1)
		}
		return rlp.List(children...)
	}
	switch r.Intn(3) {
	case 0:
		return rlp.Uint64(r.Uint64() >> uint(r.Intn(64)))
	case 1:
		return rlp.Long(r.Uint64() >> uint(r.Intn(64)))
	}
	sizes := []int{0, 1, 2, 55, 56, 57, 300, 70000}
	b := make([]byte, sizes[r.Intn(len(sizes))])
	r.Read(b)
	return rlp.Bytes(b)
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		item := randomItem(r, 4)
		encoded := rlp.Encode(item)
		decoded, err := rlp.Decode(encoded)
		require.NoError(t, err)
		require.True(t, item.Equal(decoded), "item %d", i)
		require.Equal(t, encoded, rlp.Encode(decoded))
	}
}

func TestDecode(t *testing.T) {
	item, err := rlp.Decode(mustHex("c88363617483646f67"))
	require.NoError(t, err)
	require.True(t, item.IsList())
	require.Len(t, item.Items(), 2)
	require.Equal(t, "dog", string(item.Items()[1].Payload()))

	item, err = rlp.Decode(mustHex("820400"))
	require.NoError(t, err)
	v, err := item.Uint64()
	require.NoError(t, err)
	require.EqualValues(t, 1024, v)

	first, rest, err := rlp.DecodeFirst(mustHex("83646f6701"))
	require.NoError(t, err)
	require.Equal(t, "dog", string(first.Payload()))
	require.Equal(t, []byte{0x01}, rest)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, tc := range []struct {
		input string
		kind  *xc.Error
	}{
		{"", xc.ErrTruncatedInput},
		{"83646f", xc.ErrTruncatedInput},
		{"c30102", xc.ErrTruncatedInput},
		{"b90100", xc.ErrTruncatedInput},
		{"b8", xc.ErrTruncatedInput},
		// single byte below 0x80 must not be prefixed
		{"8105", xc.ErrInvalidInput},
		// long form for a short payload
		{"b80161", xc.ErrInvalidInput},
		// leading zero in the length
		{"b9003861", xc.ErrInvalidValue},
		{"8001", xc.ErrInvalidInput},
	} {
		_, err := rlp.Decode(mustHex(tc.input))
		require.Error(t, err, tc.input)
		require.True(t, errors.Is(err, tc.kind), "%s: %v", tc.input, err)
	}
}
