// Package address implements SS58 account addresses.
package address

import (
	"bytes"

	"github.com/btcsuite/btcd/btcutil/base58"
	xc "github.com/openweb3-io/txsigner/types"
	"golang.org/x/crypto/blake2b"
)

const (
	KeyLength      = 32
	checksumLength = 2
	// largest network id the two byte prefix form can carry
	MaxNetwork = 1<<14 - 1
)

var checksumPrefix = []byte("SS58PRE")

func checksum(data []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(checksumPrefix)
	h.Write(data)
	return h.Sum(nil)[:checksumLength]
}

func encodePrefix(network uint16) []byte {
	if network < 64 {
		return []byte{byte(network)}
	}
	return []byte{
		byte((network&0xfc)>>2) | 0x40,
		byte(network>>8) | byte(network&0x03)<<6,
	}
}

func decodePrefix(b []byte) (uint16, int, error) {
	switch {
	case len(b) == 0:
		return 0, 0, xc.NewErr(xc.ErrInvalidAddress, "empty address")
	case b[0] < 64:
		return uint16(b[0]), 1, nil
	case b[0] < 128:
		if len(b) < 2 {
			return 0, 0, xc.NewErr(xc.ErrInvalidAddress, "truncated address prefix")
		}
		lower := uint16(b[0]&0x3f)<<2 | uint16(b[1]>>6)
		upper := uint16(b[1] & 0x3f)
		return lower | upper<<8, 2, nil
	default:
		return 0, 0, xc.NewErr(xc.ErrInvalidAddress, "reserved address prefix %#x", b[0])
	}
}

// Encode renders a 32 byte account key for the given network.
func Encode(key []byte, network uint16) (string, error) {
	if len(key) != KeyLength {
		return "", xc.NewErr(xc.ErrInvalidPublicKey, "account key must be %d bytes, got %d", KeyLength, len(key))
	}
	if network > MaxNetwork {
		return "", xc.NewErr(xc.ErrInvalidAddress, "network %d out of range", network)
	}
	data := append(encodePrefix(network), key...)
	return base58.Encode(append(data, checksum(data)...)), nil
}

// Decode returns the account key and network of an address.
func Decode(address string) ([]byte, uint16, error) {
	raw := base58.Decode(address)
	network, n, err := decodePrefix(raw)
	if err != nil {
		return nil, 0, err
	}
	if len(raw) != n+KeyLength+checksumLength {
		return nil, 0, xc.NewErr(xc.ErrInvalidAddress, "%s is not a valid ss58 address", address)
	}
	body := raw[:n+KeyLength]
	if !bytes.Equal(checksum(body), raw[n+KeyLength:]) {
		return nil, 0, xc.NewErr(xc.ErrInvalidAddress, "%s has an invalid checksum", address)
	}
	return bytes.Clone(raw[n : n+KeyLength]), network, nil
}
