package fio

import (
	"bytes"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	xc "github.com/openweb3-io/txsigner/types"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

const (
	PublicKeyPrefix = "FIO"
	SignaturePrefix = "SIG_K1_"

	checksumLength = 4
	// recovery header for compressed keys, 27 + 4
	compactHeader   = 31
	signatureLength = 65
)

func checksum(data []byte, suffix string) []byte {
	h := ripemd160.New()
	h.Write(data)
	h.Write([]byte(suffix))
	return h.Sum(nil)[:checksumLength]
}

func compressPublicKey(pub []byte) ([]byte, error) {
	key, err := btcec.ParsePubKey(pub)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidPublicKey, err)
	}
	return key.SerializeCompressed(), nil
}

// EncodePublicKey accepts a compressed or uncompressed secp256k1 key and
// returns its FIO text form.
func EncodePublicKey(pub []byte) (string, error) {
	compressed, err := compressPublicKey(pub)
	if err != nil {
		return "", err
	}
	return PublicKeyPrefix + base58.Encode(append(compressed, checksum(compressed, "")...)), nil
}

// ParsePublicKey returns the 33 byte compressed key behind a "FIO..." string.
func ParsePublicKey(s string) ([]byte, error) {
	if !strings.HasPrefix(s, PublicKeyPrefix) {
		return nil, xc.NewErr(xc.ErrInvalidAddress, "public key %q does not start with %s", s, PublicKeyPrefix)
	}
	raw := base58.Decode(strings.TrimPrefix(s, PublicKeyPrefix))
	if len(raw) != btcec.PubKeyBytesLenCompressed+checksumLength {
		return nil, xc.NewErr(xc.ErrInvalidAddress, "public key %q has invalid length", s)
	}
	key, sum := raw[:btcec.PubKeyBytesLenCompressed], raw[btcec.PubKeyBytesLenCompressed:]
	if !bytes.Equal(sum, checksum(key, "")) {
		return nil, xc.NewErr(xc.ErrInvalidAddress, "public key %q has invalid checksum", s)
	}
	if _, err := btcec.ParsePubKey(key); err != nil {
		return nil, xc.NewErr(xc.ErrInvalidAddress, "public key %q is not on the curve: %v", s, err)
	}
	return key, nil
}

// ActorFromPublicKey derives the 12 character account name of a compressed key.
// Non-zero symbols are taken from consecutive key bytes after the prefix byte.
func ActorFromPublicKey(pub []byte) Name {
	var v uint64
	for i, n := 1, 0; n <= 12 && i < len(pub); i++ {
		mask := byte(0x1f)
		if n == 12 {
			mask = 0x0f
		}
		sym := uint64(pub[i] & mask)
		if sym == 0 {
			continue
		}
		shift := 0
		if n < 12 {
			shift = 5*(12-n) - 1
		}
		v |= sym << shift
		n++
	}
	full := Name(v).String()
	if len(full) > 12 {
		full = full[:12]
	}
	return MustParseName(strings.TrimRight(full, "."))
}

// EncodeSignature formats a 65 byte compact signature as SIG_K1_.
func EncodeSignature(sig []byte) (string, error) {
	if len(sig) != signatureLength {
		return "", xc.NewErr(xc.ErrInvalidSignature, "signature must be %d bytes, got %d", signatureLength, len(sig))
	}
	return SignaturePrefix + base58.Encode(append(bytes.Clone(sig), checksum(sig, "K1")...)), nil
}

func ParseSignature(s string) ([]byte, error) {
	if !strings.HasPrefix(s, SignaturePrefix) {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signature does not start with %s", SignaturePrefix)
	}
	raw := base58.Decode(strings.TrimPrefix(s, SignaturePrefix))
	if len(raw) != signatureLength+checksumLength {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signature has invalid length")
	}
	sig, sum := raw[:signatureLength], raw[signatureLength:]
	if !bytes.Equal(sum, checksum(sig, "K1")) {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signature has invalid checksum")
	}
	return sig, nil
}
