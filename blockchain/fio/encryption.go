package fio

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	xc "github.com/openweb3-io/txsigner/types"
)

const (
	ivLength  = aes.BlockSize
	macLength = sha256.Size
	// iv, one cipher block and the mac
	minCipherLength = ivLength + aes.BlockSize + macLength
)

// SharedSecret is sha512 of the x coordinate of the ECDH point. Both sides of
// a key pair arrive at the same 64 bytes.
func SharedSecret(privateKey []byte, publicKey []byte) ([]byte, error) {
	priv, err := privateKeyFromBytes(privateKey)
	if err != nil {
		return nil, err
	}
	pub, err := secp256k1.ParsePubKey(publicKey)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidPublicKey, err)
	}
	secret := sha512.Sum512(secp256k1.GenerateSharedSecret(priv, pub))
	return secret[:], nil
}

func cipherKeys(secret []byte) (encKey, macKey []byte) {
	k := sha512.Sum512(secret)
	return k[:32], k[32:]
}

func checkMAC(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// Encrypt returns iv || AES-256-CBC(message) || HMAC-SHA256(iv || ciphertext),
// keyed from the shared secret.
func Encrypt(secret, message, iv []byte) ([]byte, error) {
	if len(iv) != ivLength {
		return nil, xc.NewErr(xc.ErrInvalidValue, "iv must be %d bytes, got %d", ivLength, len(iv))
	}
	encKey, macKey := cipherKeys(secret)
	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInternal, err)
	}
	pad := aes.BlockSize - len(message)%aes.BlockSize
	plain := append(bytes.Clone(message), bytes.Repeat([]byte{byte(pad)}, pad)...)

	out := make([]byte, ivLength+len(plain), ivLength+len(plain)+macLength)
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[ivLength:], plain)
	return append(out, checkMAC(macKey, out)...), nil
}

// Decrypt reverses Encrypt. The mac is checked before anything is decrypted.
func Decrypt(secret, encrypted []byte) ([]byte, error) {
	if len(encrypted) < minCipherLength {
		return nil, xc.NewErr(xc.ErrTruncatedInput, "encrypted message needs at least %d bytes, got %d", minCipherLength, len(encrypted))
	}
	body, mac := encrypted[:len(encrypted)-macLength], encrypted[len(encrypted)-macLength:]
	if (len(body)-ivLength)%aes.BlockSize != 0 {
		return nil, xc.NewErr(xc.ErrInvalidValue, "ciphertext is not a multiple of the block size")
	}
	encKey, macKey := cipherKeys(secret)
	if !hmac.Equal(mac, checkMAC(macKey, body)) {
		return nil, xc.NewErr(xc.ErrInvalidValue, "message authentication failed")
	}
	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInternal, err)
	}
	plain := make([]byte, len(body)-ivLength)
	cipher.NewCBCDecrypter(block, body[:ivLength]).CryptBlocks(plain, body[ivLength:])

	pad := int(plain[len(plain)-1])
	if pad == 0 || pad > aes.BlockSize || !bytes.Equal(plain[len(plain)-pad:], bytes.Repeat([]byte{byte(pad)}, pad)) {
		return nil, xc.NewErr(xc.ErrInvalidValue, "invalid padding")
	}
	return plain[:len(plain)-pad], nil
}

// EncryptContent encrypts serialized content from privateKey to the owner of
// the FIO public key and returns the base64 text carried in actions.
func EncryptContent(privateKey []byte, publicKey string, message, iv []byte) (string, error) {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return "", err
	}
	secret, err := SharedSecret(privateKey, pub)
	if err != nil {
		return "", err
	}
	encrypted, err := Encrypt(secret, message, iv)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(encrypted), nil
}

// DecryptContent is the inverse of EncryptContent, run by either party with
// their own private key and the other party's public key.
func DecryptContent(privateKey []byte, publicKey string, content string) ([]byte, error) {
	pub, err := ParsePublicKey(publicKey)
	if err != nil {
		return nil, err
	}
	secret, err := SharedSecret(privateKey, pub)
	if err != nil {
		return nil, err
	}
	encrypted, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidValue, err)
	}
	return Decrypt(secret, encrypted)
}
