package fio

import (
	"context"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
)

// nonces tried before giving up on a canonical signature
const maxSignAttempts = 10000

type LocalSigner struct {
	key *secp256k1.PrivateKey
}

var _ signer.Signer = &LocalSigner{}

func privateKeyFromBytes(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, xc.NewErr(xc.ErrInvalidPrivateKey, "secp256k1 private key must be %d bytes, got %d", secp256k1.PrivKeyBytesLen, len(b))
	}
	var k secp256k1.ModNScalar
	if overflow := k.SetByteSlice(b); overflow || k.IsZero() {
		return nil, xc.NewErr(xc.ErrInvalidPrivateKey, "private key is out of range")
	}
	return secp256k1.NewPrivateKey(&k), nil
}

func NewLocalSigner(privateKey []byte) (*LocalSigner, error) {
	key, err := privateKeyFromBytes(privateKey)
	if err != nil {
		return nil, err
	}
	return &LocalSigner{key}, nil
}

// PublicKey is the 33 byte compressed key.
func (s *LocalSigner) PublicKey(ctx context.Context) ([]byte, error) {
	return s.key.PubKey().SerializeCompressed(), nil
}

func (s *LocalSigner) Sign(ctx context.Context, payload xc.TxDataToSign) (xc.TxSignature, error) {
	return signCanonical(s.key, payload)
}

func (s *LocalSigner) Address() (string, error) {
	return EncodePublicKey(s.key.PubKey().SerializeCompressed())
}

func (s *LocalSigner) Actor() Name {
	return ActorFromPublicKey(s.key.PubKey().SerializeCompressed())
}

// signCanonical walks the RFC6979 nonce sequence until the low-S signature is
// canonical and returns it as header || r || s.
func signCanonical(key *secp256k1.PrivateKey, hash []byte) ([]byte, error) {
	if len(hash) != 32 {
		return nil, xc.NewErr(xc.ErrInvalidValue, "digest must be 32 bytes, got %d", len(hash))
	}
	privBytes := key.Key.Bytes()
	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	for iteration := uint32(0); iteration < maxSignAttempts; iteration++ {
		k := secp256k1.NonceRFC6979(privBytes[:], hash, nil, nil, iteration)

		var R secp256k1.JacobianPoint
		secp256k1.ScalarBaseMultNonConst(k, &R)
		R.ToAffine()

		var r secp256k1.ModNScalar
		overflow := r.SetBytes(R.X.Bytes())
		if r.IsZero() {
			k.Zero()
			continue
		}
		recID := byte(overflow << 1)
		if R.Y.IsOdd() {
			recID |= 1
		}

		kInv := new(secp256k1.ModNScalar).InverseValNonConst(k)
		k.Zero()
		s := new(secp256k1.ModNScalar).Mul2(&key.Key, &r).Add(&e).Mul(kInv)
		if s.IsZero() {
			continue
		}
		if s.IsOverHalfOrder() {
			s.Negate()
			recID ^= 1
		}

		sig := make([]byte, signatureLength)
		sig[0] = compactHeader + recID
		r.PutBytesUnchecked(sig[1:33])
		s.PutBytesUnchecked(sig[33:65])
		if IsCanonical(sig) {
			return sig, nil
		}
	}
	return nil, xc.NewErr(xc.ErrInvalidSignature, "no canonical signature after %d attempts", maxSignAttempts)
}
