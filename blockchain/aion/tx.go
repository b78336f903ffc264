package aion

import (
	"crypto/ed25519"

	"github.com/openweb3-io/txsigner/builder/validation"
	"github.com/openweb3-io/txsigner/codec/rlp"
	xc "github.com/openweb3-io/txsigner/types"
	"golang.org/x/crypto/blake2b"
)

const txTypeDefault = 0x01

// Tx is an unsigned AION transaction.
type Tx struct {
	fields []rlp.Item
}

var _ xc.Tx = &Tx{}

// NewTx validates the request and lays out the transaction fields. Gas fields
// use the long number form.
func NewTx(input *SigningInput) (*Tx, error) {
	to, err := ParseAddress(input.ToAddress)
	if err != nil {
		return nil, err
	}
	amount, err := validation.Uint256("amount", input.Amount)
	if err != nil {
		return nil, err
	}
	amountItem, err := rlp.BigInt(amount)
	if err != nil {
		return nil, err
	}
	return &Tx{
		fields: []rlp.Item{
			rlp.Uint64(input.Nonce),
			rlp.Bytes(to),
			amountItem,
			rlp.Bytes(input.Payload),
			rlp.Uint64(input.Timestamp),
			rlp.Long(input.GasLimit),
			rlp.Long(input.GasPrice),
			rlp.Uint64(txTypeDefault),
		},
	}, nil
}

func (tx *Tx) Serialize() ([]byte, error) {
	return rlp.EncodeList(tx.fields...), nil
}

func (tx *Tx) PreImage() (*xc.PreImage, error) {
	data, _ := tx.Serialize()
	hash := blake2b.Sum256(data)
	return &xc.PreImage{Data: data, Hash: hash[:]}, nil
}

// Compile appends publicKey || signature as the last list element.
func (tx *Tx) Compile(signature xc.TxSignature, publicKey []byte) (*xc.SignedTx, error) {
	if err := validation.FixedLength(xc.ErrInvalidPublicKey, "public key", publicKey, ed25519.PublicKeySize); err != nil {
		return nil, err
	}
	if err := validation.FixedLength(xc.ErrInvalidSignature, "signature", signature, ed25519.SignatureSize); err != nil {
		return nil, err
	}
	preImage, _ := tx.PreImage()
	if !ed25519.Verify(publicKey, preImage.Hash, signature) {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signature does not match public key")
	}

	carried := append(append([]byte{}, publicKey...), signature...)
	fields := append(append([]rlp.Item{}, tx.fields...), rlp.Bytes(carried))
	return &xc.SignedTx{
		Encoded:   rlp.EncodeList(fields...),
		Signature: carried,
	}, nil
}
