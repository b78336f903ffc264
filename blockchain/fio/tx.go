package fio

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/openweb3-io/txsigner/builder/validation"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/pkg/errors"
)

const ChainIDLength = 32

type Tx struct {
	chainID []byte
	trx     *Transaction
	packed  []byte
	actor   Name
}

var _ xc.Tx = &Tx{}

func resolvePublicKey(input *SigningInput) ([]byte, error) {
	if input.PublicKey != "" {
		return ParsePublicKey(input.PublicKey)
	}
	if len(input.PrivateKey) == 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "public_key is required without a private key")
	}
	key, err := privateKeyFromBytes(input.PrivateKey)
	if err != nil {
		return nil, err
	}
	return key.PubKey().SerializeCompressed(), nil
}

// NewTx packs the single action of input. chainID is used unless the input
// carries its own.
func NewTx(input *SigningInput, chainID []byte) (*Tx, error) {
	if len(input.ChainID) > 0 {
		chainID = input.ChainID
	}
	if err := validation.FixedLength(xc.ErrMissingField, "chain_id", chainID, ChainIDLength); err != nil {
		return nil, err
	}
	if input.Expiry == 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "expiry is required")
	}
	pub, err := resolvePublicKey(input)
	if err != nil {
		return nil, err
	}
	text, err := EncodePublicKey(pub)
	if err != nil {
		return nil, err
	}
	ctx := &actionContext{
		actor:      ActorFromPublicKey(pub),
		publicKey:  text,
		tpid:       input.TPID,
		privateKey: input.PrivateKey,
	}
	action, err := ctx.encode(&input.Action)
	if err != nil {
		return nil, err
	}
	trx := &Transaction{
		Expiration:     input.Expiry,
		RefBlockNum:    uint16(input.HeadBlockNumber),
		RefBlockPrefix: uint32(input.RefBlockPrefix),
		Actions:        []*RawAction{action},
	}
	packed, err := trx.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &Tx{
		chainID: bytes.Clone(chainID),
		trx:     trx,
		packed:  packed,
		actor:   ctx.actor,
	}, nil
}

func (tx *Tx) Transaction() *Transaction {
	return tx.trx
}

func (tx *Tx) Actor() Name {
	return tx.actor
}

func (tx *Tx) Serialize() ([]byte, error) {
	return bytes.Clone(tx.packed), nil
}

// PreImage is chain id, packed transaction and the digest of the (empty)
// context free data.
func (tx *Tx) PreImage() (*xc.PreImage, error) {
	data := make([]byte, 0, len(tx.chainID)+len(tx.packed)+sha256.Size)
	data = append(data, tx.chainID...)
	data = append(data, tx.packed...)
	data = append(data, make([]byte, sha256.Size)...)
	hash := sha256.Sum256(data)
	return &xc.PreImage{Data: data, Hash: hash[:]}, nil
}

// IsCanonical reports whether both halves of a compact signature are minimally
// encoded positive integers, the only form FIO nodes accept.
func IsCanonical(sig []byte) bool {
	if len(sig) != signatureLength {
		return false
	}
	r, s := sig[1:33], sig[33:65]
	return r[0]&0x80 == 0 && !(r[0] == 0 && r[1]&0x80 == 0) &&
		s[0]&0x80 == 0 && !(s[0] == 0 && s[1]&0x80 == 0)
}

type envelope struct {
	Compression           string   `json:"compression"`
	PackedContextFreeData string   `json:"packed_context_free_data"`
	PackedTrx             string   `json:"packed_trx"`
	Signatures            []string `json:"signatures"`
}

// Compile takes a 65 byte compact signature with a compressed recovery header.
// The signing key is recovered and must match publicKey when one is given and
// must own the actor the action is authorized by.
func (tx *Tx) Compile(signature xc.TxSignature, publicKey []byte) (*xc.SignedTx, error) {
	if err := validation.FixedLength(xc.ErrInvalidSignature, "signature", signature, signatureLength); err != nil {
		return nil, err
	}
	if header := signature[0]; header < compactHeader || header > compactHeader+3 {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "unexpected recovery header %d", header)
	}
	if !IsCanonical(signature) {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signature is not canonical")
	}
	preImage, err := tx.PreImage()
	if err != nil {
		return nil, err
	}
	recovered, _, err := ecdsa.RecoverCompact(signature, preImage.Hash)
	if err != nil {
		return nil, xc.WrapErr(xc.ErrInvalidSignature, err)
	}
	signer := recovered.SerializeCompressed()
	if len(publicKey) > 0 {
		expected, err := compressPublicKey(publicKey)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(expected, signer) {
			return nil, xc.NewErr(xc.ErrInvalidSignature, "signature does not match public key %x", expected)
		}
	}
	if actor := ActorFromPublicKey(signer); actor != tx.actor {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signer %s is not the authorized actor %s", actor, tx.actor)
	}

	text, err := EncodeSignature(signature)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(&envelope{
		Compression:           "none",
		PackedContextFreeData: "",
		PackedTrx:             hex.EncodeToString(tx.packed),
		Signatures:            []string{text},
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not encode envelope")
	}
	return &xc.SignedTx{
		Encoded:   bytes.Clone(tx.packed),
		Signature: bytes.Clone(signature),
		JSON:      string(out),
	}, nil
}
