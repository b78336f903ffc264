package types

import (
	"encoding/hex"
	"encoding/json"
)

type TxSignature []byte

type TxDataToSign []byte

// SigningInput is a chain specific signing request. The private key is only
// consulted when signing locally.
type SigningInput interface {
	GetBlockchain() Blockchain
	GetPrivateKey() []byte
}

// AmountSetter is implemented by inputs whose request moves a single amount,
// so callers can fill it in from whole coins. Requests without one return
// ErrNotSupported.
type AmountSetter interface {
	SetAmount(amount BigInt) error
}

// PreImage is what a signer must sign for a transaction.
type PreImage struct {
	// Data is the raw preimage.
	Data []byte `json:"data"`
	// Hash is the digest handed to the signer. Equal to Data for chains that sign the raw bytes.
	Hash TxDataToSign `json:"hash"`
}

func (p *PreImage) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"data": hex.EncodeToString(p.Data),
		"hash": hex.EncodeToString(p.Hash),
	})
}

// Tx is an unsigned transaction in its canonical built form. Implementations are
// immutable; Compile returns a new value and never changes the receiver.
type Tx interface {
	// Serialize returns the canonical unsigned bytes.
	Serialize() ([]byte, error)
	// PreImage computes the signable bytes and the digest to sign.
	PreImage() (*PreImage, error)
	// Compile assembles the signed wire bytes. The public key is required
	// for public-key-prefixed schemes and optional for recoverable ones.
	Compile(signature TxSignature, publicKey []byte) (*SignedTx, error)
}

// SignedTx is the final artifact.
type SignedTx struct {
	// Encoded is the chain wire format.
	Encoded []byte
	// Signature is the raw signature as carried by the wire format.
	Signature TxSignature
	// JSON is an optional textual envelope for chains whose RPC expects one.
	JSON string
}

func (tx *SignedTx) Hex() string {
	return hex.EncodeToString(tx.Encoded)
}
