package testutil

import (
	xc_types "github.com/openweb3-io/txsigner/types"
)

// A transaction with canned preimage and compile results. Records what it was compiled with.
type MockXcTx struct {
	Unsigned   []byte
	Image      *xc_types.PreImage
	Signed     *xc_types.SignedTx
	CompileErr error

	CompiledSignature xc_types.TxSignature
	CompiledPublicKey []byte
}

var _ xc_types.Tx = &MockXcTx{}

func (tx *MockXcTx) Serialize() ([]byte, error) {
	return tx.Unsigned, nil
}
func (tx *MockXcTx) PreImage() (*xc_types.PreImage, error) {
	return tx.Image, nil
}
func (tx *MockXcTx) Compile(signature xc_types.TxSignature, publicKey []byte) (*xc_types.SignedTx, error) {
	tx.CompiledSignature = signature
	tx.CompiledPublicKey = publicKey
	if tx.CompileErr != nil {
		return nil, tx.CompileErr
	}
	return tx.Signed, nil
}
