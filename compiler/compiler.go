// Package compiler drives a chain's TxBuilder through the signing protocol.
//
// Sign holds the private key and signs locally. PreImageHash and Compile are
// the two halves used with a remote signer: the caller signs the returned
// hash elsewhere and hands the signature back. Both routes end in the same
// Tx.Compile and produce identical bytes.
package compiler

import (
	"context"

	"github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func build(b builder.TxBuilder, input xc.SigningInput) (xc.Tx, error) {
	if input == nil {
		return nil, xc.NewErr(xc.ErrMissingField, "signing input is required")
	}
	if input.GetBlockchain() != b.Blockchain() {
		return nil, xc.NewErr(xc.ErrInvalidInput, "%s input given to %s builder", input.GetBlockchain(), b.Blockchain())
	}
	return b.Build(input)
}

// Sign signs with the private key carried by input.
func Sign(ctx context.Context, b builder.TxBuilder, input xc.SigningInput) (*xc.SignedTx, error) {
	if input == nil {
		return nil, xc.NewErr(xc.ErrMissingField, "signing input is required")
	}
	if len(input.GetPrivateKey()) == 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "private_key is required to sign")
	}
	s, err := b.NewLocalSigner(input.GetPrivateKey())
	if err != nil {
		return nil, err
	}
	return SignWith(ctx, b, input, s)
}

// SignWith signs the preimage with s, which may be local or remote.
func SignWith(ctx context.Context, b builder.TxBuilder, input xc.SigningInput, s signer.Signer) (*xc.SignedTx, error) {
	tx, err := build(b, input)
	if err != nil {
		return nil, err
	}
	preImage, err := tx.PreImage()
	if err != nil {
		return nil, err
	}
	publicKey, err := s.PublicKey(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "could not read signer public key")
	}
	sig, err := s.Sign(ctx, preImage.Hash)
	if err != nil {
		return nil, errors.Wrap(err, "could not sign preimage")
	}
	zap.S().Debugw("signed preimage",
		"blockchain", b.Blockchain(),
		"hash", preImage.Hash,
		"public_key", publicKey,
	)
	return tx.Compile(sig, publicKey)
}

// PreImageHash returns what a remote signer must sign. A private key on the
// input is never used to sign.
func PreImageHash(b builder.TxBuilder, input xc.SigningInput) (*xc.PreImage, error) {
	tx, err := build(b, input)
	if err != nil {
		return nil, err
	}
	preImage, err := tx.PreImage()
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("computed preimage", "blockchain", b.Blockchain(), "hash", preImage.Hash)
	return preImage, nil
}

// Compile rebuilds the transaction from input and attaches an externally
// produced signature.
func Compile(b builder.TxBuilder, input xc.SigningInput, signature xc.TxSignature, publicKey []byte) (*xc.SignedTx, error) {
	if len(signature) == 0 {
		return nil, xc.NewErr(xc.ErrInvalidSignature, "signature is required")
	}
	tx, err := build(b, input)
	if err != nil {
		return nil, err
	}
	signed, err := tx.Compile(signature, publicKey)
	if err != nil {
		return nil, err
	}
	zap.S().Debugw("compiled transaction", "blockchain", b.Blockchain(), "size", len(signed.Encoded))
	return signed, nil
}
