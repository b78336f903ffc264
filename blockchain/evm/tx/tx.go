package tx

import (
	"bytes"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/openweb3-io/txsigner/codec/rlp"
	xc_types "github.com/openweb3-io/txsigner/types"
)

const DynamicFeeTxType = 0x02

// Tx is an unsigned ethereum transaction laid out as RLP fields.
type Tx struct {
	chainID *big.Int
	typed   bool
	// every field before the signature
	fields []rlp.Item
}

var _ xc_types.Tx = &Tx{}

// NewLegacyTx lays out rlp[nonce, gasPrice, gas, to, value, data]. Signing
// follows EIP-155 replay protection.
func NewLegacyTx(chainID *big.Int, nonce uint64, gasPrice *big.Int, gas uint64, to []byte, value *big.Int, data []byte) (*Tx, error) {
	ints, err := bigItems(gasPrice, value)
	if err != nil {
		return nil, err
	}
	return &Tx{
		chainID: new(big.Int).Set(chainID),
		fields: []rlp.Item{
			rlp.Uint64(nonce),
			ints[0],
			rlp.Uint64(gas),
			rlp.Bytes(to),
			ints[1],
			rlp.Bytes(data),
		},
	}, nil
}

// NewDynamicFeeTx lays out the EIP-1559 fields with an empty access list.
func NewDynamicFeeTx(chainID *big.Int, nonce uint64, tip *big.Int, feeCap *big.Int, gas uint64, to []byte, value *big.Int, data []byte) (*Tx, error) {
	ints, err := bigItems(chainID, tip, feeCap, value)
	if err != nil {
		return nil, err
	}
	return &Tx{
		chainID: new(big.Int).Set(chainID),
		typed:   true,
		fields: []rlp.Item{
			ints[0],
			rlp.Uint64(nonce),
			ints[1],
			ints[2],
			rlp.Uint64(gas),
			rlp.Bytes(to),
			ints[3],
			rlp.Bytes(data),
			rlp.List(),
		},
	}, nil
}

func bigItems(values ...*big.Int) ([]rlp.Item, error) {
	items := make([]rlp.Item, len(values))
	for i, v := range values {
		it, err := rlp.BigInt(v)
		if err != nil {
			return nil, err
		}
		items[i] = it
	}
	return items, nil
}

func (tx *Tx) encode(fields []rlp.Item) []byte {
	if tx.typed {
		return append([]byte{DynamicFeeTxType}, rlp.EncodeList(fields...)...)
	}
	return rlp.EncodeList(fields...)
}

// Serialize returns the signing payload. Legacy transactions append chainId, 0, 0.
func (tx *Tx) Serialize() ([]byte, error) {
	if tx.typed {
		return tx.encode(tx.fields), nil
	}
	chainID, err := rlp.BigInt(tx.chainID)
	if err != nil {
		return nil, err
	}
	fields := append(append([]rlp.Item{}, tx.fields...), chainID, rlp.Uint64(0), rlp.Uint64(0))
	return tx.encode(fields), nil
}

// PreImage is the keccak-256 sighash.
func (tx *Tx) PreImage() (*xc_types.PreImage, error) {
	data, err := tx.Serialize()
	if err != nil {
		return nil, err
	}
	return &xc_types.PreImage{Data: data, Hash: crypto.Keccak256(data)}, nil
}

// Compile takes a 65 byte [R || S || V] signature with V as the recovery id,
// 0/1 or 27/28. A public key, when given, must be the one the signature recovers to.
func (tx *Tx) Compile(signature xc_types.TxSignature, publicKey []byte) (*xc_types.SignedTx, error) {
	if len(signature) != crypto.SignatureLength {
		return nil, xc_types.NewErr(xc_types.ErrInvalidSignature, "signature must be %d bytes, got %d", crypto.SignatureLength, len(signature))
	}
	sig := bytes.Clone(signature)
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[64], r, s, true) {
		return nil, xc_types.NewErr(xc_types.ErrInvalidSignature, "signature values out of range")
	}

	preImage, err := tx.PreImage()
	if err != nil {
		return nil, err
	}
	recovered, err := crypto.SigToPub(preImage.Hash, sig)
	if err != nil {
		return nil, xc_types.WrapErr(xc_types.ErrInvalidSignature, err)
	}
	if len(publicKey) > 0 {
		given, err := parsePublicKey(publicKey)
		if err != nil {
			return nil, err
		}
		if !bytes.Equal(crypto.FromECDSAPub(recovered), crypto.FromECDSAPub(given)) {
			return nil, xc_types.NewErr(xc_types.ErrInvalidSignature, "signature does not match public key")
		}
	}

	var v *big.Int
	if tx.typed {
		v = big.NewInt(int64(sig[64]))
	} else {
		// recid + 35 + 2*chainId
		v = new(big.Int).Lsh(tx.chainID, 1)
		v.Add(v, big.NewInt(35+int64(sig[64])))
	}
	sigItems, err := bigItems(v, r, s)
	if err != nil {
		return nil, err
	}
	fields := append(append([]rlp.Item{}, tx.fields...), sigItems...)
	return &xc_types.SignedTx{
		Encoded:   tx.encode(fields),
		Signature: sig,
	}, nil
}

func parsePublicKey(publicKey []byte) (*ecdsa.PublicKey, error) {
	if len(publicKey) == 33 {
		pub, err := crypto.DecompressPubkey(publicKey)
		if err != nil {
			return nil, xc_types.WrapErr(xc_types.ErrInvalidPublicKey, err)
		}
		return pub, nil
	}
	pub, err := crypto.UnmarshalPubkey(publicKey)
	if err != nil {
		return nil, xc_types.WrapErr(xc_types.ErrInvalidPublicKey, err)
	}
	return pub, nil
}
