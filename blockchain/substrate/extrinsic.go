package substrate

import (
	"bytes"
	"crypto/ed25519"

	"github.com/openweb3-io/txsigner/builder/validation"
	"github.com/openweb3-io/txsigner/codec/scale"
	xc "github.com/openweb3-io/txsigner/types"
	"golang.org/x/crypto/blake2b"
)

const (
	// signed extrinsic, format version 4
	extrinsicVersion = 0x84
	sigTypeEd25519   = 0x00
	hashLength       = 32
	// payloads longer than this are signed by their blake2b-256 hash
	maxUnhashedPayload = 256
	// first runtime version with the CheckMetadataHash extension
	metadataHashSpec = 1002005
	// CheckMetadataHash mode, disabled
	metadataModeDisabled = 0x00
)

// Extrinsic is an unsigned transaction. Every field is fixed at build time.
type Extrinsic struct {
	call  []byte
	era   []byte
	nonce []byte
	tip   []byte
	// ChargeAssetTxPayment fee asset, nil when the extension is absent
	feeAsset []byte
	// CheckMetadataHash is present
	metadataHash bool
	specVersion  uint32
	txVersion    uint32
	genesisHash  []byte
	blockHash    []byte
	raw          bool
}

var _ xc.Tx = &Extrinsic{}

func NewExtrinsic(input *SigningInput, defaultNetwork uint16) (*Extrinsic, error) {
	if err := validation.FixedLength(xc.ErrMissingField, "genesis hash", input.GenesisHash, hashLength); err != nil {
		return nil, err
	}
	if err := validation.FixedLength(xc.ErrMissingField, "block hash", input.BlockHash, hashLength); err != nil {
		return nil, err
	}
	network := defaultNetwork
	if input.Network != nil {
		network = *input.Network
	}

	encoder := newCallEncoder(network, input.SpecVersion, input.MultiAddress)
	call, err := encoder.encode(&input.Call)
	if err != nil {
		return nil, err
	}
	tip, err := compactValue("tip", input.Tip)
	if err != nil {
		return nil, err
	}
	era := scale.ImmortalEra()
	if input.Era != nil {
		era = scale.MortalEra(input.Era.BlockNumber, input.Era.Period)
	}

	return &Extrinsic{
		call:         call,
		era:          era.Encode(),
		nonce:        scale.Compact(input.Nonce),
		tip:          tip,
		feeAsset:     feeAsset(&input.Call),
		metadataHash: network != NetworkPolymesh && input.SpecVersion >= metadataHashSpec,
		specVersion:  input.SpecVersion,
		txVersion:    input.TransactionVersion,
		genesisHash:  bytes.Clone(input.GenesisHash),
		blockHash:    bytes.Clone(input.BlockHash),
		raw:          encoder.raw,
	}, nil
}

// feeAsset encodes the Option<u32> fee asset of asset transfers.
func feeAsset(call *Call) []byte {
	var id uint32
	switch {
	case call.AssetTransfer != nil:
		id = call.AssetTransfer.FeeAssetID
	case call.BatchAssetTransfer != nil:
		id = call.BatchAssetTransfer.FeeAssetID
	default:
		return nil
	}
	if id == 0 {
		return scale.Option(nil)
	}
	return scale.Option(scale.U32(id))
}

// extra returns the signed extensions carried in the body after the signature.
func (tx *Extrinsic) extra() []byte {
	out := concat(tx.era, tx.nonce, tx.tip, tx.feeAsset)
	if tx.metadataHash {
		out = append(out, metadataModeDisabled)
	}
	return out
}

// Call returns the encoded call.
func (tx *Extrinsic) Call() []byte {
	return bytes.Clone(tx.call)
}

// Serialize returns the signing payload:
// call || era || nonce || tip || [fee asset] || [metadata mode] ||
// spec version || tx version || genesis hash || block hash || [metadata hash]
func (tx *Extrinsic) Serialize() ([]byte, error) {
	payload := concat(
		tx.call,
		tx.extra(),
		scale.U32(tx.specVersion),
		scale.U32(tx.txVersion),
		tx.genesisHash,
		tx.blockHash,
	)
	if tx.metadataHash {
		// no metadata hash is committed to
		payload = append(payload, scale.Option(nil)...)
	}
	return payload, nil
}

func (tx *Extrinsic) PreImage() (*xc.PreImage, error) {
	payload, _ := tx.Serialize()
	hash := payload
	if len(payload) > maxUnhashedPayload {
		sum := blake2b.Sum256(payload)
		hash = sum[:]
	}
	return &xc.PreImage{Data: payload, Hash: hash}, nil
}

// Compile returns
// length prefixed(0x84 || signer || 0x00 || signature || era || nonce || tip || [fee asset] || [metadata mode] || call)
func (tx *Extrinsic) Compile(signature xc.TxSignature, publicKey []byte) (*xc.SignedTx, error) {
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
	signer, err := scale.AccountID(publicKey, tx.raw)
	if err != nil {
		return nil, err
	}
	body := concat(
		[]byte{extrinsicVersion},
		signer,
		[]byte{sigTypeEd25519},
		signature,
		tx.extra(),
		tx.call,
	)
	return &xc.SignedTx{
		Encoded:   scale.LengthPrefixed(body),
		Signature: bytes.Clone(signature),
	}, nil
}
