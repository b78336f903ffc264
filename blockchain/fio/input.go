package fio

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	xc "github.com/openweb3-io/txsigner/types"
)

type PublicAddress struct {
	TokenCode string `json:"token_code"`
	// defaults to the token code
	ChainCode string `json:"chain_code,omitempty"`
	Address   string `json:"address"`
}

type RegisterFioAddress struct {
	FioAddress string `json:"fio_address"`
	// defaults to the signer's key
	OwnerPublicKey string    `json:"owner_public_key,omitempty"`
	Fee            xc.BigInt `json:"fee"`
}

type AddPubAddress struct {
	FioAddress      string           `json:"fio_address"`
	PublicAddresses []*PublicAddress `json:"public_addresses"`
	Fee             xc.BigInt        `json:"fee"`
}

type RenewFioAddress struct {
	FioAddress string    `json:"fio_address"`
	Fee        xc.BigInt `json:"fee"`
}

type Transfer struct {
	PayeePublicKey string    `json:"payee_public_key"`
	Amount         xc.BigInt `json:"amount"`
	Fee            xc.BigInt `json:"fee"`
}

// NewFundsRequest asks the payer for funds. Content is encrypted from the
// signer to the payer's public key; EncryptedContent carries content that was
// encrypted elsewhere and is required when signing without a private key.
type NewFundsRequest struct {
	PayerFioName string `json:"payer_fio_name"`
	// FIO public key the content is encrypted to
	PayerFioAddress  string           `json:"payer_fio_address"`
	PayeeFioName     string           `json:"payee_fio_name"`
	Content          *NewFundsContent `json:"content,omitempty"`
	EncryptedContent string           `json:"encrypted_content,omitempty"`
	// random when empty
	IV  hexutil.Bytes `json:"iv,omitempty"`
	Fee xc.BigInt     `json:"fee"`
}

// Action holds exactly one action.
type Action struct {
	RegisterFioAddress *RegisterFioAddress `json:"register_fio_address,omitempty"`
	AddPubAddress      *AddPubAddress      `json:"add_pub_address,omitempty"`
	RenewFioAddress    *RenewFioAddress    `json:"renew_fio_address,omitempty"`
	Transfer           *Transfer           `json:"transfer,omitempty"`
	NewFundsRequest    *NewFundsRequest    `json:"new_funds_request,omitempty"`
}

type SigningInput struct {
	// overrides the configured chain id
	ChainID hexutil.Bytes `json:"chain_id,omitempty"`
	// absolute unix time in seconds
	Expiry uint32 `json:"expiry"`
	// truncated to 16 bits on the wire
	HeadBlockNumber uint64 `json:"head_block_number"`
	// truncated to 32 bits on the wire
	RefBlockPrefix uint64 `json:"ref_block_prefix"`
	TPID           string `json:"tpid"`
	// FIO public key of the signer. Derived from the private key when empty.
	PublicKey  string        `json:"public_key,omitempty"`
	Action     Action        `json:"action"`
	PrivateKey hexutil.Bytes `json:"private_key,omitempty"`
}

var _ xc.SigningInput = &SigningInput{}
var _ xc.AmountSetter = &SigningInput{}

func (input *SigningInput) GetBlockchain() xc.Blockchain {
	return xc.BlockchainFIO
}

func (input *SigningInput) GetPrivateKey() []byte {
	return input.PrivateKey
}

// SetAmount applies to token transfers only.
func (input *SigningInput) SetAmount(amount xc.BigInt) error {
	if input.Action.Transfer == nil {
		return xc.NewErr(xc.ErrNotSupported, "action has no amount")
	}
	input.Action.Transfer.Amount = amount
	return nil
}
