package aion

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	xc "github.com/openweb3-io/txsigner/types"
)

// SigningInput is a request to transfer AION.
type SigningInput struct {
	Nonce     uint64        `json:"nonce"`
	GasPrice  uint64        `json:"gas_price"`
	GasLimit  uint64        `json:"gas_limit"`
	ToAddress string        `json:"to_address"`
	Amount    xc.BigInt     `json:"amount"`
	Payload   hexutil.Bytes `json:"payload,omitempty"`
	// Timestamp in microseconds, supplied by the caller.
	Timestamp  uint64        `json:"timestamp"`
	PrivateKey hexutil.Bytes `json:"private_key,omitempty"`
}

var _ xc.SigningInput = &SigningInput{}
var _ xc.AmountSetter = &SigningInput{}

func (input *SigningInput) GetBlockchain() xc.Blockchain {
	return xc.BlockchainAion
}

func (input *SigningInput) GetPrivateKey() []byte {
	return input.PrivateKey
}

func (input *SigningInput) SetAmount(amount xc.BigInt) error {
	input.Amount = amount
	return nil
}
