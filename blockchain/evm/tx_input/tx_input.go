package tx_input

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	xc "github.com/openweb3-io/txsigner/types"
)

type TxMode string

const (
	TxModeLegacy  TxMode = "legacy"
	TxModeEIP1559 TxMode = "eip1559"
)

// SigningInput describes an ethereum transaction. Setting TokenContract turns a
// transfer of Amount to ToAddress into an ERC-20 transfer call on that contract.
type SigningInput struct {
	// Zero means the builder's default chain id.
	ChainID  xc.BigInt `json:"chain_id"`
	Nonce    uint64    `json:"nonce"`
	GasLimit uint64    `json:"gas_limit"`
	TxMode   TxMode    `json:"tx_mode"`

	// legacy
	GasPrice xc.BigInt `json:"gas_price"`
	// eip1559
	MaxInclusionFeePerGas xc.BigInt `json:"max_inclusion_fee_per_gas"`
	MaxFeePerGas          xc.BigInt `json:"max_fee_per_gas"`

	ToAddress     string        `json:"to_address"`
	Amount        xc.BigInt     `json:"amount"`
	TokenContract string        `json:"token_contract,omitempty"`
	Data          hexutil.Bytes `json:"data,omitempty"`

	PrivateKey hexutil.Bytes `json:"private_key,omitempty"`
}

var _ xc.SigningInput = &SigningInput{}
var _ xc.AmountSetter = &SigningInput{}

func NewSigningInput() *SigningInput {
	return &SigningInput{TxMode: TxModeLegacy}
}

func (input *SigningInput) GetBlockchain() xc.Blockchain {
	return xc.BlockchainEVM
}

func (input *SigningInput) GetPrivateKey() []byte {
	return input.PrivateKey
}

// SetAmount sets the value sent, or the token amount of an ERC-20 transfer.
func (input *SigningInput) SetAmount(amount xc.BigInt) error {
	input.Amount = amount
	return nil
}
