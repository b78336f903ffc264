package builder

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/openweb3-io/txsigner/blockchain/evm"
	"github.com/openweb3-io/txsigner/blockchain/evm/address"
	"github.com/openweb3-io/txsigner/blockchain/evm/tx"
	"github.com/openweb3-io/txsigner/blockchain/evm/tx_input"
	xcbuilder "github.com/openweb3-io/txsigner/builder"
	"github.com/openweb3-io/txsigner/builder/validation"
	"github.com/openweb3-io/txsigner/signer"
	xc "github.com/openweb3-io/txsigner/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"
)

// TxBuilder for EVM
type TxBuilder struct {
	// used when the signing input carries no chain id
	chainID *big.Int
}

var _ xcbuilder.TxBuilder = &TxBuilder{}

// NewTxBuilder creates a new EVM TxBuilder
func NewTxBuilder(options ...xcbuilder.BuilderOption) (*TxBuilder, error) {
	opts, err := xcbuilder.NewOptions(options...)
	if err != nil {
		return nil, err
	}
	b := &TxBuilder{}
	chainID, ok, err := xcbuilder.ChainIDUint64(opts)
	if err != nil {
		return nil, err
	}
	if ok {
		b.chainID = new(big.Int).SetUint64(chainID)
	}
	return b, nil
}

func (txBuilder *TxBuilder) Blockchain() xc.Blockchain {
	return xc.BlockchainEVM
}

func (txBuilder *TxBuilder) NewSigningInput() xc.SigningInput {
	return tx_input.NewSigningInput()
}

func (txBuilder *TxBuilder) NewLocalSigner(privateKey []byte) (signer.Signer, error) {
	return evm.NewLocalSignerFromBytes(privateKey)
}

func (txBuilder *TxBuilder) Build(input xc.SigningInput) (xc.Tx, error) {
	evmInput, ok := input.(*tx_input.SigningInput)
	if !ok {
		return nil, xc.NewErr(xc.ErrInvalidInput, "expected evm signing input, got %T", input)
	}

	chainID := evmInput.ChainID.Int()
	if chainID.Sign() == 0 && txBuilder.chainID != nil {
		chainID = txBuilder.chainID
	}
	if chainID.Sign() <= 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "chain id is required")
	}

	to, value, data, err := txBuilder.destination(evmInput)
	if err != nil {
		return nil, err
	}

	zap.S().Debugw("building evm transaction",
		"chain_id", chainID.String(),
		"mode", evmInput.TxMode,
		"nonce", evmInput.Nonce,
		"to", to.Hex(),
	)

	switch evmInput.TxMode {
	case tx_input.TxModeLegacy, "":
		gasPrice, err := validation.Uint256("gas price", evmInput.GasPrice)
		if err != nil {
			return nil, err
		}
		return tx.NewLegacyTx(chainID, evmInput.Nonce, gasPrice, evmInput.GasLimit, to.Bytes(), value, data)
	case tx_input.TxModeEIP1559:
		tip, err := validation.Uint256("max inclusion fee per gas", evmInput.MaxInclusionFeePerGas)
		if err != nil {
			return nil, err
		}
		feeCap, err := validation.Uint256("max fee per gas", evmInput.MaxFeePerGas)
		if err != nil {
			return nil, err
		}
		return tx.NewDynamicFeeTx(chainID, evmInput.Nonce, tip, feeCap, evmInput.GasLimit, to.Bytes(), value, data)
	default:
		return nil, xc.NewErr(xc.ErrNotSupported, "unknown tx mode %q", evmInput.TxMode)
	}
}

// destination resolves the call target. A token transfer moves no ether and
// calls the contract instead.
func (txBuilder *TxBuilder) destination(input *tx_input.SigningInput) (common.Address, *big.Int, []byte, error) {
	amount, err := validation.Uint256("amount", input.Amount)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	to, err := address.FromHex(input.ToAddress)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	if input.TokenContract == "" {
		return to, amount, input.Data, nil
	}
	if len(input.Data) > 0 {
		return common.Address{}, nil, nil, xc.NewErr(xc.ErrInvalidInput, "token transfers cannot carry extra data")
	}
	contract, err := address.FromHex(input.TokenContract)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	payload, err := BuildERC20Payload(input.ToAddress, input.Amount)
	if err != nil {
		return common.Address{}, nil, nil, err
	}
	return contract, new(big.Int), payload, nil
}

// BuildERC20Payload encodes transfer(address,uint256).
func BuildERC20Payload(to string, amount xc.BigInt) ([]byte, error) {
	transferFnSignature := []byte("transfer(address,uint256)")
	hash := sha3.NewLegacyKeccak256()
	hash.Write(transferFnSignature)
	methodID := hash.Sum(nil)[:4]

	toAddress, err := address.FromHex(to)
	if err != nil {
		return nil, err
	}
	value, err := validation.Uint256("amount", amount)
	if err != nil {
		return nil, err
	}
	paddedAddress := common.LeftPadBytes(toAddress.Bytes(), 32)

	paddedAmount := common.LeftPadBytes(value.Bytes(), 32)

	var data []byte
	data = append(data, methodID...)
	data = append(data, paddedAddress...)
	data = append(data, paddedAmount...)

	return data, nil
}
