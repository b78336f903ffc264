package compiler_test

import (
	"errors"
	"testing"

	"github.com/openweb3-io/txsigner/blockchain/aion"
	evmbuilder "github.com/openweb3-io/txsigner/blockchain/evm/builder"
	"github.com/openweb3-io/txsigner/blockchain/evm/tx_input"
	"github.com/openweb3-io/txsigner/blockchain/substrate"
	"github.com/openweb3-io/txsigner/compiler"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/stretchr/testify/require"
)

func TestDecodeSigningInputJSON(t *testing.T) {
	b, err := aion.NewTxBuilder()
	require.NoError(t, err)

	input, err := compiler.DecodeSigningInput(b, []byte(`{
		"nonce": 9,
		"gas_price": 20000000000,
		"gas_limit": 21000,
		"to_address": "0xa082c3de528b7807dc27ad66debb16d4cfe4054209398cee619dd95955063d1e",
		"amount": "10000",
		"timestamp": 155157377101,
		"private_key": "0xdb33ffdf82c7ba903daf68d961d3c23c20471a8ce6b408e52d579fd8add80cc9"
	}`))
	require.NoError(t, err)
	aionInput := input.(*aion.SigningInput)
	require.EqualValues(t, 9, aionInput.Nonce)
	require.Equal(t, "10000", aionInput.Amount.String())
	require.Len(t, aionInput.GetPrivateKey(), 32)
}

func TestDecodeSigningInputYAML(t *testing.T) {
	b, err := substrate.NewTxBuilder()
	require.NoError(t, err)

	input, err := compiler.DecodeSigningInput(b, []byte(`
block_hash: "0x343a3f4258fd92f5ca6ca5abdf473d86a78b0bcd0dc09c568ca594245cc8c642"
genesis_hash: "0x91b171bb158e2d3848fa23a9f1c25182fb8e20313b2c1eb49219da7a70ce90c3"
spec_version: 17
transaction_version: 3
era:
  block_number: 927699
  period: 8
call:
  transfer:
    to_address: "14E5nqKAp3oAJcmzgZhUD2RcptBeUBScxKHgJKU4HPNcKVf3"
    value: 12345
`))
	require.NoError(t, err)
	substrateInput := input.(*substrate.SigningInput)
	require.EqualValues(t, 17, substrateInput.SpecVersion)
	require.EqualValues(t, 927699, substrateInput.Era.BlockNumber)
	require.Equal(t, "12345", substrateInput.Call.Transfer.Value.String())
	require.Empty(t, substrateInput.GetPrivateKey())
}

func TestDecodeSigningInputYAMLBigIntegers(t *testing.T) {
	b, err := evmbuilder.NewTxBuilder()
	require.NoError(t, err)

	input, err := compiler.DecodeSigningInput(b, []byte(`
chain_id: 0x38
nonce: 18446744073709551615
gas_limit: 21000
gas_price: &price 340282366920938463463374607431768211455
max_fee_per_gas: *price
to_address: "0x3535353535353535353535353535353535353535"
amount: 1000000000000000000000000000000
`))
	require.NoError(t, err)
	evmInput := input.(*tx_input.SigningInput)
	require.Equal(t, "56", evmInput.ChainID.String())
	require.Equal(t, uint64(18446744073709551615), evmInput.Nonce)
	require.Equal(t, uint64(21000), evmInput.GasLimit)
	require.Equal(t, "340282366920938463463374607431768211455", evmInput.GasPrice.String())
	require.Equal(t, "340282366920938463463374607431768211455", evmInput.MaxFeePerGas.String())
	require.Equal(t, "1000000000000000000000000000000", evmInput.Amount.String())

	// fractions are not integers and are rejected by the amount decoder
	_, err = compiler.DecodeSigningInput(b, []byte("amount: 1.5\nnonce: 1\n"))
	require.True(t, errors.Is(err, xc.ErrInvalidInput))
}

func TestDecodeSigningInputErrors(t *testing.T) {
	b, err := aion.NewTxBuilder()
	require.NoError(t, err)

	for _, data := range []string{
		"",
		`{"nonce": 1, "unknown": true}`,
		`{"nonce": "one"}`,
		"nonce: [1",
	} {
		_, err := compiler.DecodeSigningInput(b, []byte(data))
		require.Error(t, err, data)
		var xcErr *xc.Error
		require.True(t, errors.As(err, &xcErr), data)
	}
}
