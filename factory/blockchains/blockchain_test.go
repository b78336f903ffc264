package blockchains_test

import (
	"errors"
	"testing"

	"github.com/openweb3-io/txsigner/blockchain/fio"
	"github.com/openweb3-io/txsigner/blockchain/substrate"
	"github.com/openweb3-io/txsigner/factory/blockchains"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/stretchr/testify/suite"
)

type BlockchainTestSuite struct {
	suite.Suite
}

func TestBlockchainTestSuite(t *testing.T) {
	suite.Run(t, new(BlockchainTestSuite))
}

func (s *BlockchainTestSuite) TestAllNewTxBuilder() {
	require := s.Require()

	require.Equal(xc.SupportedBlockchains, blockchains.Supported())
	for _, blockchain := range xc.SupportedBlockchains {
		res, err := blockchains.NewTxBuilder(&xc.ChainConfig{Blockchain: blockchain})
		require.NoError(err, "Missing blockchain for NewTxBuilder: "+blockchain)
		require.Equal(blockchain, res.Blockchain())
		require.Equal(blockchain, res.NewSigningInput().GetBlockchain())
	}

	_, err := blockchains.NewTxBuilder(&xc.ChainConfig{Blockchain: "TEST"})
	require.True(errors.Is(err, xc.ErrUnsupportedBlockchain))
}

func (s *BlockchainTestSuite) TestSignatureAlgorithm() {
	require := s.Require()
	for _, blockchain := range xc.SupportedBlockchains {
		require.NotEmpty(blockchain.SignatureAlgorithm(), blockchain)
		require.NotEmpty(blockchain.PublicKeyFormat(), blockchain)
	}
	require.Equal(xc.K256Sha256, xc.BlockchainFIO.SignatureAlgorithm())
	require.Equal(xc.Ed255, xc.BlockchainSubstrate.SignatureAlgorithm())
	require.Empty(xc.Blockchain("TEST").SignatureAlgorithm())
}

func (s *BlockchainTestSuite) TestChainDefaultsApplied() {
	require := s.Require()

	_, err := blockchains.NewTxBuilder(&xc.ChainConfig{Blockchain: xc.BlockchainFIO, ChainID: "not-hex"})
	require.True(errors.Is(err, xc.ErrInvalidValue))

	_, err = blockchains.NewTxBuilder(&xc.ChainConfig{Blockchain: xc.BlockchainEVM, ChainID: "0x1"})
	require.Error(err)

	b, err := blockchains.NewTxBuilder(&xc.ChainConfig{Blockchain: xc.BlockchainSubstrate, Network: 2})
	require.NoError(err)
	require.IsType(&substrate.TxBuilder{}, b)
}

func (s *BlockchainTestSuite) TestSigningInputEnvelope() {
	require := s.Require()

	input := &fio.SigningInput{
		Expiry: 1579790000,
		TPID:   "rewards@wallet",
		Action: fio.Action{RenewFioAddress: &fio.RenewFioAddress{
			FioAddress: "nick@fiotestnet",
			Fee:        xc.NewBigIntFromUint64(3000000000),
		}},
	}
	bz, err := blockchains.MarshalSigningInput(input)
	require.NoError(err)
	require.Contains(string(bz), `"blockchain":"fio"`)

	decoded, err := blockchains.UnmarshalSigningInput(bz)
	require.NoError(err)
	require.Equal(input, decoded)

	_, err = blockchains.UnmarshalSigningInput([]byte(`{"nonce": 1}`))
	require.True(errors.Is(err, xc.ErrMissingField))

	_, err = blockchains.UnmarshalSigningInput([]byte(`{"blockchain": "solana"}`))
	require.True(errors.Is(err, xc.ErrUnsupportedBlockchain))

	_, err = blockchains.UnmarshalSigningInput([]byte(`[]`))
	require.True(errors.Is(err, xc.ErrInvalidInput))
}
