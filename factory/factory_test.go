package factory_test

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/txsigner/blockchain/fio"
	"github.com/openweb3-io/txsigner/compiler"
	"github.com/openweb3-io/txsigner/factory"
	"github.com/openweb3-io/txsigner/factory/defaults/chains"
	"github.com/openweb3-io/txsigner/signer"
	"github.com/openweb3-io/txsigner/signer/mock"
	testutil "github.com/openweb3-io/txsigner/testutil/types"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/stretchr/testify/suite"
)

type FactoryTestSuite struct {
	suite.Suite
	Factory *factory.Factory
}

func (s *FactoryTestSuite) SetupTest() {
	s.Factory = factory.NewDefaultFactory()
}

func TestFactory(t *testing.T) {
	suite.Run(t, new(FactoryTestSuite))
}

func (s *FactoryTestSuite) TestChains() {
	require := s.Require()
	var names []string
	for _, cfg := range s.Factory.Chains() {
		names = append(names, cfg.Chain)
	}
	require.Equal([]string{"AION", "BNB", "DOT", "ETH", "FIO", "KSM", "MATIC"}, names)

	ksm, err := s.Factory.GetChain("ksm")
	require.NoError(err)
	require.Equal(xc.BlockchainSubstrate, ksm.Blockchain)
	require.EqualValues(2, ksm.Network)

	_, err = s.Factory.GetChain("SOL")
	require.True(errors.Is(err, xc.ErrNotSupported))
}

func (s *FactoryTestSuite) TestNewTxBuilder() {
	require := s.Require()
	for _, cfg := range s.Factory.Chains() {
		b, err := s.Factory.NewTxBuilder(cfg)
		require.NoError(err)
		require.Equal(cfg.Blockchain, b.Blockchain())
	}

	_, err := s.Factory.NewTxBuilder(&xc.ChainConfig{Chain: "TEST"})
	require.True(errors.Is(err, xc.ErrUnsupportedBlockchain))
}

func (s *FactoryTestSuite) TestNewSigner() {
	require := s.Require()
	keys := map[xc.Blockchain]string{
		xc.BlockchainAion:      "db33ffdf82c7ba903daf68d961d3c23c20471a8ce6b408e52d579fd8add80cc9",
		xc.BlockchainEVM:       "4646464646464646464646464646464646464646464646464646464646464646",
		xc.BlockchainFIO:       "ba0828d5734b65e3bcc2c51c93dfc26dd71bd666cc0273adee77d73d9a322035",
		xc.BlockchainSubstrate: "abf8e5bdbe30c65656c0a3cbd181ff8a56294a69dfedd27982aace4a76909115",
	}
	for _, cfg := range s.Factory.Chains() {
		local, err := s.Factory.NewSigner(context.Background(), cfg, testutil.FromHex(keys[cfg.Blockchain]))
		require.NoError(err, cfg.Chain)
		pub, err := local.PublicKey(context.Background())
		require.NoError(err)
		require.Len(pub, map[xc.PublicKeyFormat]int{xc.Raw: 32, xc.Compressed: 33, xc.Uncompressed: 65}[cfg.Blockchain.PublicKeyFormat()])
	}

	_, err := s.Factory.NewSigner(context.Background(), &xc.ChainConfig{Chain: "TEST"}, nil)
	require.True(errors.Is(err, xc.ErrUnsupportedBlockchain))
}

func (s *FactoryTestSuite) TestFailoverSigner() {
	require := s.Require()
	remote := mock.NewMockSigner(gomock.NewController(s.T()))
	f, err := factory.NewFactory(chains.Default, signer.WithFailoverSignerCreator(func(ctx context.Context, privateKey []byte) (signer.Signer, error) {
		return remote, nil
	}))
	require.NoError(err)

	got, err := f.NewSigner(context.Background(), &xc.ChainConfig{Chain: "TEST", Blockchain: "remote"}, nil)
	require.NoError(err)
	require.Equal(remote, got)
}

func (s *FactoryTestSuite) TestNewFactoryErrors() {
	require := s.Require()
	_, err := factory.NewFactory([]*xc.ChainConfig{{Chain: "X", Blockchain: "unknown"}})
	require.True(errors.Is(err, xc.ErrUnsupportedBlockchain))

	_, err = factory.NewFactory([]*xc.ChainConfig{
		{Chain: "eth", Blockchain: xc.BlockchainEVM, ChainID: "1"},
		{Chain: "ETH", Blockchain: xc.BlockchainEVM, ChainID: "1"},
	})
	require.True(errors.Is(err, xc.ErrInvalidInput))
}

func (s *FactoryTestSuite) TestChainIDFromConfig() {
	require := s.Require()
	cfg, err := s.Factory.GetChain("FIO")
	require.NoError(err)
	b, err := s.Factory.NewTxBuilder(cfg)
	require.NoError(err)

	// the request does not carry a chain id; mainnet's is used
	input := &fio.SigningInput{
		Expiry:          1579790000,
		HeadBlockNumber: 50000,
		RefBlockPrefix:  4000123456,
		PublicKey:       "FIO6m1fMdTpRkRBnedvYshXCxLFiC5suRU8KDfx8xxtXp2hntxpnf",
		Action: fio.Action{RenewFioAddress: &fio.RenewFioAddress{
			FioAddress: "nick@fiotestnet",
			Fee:        xc.NewBigIntFromUint64(3000000000),
		}},
	}
	preImage, err := compiler.PreImageHash(b, input)
	require.NoError(err)
	require.Equal(cfg.ChainID, hex.EncodeToString(preImage.Data[:32]))
}
