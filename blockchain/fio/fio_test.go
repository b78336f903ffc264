package fio_test

import (
	"context"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/openweb3-io/txsigner/blockchain/fio"
	xcbuilder "github.com/openweb3-io/txsigner/builder"
	testutil "github.com/openweb3-io/txsigner/testutil/types"
	xc "github.com/openweb3-io/txsigner/types"
	"github.com/stretchr/testify/require"
)

const (
	chainID    = "4e46572250454b796d7296eec9e8896327ea82dd40f2cd74cf1b1d8ba90bcd77"
	privateKey = "ba0828d5734b65e3bcc2c51c93dfc26dd71bd666cc0273adee77d73d9a322035"
	publicKey  = "FIO6m1fMdTpRkRBnedvYshXCxLFiC5suRU8KDfx8xxtXp2hntxpnf"
	payee      = "FIO7uMZoeei5HtXAD24C4yCkpWWbf24bjYtrRNjWdmGCXHZccwuiE"
	tpid       = "rewards@wallet"

	transferPacked = "b0ae295e50c3400a6dee00000000010000980ad20ca85be0e1d195ba85e7cd01102b2f46fca756b200000000a8ed32325d3546494f37754d5a6f6565693548745841443234433479436b70575762663234626a597472524e6a57646d474358485a63637775694500ca9a3b0000000080b2e60e00000000102b2f46fca756b20e726577617264734077616c6c657400"
	transferSig    = "SIG_K1_K9VRCnvaTYN7vgcoVKVXgyJTdKUGV8hLXgFLoEbvqAcFxy7DXQ1rSnAfEuabi4ATkgmvnpaSBdVFN7TBtM1wrbZYqeJQw9"
	registerPacked = "3f99295ec99b904215ff0000000001003056372503a85b0000c6eaa66498ba01102b2f46fca756b200000000a8ed3232650f6164616d4066696f746573746e65743546494f366d31664d645470526b52426e6564765973685843784c4669433573755255384b44667838787874587032686e7478706e6600f2052a01000000102b2f46fca756b20e726577617264734077616c6c657400"
	registerSig    = "SIG_K1_K19ugLriG3ApYgjJCRDsy21p9xgsjbDtqBuZrmAEix9XYzndR1kNbJ6fXCngMJMAhxUHfwHAsPnh58otXiJZkazaM1EkS5"
	addPacked      = "15c2285e2d2d23622eff0000000001003056372503a85b0000c6eaa664523201102b2f46fca756b200000000a8ed3232c9010f6164616d4066696f746573746e65740303425443034254432a626331717679343037347267676b647232707a773576706e6e3632656730736d7a6c787770373064377603455448034554482a30786365356342366339324461333762624261393142643430443443394434443732344133613846353103424e4203424e422a626e6231747333646735346170776c76723968757076326e306a366534367135347a6e6e75736a6b39730000000000000000102b2f46fca756b20e726577617264734077616c6c657400"
	addSig         = "SIG_K1_K3zimaMKU8cBhVRPw46KM2u7uQWaAKXrnoeYZ7MEbp6sVJcDQmQR2RtdavpUPwkAnYUkd8NqLun8H48tcxZBcTUgkiPGVJ"
	renewPacked    = "289b295ec99b904215ff0000000001003056372503a85b80b1ba2919aea6ba01102b2f46fca756b200000000a8ed32322f0f6e69636b4066696f746573746e6574005ed0b200000000102b2f46fca756b20e726577617264734077616c6c657400"
	renewSig       = "SIG_K1_Jxz7oCJ7Z4ECsxqb2utqBcyP3zPQCeQCBws9wWQjyptUKoWVk2AyCVEqtdMHJwqtLniio5Z7npMnaZB8E4pa2G75P9uGkb"
	newFundsPacked = "289b295ec99b904215ff000000000100403ed4aa0ba85b00acba384dbdb89a01102b2f46fca756b200000000a8ed32328802106d6172696f4066696f746573746e657410616c6963654066696f746573746e6574c00141414543417751464267634943516f4c4441304f442f3575342f6b436b7042554c4a44682f546951334d31534f4e4938426668496c4e54766d39354249586d54396f616f7a55632f6c6c3942726e57426563464e767a76766f6d3751577a517250717241645035683433305732716b52355266416555446a704f514732364c347a6936767241553052764855474e382b685779736a6971506b2b7a455a444952534678426268796c69686d59334f4752342f5a46466358484967343241327834005ed0b2000000000c716466656a7a32613577706c0e726577617264734077616c6c657400"
	newFundsSig    = "SIG_K1_Kk79iVcQMpqpVgZwGTmC1rxgCTLy5BDFtHd8FvjRNm2FqNHR9dpeUmPTNqBKGMNG3BsPy4c5u26TuEDpS87SnyMpF43cZk"
	payerAddress   = "FIO5kJKNHwctcfUM5XZyiWSqSTM5HTzznJP9F3ZdbhaQAHEVq575o"
)

func transferInput() *fio.SigningInput {
	return &fio.SigningInput{
		ChainID:         testutil.FromHex(chainID),
		Expiry:          1579790000,
		HeadBlockNumber: 50000,
		RefBlockPrefix:  4000123456,
		TPID:            tpid,
		Action: fio.Action{
			Transfer: &fio.Transfer{
				PayeePublicKey: payee,
				Amount:         xc.NewBigIntFromUint64(1000000000),
				Fee:            xc.NewBigIntFromUint64(250000000),
			},
		},
		PrivateKey: testutil.FromHex(privateKey),
	}
}

func registerInput() *fio.SigningInput {
	return &fio.SigningInput{
		ChainID:         testutil.FromHex(chainID),
		Expiry:          1579784511,
		HeadBlockNumber: 39881,
		RefBlockPrefix:  4279583376,
		TPID:            tpid,
		Action: fio.Action{
			RegisterFioAddress: &fio.RegisterFioAddress{
				FioAddress: "adam@fiotestnet",
				Fee:        xc.NewBigIntFromUint64(5000000000),
			},
		},
		PrivateKey: testutil.FromHex(privateKey),
	}
}

func addInput() *fio.SigningInput {
	return &fio.SigningInput{
		ChainID:         testutil.FromHex(chainID),
		Expiry:          1579729429,
		HeadBlockNumber: 11565,
		RefBlockPrefix:  4281229859,
		TPID:            tpid,
		Action: fio.Action{
			AddPubAddress: &fio.AddPubAddress{
				FioAddress: "adam@fiotestnet",
				PublicAddresses: []*fio.PublicAddress{
					{TokenCode: "BTC", Address: "bc1qvy4074rggkdr2pzw5vpnn62eg0smzlxwp70d7v"},
					{TokenCode: "ETH", Address: "0xce5cB6c92Da37bbBa91Bd40D4C9D4D724A3a8F51"},
					{TokenCode: "BNB", ChainCode: "BNB", Address: "bnb1ts3dg54apwlvr9hupv2n0j6e46q54znnusjk9s"},
				},
				Fee: xc.NewBigIntFromUint64(0),
			},
		},
		PrivateKey: testutil.FromHex(privateKey),
	}
}

func renewInput() *fio.SigningInput {
	return &fio.SigningInput{
		ChainID:         testutil.FromHex(chainID),
		Expiry:          1579785000,
		HeadBlockNumber: 39881,
		RefBlockPrefix:  4279583376,
		TPID:            tpid,
		Action: fio.Action{
			RenewFioAddress: &fio.RenewFioAddress{
				FioAddress: "nick@fiotestnet",
				Fee:        xc.NewBigIntFromUint64(3000000000),
			},
		},
		PrivateKey: testutil.FromHex(privateKey),
	}
}

func newFundsInput() *fio.SigningInput {
	return &fio.SigningInput{
		ChainID:         testutil.FromHex(chainID),
		Expiry:          1579785000,
		HeadBlockNumber: 39881,
		RefBlockPrefix:  4279583376,
		TPID:            tpid,
		Action: fio.Action{
			NewFundsRequest: &fio.NewFundsRequest{
				PayerFioName:    "mario@fiotestnet",
				PayerFioAddress: payerAddress,
				PayeeFioName:    "alice@fiotestnet",
				Content: &fio.NewFundsContent{
					PayeePublicAddress: "bc1qvy4074rggkdr2pzw5vpnn62eg0smzlxwp70d7v",
					Amount:             "5",
					TokenCode:          "BTC",
					Memo:               "Memo",
					Hash:               "Hash",
					OfflineURL:         "https://trustwallet.com",
				},
				IV:  testutil.FromHex("000102030405060708090a0b0c0d0e0f"),
				Fee: xc.NewBigIntFromUint64(3000000000),
			},
		},
		PrivateKey: testutil.FromHex(privateKey),
	}
}

type otherInput struct{}

func (*otherInput) GetBlockchain() xc.Blockchain { return xc.BlockchainAion }
func (*otherInput) GetPrivateKey() []byte        { return nil }

func envelope(packed, sig string) string {
	return `{"compression":"none","packed_context_free_data":"","packed_trx":"` + packed + `","signatures":["` + sig + `"]}`
}

func signLocally(t *testing.T, input *fio.SigningInput) (*xc.SignedTx, []byte, []byte) {
	b, err := fio.NewTxBuilder()
	require.NoError(t, err)
	tx, err := b.Build(input)
	require.NoError(t, err)
	preImage, err := tx.PreImage()
	require.NoError(t, err)

	signer, err := b.NewLocalSigner(input.GetPrivateKey())
	require.NoError(t, err)
	pub, err := signer.PublicKey(context.Background())
	require.NoError(t, err)
	sig, err := signer.Sign(context.Background(), preImage.Hash)
	require.NoError(t, err)

	signed, err := tx.Compile(sig, pub)
	require.NoError(t, err)
	return signed, sig, pub
}

func TestSign(t *testing.T) {
	vectors := []struct {
		name   string
		input  *fio.SigningInput
		packed string
		sig    string
	}{
		{"transfer", transferInput(), transferPacked, transferSig},
		{"register", registerInput(), registerPacked, registerSig},
		{"add_pub_address", addInput(), addPacked, addSig},
		{"renew", renewInput(), renewPacked, renewSig},
		{"new_funds_request", newFundsInput(), newFundsPacked, newFundsSig},
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			signed, sig, _ := signLocally(t, v.input)
			require.Equal(t, v.packed, signed.Hex())
			require.Equal(t, envelope(v.packed, v.sig), signed.JSON)
			require.True(t, fio.IsCanonical(sig))

			text, err := fio.EncodeSignature(signed.Signature)
			require.NoError(t, err)
			require.Equal(t, v.sig, text)
		})
	}
}

func TestPreImage(t *testing.T) {
	tx, err := fio.NewTx(transferInput(), nil)
	require.NoError(t, err)
	preImage, err := tx.PreImage()
	require.NoError(t, err)
	require.Equal(t, "6a82a57fb9bfc43918aa757d6094ba71fa2c7ece1691c4b8551a0607273771d7", hex.EncodeToString(preImage.Hash))
	require.Equal(t, chainID+transferPacked+hex.EncodeToString(make([]byte, 32)), hex.EncodeToString(preImage.Data))
	require.Equal(t, "qdfejz2a5wpl", tx.Actor().String())
}

func TestCompileExternalSignature(t *testing.T) {
	sig, err := fio.ParseSignature(transferSig)
	require.NoError(t, err)
	require.Equal(t, "1f6ccee1f4cd188cc8aefa63f8fda8c90c0493ca1504806d3a26a7300a9687bb701f188337bc9a32f01ee0c2ecf030aee197b050460d72f7272cc6ce36ef14c95b", hex.EncodeToString(sig))

	// no private key: the signer is identified by its public key
	input := transferInput()
	input.PrivateKey = nil
	input.PublicKey = publicKey
	b, err := fio.NewTxBuilder(xcbuilder.WithChainID(chainID))
	require.NoError(t, err)
	tx, err := b.Build(input)
	require.NoError(t, err)

	pub, err := fio.ParsePublicKey(publicKey)
	require.NoError(t, err)
	for _, key := range [][]byte{nil, pub} {
		signed, err := tx.Compile(sig, key)
		require.NoError(t, err)
		require.Equal(t, transferPacked, signed.Hex())
		require.Equal(t, envelope(transferPacked, transferSig), signed.JSON)
	}
}

func TestPathsAgree(t *testing.T) {
	signed, sig, pub := signLocally(t, addInput())

	input := addInput()
	input.PrivateKey = nil
	input.PublicKey = publicKey
	tx, err := fio.NewTx(input, nil)
	require.NoError(t, err)
	compiled, err := tx.Compile(sig, pub)
	require.NoError(t, err)
	require.Equal(t, signed, compiled)
}

func TestCompileErrors(t *testing.T) {
	tx, err := fio.NewTx(transferInput(), nil)
	require.NoError(t, err)
	sig, err := fio.ParseSignature(transferSig)
	require.NoError(t, err)

	_, err = tx.Compile(sig[:64], nil)
	require.True(t, errors.Is(err, xc.ErrInvalidSignature))

	wrongHeader := append([]byte{27}, sig[1:]...)
	_, err = tx.Compile(wrongHeader, nil)
	require.True(t, errors.Is(err, xc.ErrInvalidSignature))

	nonCanonical := append([]byte{}, sig...)
	nonCanonical[1] |= 0x80
	_, err = tx.Compile(nonCanonical, nil)
	require.True(t, errors.Is(err, xc.ErrInvalidSignature))

	other, err := fio.ParsePublicKey(payee)
	require.NoError(t, err)
	_, err = tx.Compile(sig, other)
	require.True(t, errors.Is(err, xc.ErrInvalidSignature))

	_, err = tx.Compile(sig, []byte{2, 1, 2, 3})
	require.True(t, errors.Is(err, xc.ErrInvalidPublicKey))

	// a valid signature from a key that does not own the actor
	stranger, err := fio.NewLocalSigner(testutil.FromHex("0101010101010101010101010101010101010101010101010101010101010101"))
	require.NoError(t, err)
	preImage, err := tx.PreImage()
	require.NoError(t, err)
	strangerSig, err := stranger.Sign(context.Background(), preImage.Hash)
	require.NoError(t, err)
	_, err = tx.Compile(strangerSig, nil)
	require.True(t, errors.Is(err, xc.ErrInvalidSignature))
}

func TestBuildErrors(t *testing.T) {
	b, err := fio.NewTxBuilder()
	require.NoError(t, err)

	input := transferInput()
	input.ChainID = nil
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = transferInput()
	input.Expiry = 0
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = transferInput()
	input.PrivateKey = nil
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = transferInput()
	input.Action = fio.Action{}
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = transferInput()
	input.Action.RenewFioAddress = renewInput().Action.RenewFioAddress
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidInput))

	input = transferInput()
	input.Action.Transfer.PayeePublicKey = "FIO7uMZoeei5HtXAD24C4yCkpWWbf24bjYtrRNjWdmGCXHZccwuiF"
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidAddress))

	input = transferInput()
	input.Action.Transfer.Amount = xc.NewBigIntFromInt64(-1)
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidValue))

	input = transferInput()
	input.PrivateKey = make([]byte, 32)
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidPrivateKey))

	_, err = b.Build(&otherInput{})
	require.True(t, errors.Is(err, xc.ErrInvalidInput))

	_, err = fio.NewTxBuilder(xcbuilder.WithChainID("abcd"))
	require.True(t, errors.Is(err, xc.ErrInvalidValue))
}

func TestBlockParamsTruncated(t *testing.T) {
	input := transferInput()
	input.HeadBlockNumber = 0xFFAB1234
	input.RefBlockPrefix = 0xFFABCDEF12345678
	tx, err := fio.NewTx(input, nil)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), tx.Transaction().RefBlockNum)
	require.Equal(t, uint32(0x12345678), tx.Transaction().RefBlockPrefix)
}

func TestDecodeTransaction(t *testing.T) {
	for _, packed := range []string{transferPacked, registerPacked, addPacked, renewPacked, newFundsPacked} {
		decoded, err := fio.DecodeTransaction(testutil.FromHex(packed))
		require.NoError(t, err)
		reencoded, err := decoded.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, packed, hex.EncodeToString(reencoded))
	}

	decoded, err := fio.DecodeTransaction(testutil.FromHex(addPacked))
	require.NoError(t, err)
	require.Equal(t, uint32(1579729429), decoded.Expiration)
	require.Len(t, decoded.Actions, 1)
	action := decoded.Actions[0]
	require.Equal(t, "fio.address", action.Account.String())
	require.Equal(t, "addaddress", action.Name.String())
	require.Equal(t, "qdfejz2a5wpl", action.Authorization[0].Actor.String())
	require.Equal(t, "active", action.Authorization[0].Permission.String())

	data, err := fio.DecodeActionData(action)
	require.NoError(t, err)
	require.Equal(t, tpid, data.TPID)
	require.Equal(t, "qdfejz2a5wpl", data.Actor.String())
	require.Len(t, data.Action.AddPubAddress.PublicAddresses, 3)
	require.Equal(t, "ETH", data.Action.AddPubAddress.PublicAddresses[1].ChainCode)

	decoded, err = fio.DecodeTransaction(testutil.FromHex(transferPacked))
	require.NoError(t, err)
	data, err = fio.DecodeActionData(decoded.Actions[0])
	require.NoError(t, err)
	require.Equal(t, payee, data.Action.Transfer.PayeePublicKey)
	require.Equal(t, "1000000000", data.Action.Transfer.Amount.String())
	require.Equal(t, "250000000", data.Action.Transfer.Fee.String())
}

func TestDecodeTransactionTruncated(t *testing.T) {
	packed := testutil.FromHex(renewPacked)
	for i := 0; i < len(packed); i++ {
		_, err := fio.DecodeTransaction(packed[:i])
		require.True(t, errors.Is(err, xc.ErrTruncatedInput), "prefix of %d bytes", i)
	}

	_, err := fio.DecodeTransaction(append(packed, 0))
	require.True(t, errors.Is(err, xc.ErrInvalidValue))

	decoded, err := fio.DecodeTransaction(packed)
	require.NoError(t, err)
	action := decoded.Actions[0]
	for i := 0; i < len(action.Data); i++ {
		truncated := *action
		truncated.Data = action.Data[:i]
		_, err := fio.DecodeActionData(&truncated)
		require.True(t, errors.Is(err, xc.ErrTruncatedInput), "data prefix of %d bytes", i)
	}
}

func TestSignerAddress(t *testing.T) {
	signer, err := fio.NewLocalSigner(testutil.FromHex(privateKey))
	require.NoError(t, err)
	addr, err := signer.Address()
	require.NoError(t, err)
	require.Equal(t, publicKey, addr)
	require.Equal(t, "qdfejz2a5wpl", signer.Actor().String())

	_, err = fio.NewLocalSigner(testutil.FromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"))
	require.True(t, errors.Is(err, xc.ErrInvalidPrivateKey))
	_, err = fio.NewLocalSigner([]byte{1})
	require.True(t, errors.Is(err, xc.ErrInvalidPrivateKey))
}

func TestNewFundsRequest(t *testing.T) {
	decoded, err := fio.DecodeTransaction(testutil.FromHex(newFundsPacked))
	require.NoError(t, err)
	action := decoded.Actions[0]
	require.Equal(t, "fio.reqobt", action.Account.String())
	require.Equal(t, "newfundsreq", action.Name.String())

	data, err := fio.DecodeActionData(action)
	require.NoError(t, err)
	request := data.Action.NewFundsRequest
	require.Equal(t, "mario@fiotestnet", request.PayerFioName)
	require.Equal(t, "alice@fiotestnet", request.PayeeFioName)
	require.Equal(t, "3000000000", request.Fee.String())
	require.Equal(t, tpid, data.TPID)

	// the requester reads their own request with the payer's public key
	content, err := fio.DecryptNewFundsContent(testutil.FromHex(privateKey), payerAddress, request.EncryptedContent)
	require.NoError(t, err)
	expected := *newFundsInput().Action.NewFundsRequest.Content
	expected.ChainCode = "BTC"
	require.Equal(t, expected, *content)

	_, err = fio.DecryptNewFundsContent(testutil.FromHex(privateKey), payee, request.EncryptedContent)
	require.True(t, errors.Is(err, xc.ErrInvalidValue))

	// content encrypted elsewhere is carried as is
	input := newFundsInput()
	input.PrivateKey = nil
	input.PublicKey = publicKey
	input.Action.NewFundsRequest.Content = nil
	input.Action.NewFundsRequest.EncryptedContent = request.EncryptedContent
	tx, err := fio.NewTx(input, nil)
	require.NoError(t, err)
	sig, err := fio.ParseSignature(newFundsSig)
	require.NoError(t, err)
	signed, err := tx.Compile(sig, nil)
	require.NoError(t, err)
	require.Equal(t, newFundsPacked, signed.Hex())
}

func TestNewFundsRequestRandomIV(t *testing.T) {
	input := newFundsInput()
	input.Action.NewFundsRequest.IV = nil
	first, _, _ := signLocally(t, input)
	second, _, _ := signLocally(t, input)
	require.NotEqual(t, first.Hex(), second.Hex())

	for _, signed := range []*xc.SignedTx{first, second} {
		decoded, err := fio.DecodeTransaction(signed.Encoded)
		require.NoError(t, err)
		data, err := fio.DecodeActionData(decoded.Actions[0])
		require.NoError(t, err)
		content, err := fio.DecryptNewFundsContent(testutil.FromHex(privateKey), payerAddress, data.Action.NewFundsRequest.EncryptedContent)
		require.NoError(t, err)
		require.Equal(t, "5", content.Amount)
	}
}

func TestNewFundsRequestErrors(t *testing.T) {
	b, err := fio.NewTxBuilder()
	require.NoError(t, err)

	input := newFundsInput()
	input.Action.NewFundsRequest.PayerFioName = ""
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = newFundsInput()
	input.Action.NewFundsRequest.PayeeFioName = ""
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = newFundsInput()
	input.Action.NewFundsRequest.PayerFioAddress = "mario@fiotestnet"
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidAddress))

	input = newFundsInput()
	input.Action.NewFundsRequest.Content = nil
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrMissingField))

	input = newFundsInput()
	input.Action.NewFundsRequest.EncryptedContent = "AAAA"
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidInput))

	input = newFundsInput()
	input.Action.NewFundsRequest.IV = []byte{1, 2, 3}
	_, err = b.Build(input)
	require.True(t, errors.Is(err, xc.ErrInvalidValue))

	// encrypting needs the private key
	input = newFundsInput()
	input.PrivateKey = nil
	input.PublicKey = publicKey
	_, err = fio.NewTx(input, nil)
	require.True(t, errors.Is(err, xc.ErrMissingField))
}

func TestSignConcurrently(t *testing.T) {
	expected, _, _ := signLocally(t, transferInput())

	const workers = 16
	results := make([]*xc.SignedTx, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := fio.NewTxBuilder()
			if err != nil {
				return
			}
			tx, err := b.Build(transferInput())
			if err != nil {
				return
			}
			preImage, err := tx.PreImage()
			if err != nil {
				return
			}
			signer, err := fio.NewLocalSigner(testutil.FromHex(privateKey))
			if err != nil {
				return
			}
			sig, err := signer.Sign(context.Background(), preImage.Hash)
			if err != nil {
				return
			}
			results[i], _ = tx.Compile(sig, nil)
		}(i)
	}
	wg.Wait()
	for i, signed := range results {
		require.NotNil(t, signed, "worker %d", i)
		require.Equal(t, expected.Encoded, signed.Encoded, "worker %d", i)
		require.Equal(t, expected.Signature, signed.Signature, "worker %d", i)
		require.Equal(t, expected.JSON, signed.JSON, "worker %d", i)
	}
}
