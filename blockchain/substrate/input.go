package substrate

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	xc "github.com/openweb3-io/txsigner/types"
)

type RewardDestination string

const (
	RewardStaked     RewardDestination = "staked"
	RewardStash      RewardDestination = "stash"
	RewardController RewardDestination = "controller"
)

// CallIndices overrides the network table. Indices must fit in a byte.
type CallIndices struct {
	ModuleIndex uint32 `json:"module_index"`
	MethodIndex uint32 `json:"method_index"`
}

type Transfer struct {
	ToAddress string    `json:"to_address"`
	Value     xc.BigInt `json:"value"`
	// padded to 32 bytes
	Memo        string       `json:"memo,omitempty"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

type BatchTransfer struct {
	Transfers   []*Transfer  `json:"transfers"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

// AssetTransfer has no network default and always needs call indices.
type AssetTransfer struct {
	ToAddress string    `json:"to_address"`
	Value     xc.BigInt `json:"value"`
	// zero is the native token and is omitted from the call
	AssetID uint32 `json:"asset_id"`
	// asset the fee is paid in, zero for the native token
	FeeAssetID  uint32       `json:"fee_asset_id"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

// BatchAssetTransfer pays the fee of the whole batch in FeeAssetID. The fee
// asset of the inner transfers is ignored.
type BatchAssetTransfer struct {
	FeeAssetID  uint32           `json:"fee_asset_id"`
	Transfers   []*AssetTransfer `json:"transfers"`
	CallIndices *CallIndices     `json:"call_indices,omitempty"`
}

type Bond struct {
	// optional
	Controller        string            `json:"controller,omitempty"`
	Value             xc.BigInt         `json:"value"`
	RewardDestination RewardDestination `json:"reward_destination"`
	CallIndices       *CallIndices      `json:"call_indices,omitempty"`
}

// BondAndNominate batches a bond and a nominate call. Call indices apply to
// the batch only.
type BondAndNominate struct {
	Controller        string            `json:"controller,omitempty"`
	Value             xc.BigInt         `json:"value"`
	RewardDestination RewardDestination `json:"reward_destination"`
	Nominators        []string          `json:"nominators"`
	CallIndices       *CallIndices      `json:"call_indices,omitempty"`
}

type BondExtra struct {
	Value       xc.BigInt    `json:"value"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

type Unbond struct {
	Value       xc.BigInt    `json:"value"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

type Rebond struct {
	Value       xc.BigInt    `json:"value"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

type WithdrawUnbonded struct {
	SlashingSpans uint32       `json:"slashing_spans"`
	CallIndices   *CallIndices `json:"call_indices,omitempty"`
}

type Nominate struct {
	Nominators  []string     `json:"nominators"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

type Chill struct {
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

// ChillAndUnbond batches a chill and an unbond call. Call indices apply to the
// batch only.
type ChillAndUnbond struct {
	Value       xc.BigInt    `json:"value"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

// JoinIdentityAsKey accepts a pending secondary key authorization. Polymesh only.
type JoinIdentityAsKey struct {
	AuthID      uint64       `json:"auth_id"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

type RestrictionKind string

const (
	RestrictionWhole  RestrictionKind = "whole"
	RestrictionThese  RestrictionKind = "these"
	RestrictionExcept RestrictionKind = "except"
)

type AssetPermissions struct {
	Kind RestrictionKind `json:"kind"`
	// 16 byte asset ids
	Assets []hexutil.Bytes `json:"assets,omitempty"`
}

type PalletPermissions struct {
	PalletName     string          `json:"pallet_name"`
	Kind           RestrictionKind `json:"kind"`
	ExtrinsicNames []string        `json:"extrinsic_names,omitempty"`
}

type ExtrinsicPermissions struct {
	Kind    RestrictionKind     `json:"kind"`
	Pallets []PalletPermissions `json:"pallets,omitempty"`
}

// PortfolioID is the default portfolio of Identity unless Number is set.
type PortfolioID struct {
	Identity hexutil.Bytes `json:"identity"`
	Number   *uint64       `json:"number,omitempty"`
}

type PortfolioPermissions struct {
	Kind       RestrictionKind `json:"kind"`
	Portfolios []PortfolioID   `json:"portfolios,omitempty"`
}

// SecondaryKeyPermissions grants everything for a nil field.
type SecondaryKeyPermissions struct {
	Asset     *AssetPermissions     `json:"asset,omitempty"`
	Extrinsic *ExtrinsicPermissions `json:"extrinsic,omitempty"`
	Portfolio *PortfolioPermissions `json:"portfolio,omitempty"`
}

// AddAuthorization invites Target to join the signer's identity as a
// secondary key. Polymesh only.
type AddAuthorization struct {
	Target       string                  `json:"target"`
	JoinIdentity SecondaryKeyPermissions `json:"join_identity"`
	// zero never expires
	Expiry      uint64       `json:"expiry,omitempty"`
	CallIndices *CallIndices `json:"call_indices,omitempty"`
}

// Call holds exactly one of its fields.
type Call struct {
	Transfer           *Transfer           `json:"transfer,omitempty"`
	BatchTransfer      *BatchTransfer      `json:"batch_transfer,omitempty"`
	AssetTransfer      *AssetTransfer      `json:"asset_transfer,omitempty"`
	BatchAssetTransfer *BatchAssetTransfer `json:"batch_asset_transfer,omitempty"`
	Bond               *Bond               `json:"bond,omitempty"`
	BondAndNominate    *BondAndNominate    `json:"bond_and_nominate,omitempty"`
	BondExtra          *BondExtra          `json:"bond_extra,omitempty"`
	Unbond             *Unbond             `json:"unbond,omitempty"`
	Rebond             *Rebond             `json:"rebond,omitempty"`
	WithdrawUnbonded   *WithdrawUnbonded   `json:"withdraw_unbonded,omitempty"`
	Nominate           *Nominate           `json:"nominate,omitempty"`
	Chill              *Chill              `json:"chill,omitempty"`
	ChillAndUnbond     *ChillAndUnbond     `json:"chill_and_unbond,omitempty"`
	JoinIdentityAsKey  *JoinIdentityAsKey  `json:"join_identity_as_key,omitempty"`
	AddAuthorization   *AddAuthorization   `json:"add_authorization,omitempty"`
}

// Era is the mortality window requested by the caller.
type Era struct {
	BlockNumber uint64 `json:"block_number"`
	Period      uint64 `json:"period"`
}

type SigningInput struct {
	BlockHash          hexutil.Bytes `json:"block_hash"`
	GenesisHash        hexutil.Bytes `json:"genesis_hash"`
	Nonce              uint64        `json:"nonce"`
	SpecVersion        uint32        `json:"spec_version"`
	TransactionVersion uint32        `json:"transaction_version"`
	Tip                xc.BigInt     `json:"tip"`
	// nil means immortal
	Era *Era `json:"era,omitempty"`
	// nil means the builder's default network
	Network      *uint16 `json:"network,omitempty"`
	MultiAddress bool    `json:"multi_address"`
	Call         Call    `json:"call"`

	PrivateKey hexutil.Bytes `json:"private_key,omitempty"`
}

var _ xc.SigningInput = &SigningInput{}
var _ xc.AmountSetter = &SigningInput{}

func (input *SigningInput) GetBlockchain() xc.Blockchain {
	return xc.BlockchainSubstrate
}

func (input *SigningInput) GetPrivateKey() []byte {
	return input.PrivateKey
}

// SetAmount sets the value of a single transfer or staking call. Batches of
// transfers carry one amount each and are not supported.
func (input *SigningInput) SetAmount(amount xc.BigInt) error {
	call := &input.Call
	var value *xc.BigInt
	switch {
	case call.Transfer != nil:
		value = &call.Transfer.Value
	case call.AssetTransfer != nil:
		value = &call.AssetTransfer.Value
	case call.Bond != nil:
		value = &call.Bond.Value
	case call.BondAndNominate != nil:
		value = &call.BondAndNominate.Value
	case call.BondExtra != nil:
		value = &call.BondExtra.Value
	case call.Unbond != nil:
		value = &call.Unbond.Value
	case call.Rebond != nil:
		value = &call.Rebond.Value
	case call.ChillAndUnbond != nil:
		value = &call.ChillAndUnbond.Value
	default:
		return xc.NewErr(xc.ErrNotSupported, "call has no single amount")
	}
	*value = amount
	return nil
}
