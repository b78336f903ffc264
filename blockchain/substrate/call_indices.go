package substrate

const (
	NetworkPolkadot uint16 = 0
	NetworkKusama   uint16 = 2
	NetworkPolymesh uint16 = 12

	// first runtime versions that take multi-address accounts
	polkadotMultiAddressSpec = 28
	kusamaMultiAddressSpec   = 2028
)

const (
	CallBalanceTransfer         = "Balances.transfer"
	CallStakingBond             = "Staking.bond"
	CallStakingBondExtra        = "Staking.bond_extra"
	CallStakingChill            = "Staking.chill"
	CallStakingNominate         = "Staking.nominate"
	CallStakingRebond           = "Staking.rebond"
	CallStakingUnbond           = "Staking.unbond"
	CallStakingWithdrawUnbonded = "Staking.withdraw_unbonded"
	CallUtilityBatch            = "Utility.batch_all"
	// not present on polkadot or kusama
	CallAssetsTransfer            = "Assets.transfer"
	CallBalanceTransferWithMemo   = "Balances.transfer_with_memo"
	CallIdentityJoinIdentityAsKey = "Identity.join_identity_as_key"
	CallIdentityAddAuthorization  = "Identity.add_authorization"
)

type callIndex [2]byte

var callIndicesByNetwork = map[uint16]map[string]callIndex{
	NetworkPolkadot: {
		CallBalanceTransfer:         {0x05, 0x00},
		CallStakingBond:             {0x07, 0x00},
		CallStakingBondExtra:        {0x07, 0x01},
		CallStakingChill:            {0x07, 0x06},
		CallStakingNominate:         {0x07, 0x05},
		CallStakingRebond:           {0x07, 0x13},
		CallStakingUnbond:           {0x07, 0x02},
		CallStakingWithdrawUnbonded: {0x07, 0x03},
		CallUtilityBatch:            {0x1a, 0x02},
	},
	NetworkKusama: {
		CallBalanceTransfer:         {0x04, 0x00},
		CallStakingBond:             {0x06, 0x00},
		CallStakingBondExtra:        {0x06, 0x01},
		CallStakingChill:            {0x06, 0x06},
		CallStakingNominate:         {0x06, 0x05},
		CallStakingRebond:           {0x06, 0x13},
		CallStakingUnbond:           {0x06, 0x02},
		CallStakingWithdrawUnbonded: {0x06, 0x03},
		CallUtilityBatch:            {0x18, 0x02},
	},
	NetworkPolymesh: {
		CallBalanceTransfer:           {0x05, 0x00},
		CallBalanceTransferWithMemo:   {0x05, 0x01},
		CallIdentityJoinIdentityAsKey: {0x07, 0x04},
		CallIdentityAddAuthorization:  {0x07, 0x0a},
		CallStakingBond:               {0x11, 0x00},
		CallStakingBondExtra:          {0x11, 0x01},
		CallStakingChill:              {0x11, 0x06},
		CallStakingNominate:           {0x11, 0x05},
		CallStakingRebond:             {0x11, 0x18},
		CallStakingUnbond:             {0x11, 0x02},
		CallStakingWithdrawUnbonded:   {0x11, 0x03},
		CallUtilityBatch:              {0x29, 0x02},
	},
}

// LookupCallIndex returns the module and method index of a call on a known network.
func LookupCallIndex(network uint16, call string) ([2]byte, bool) {
	ci, ok := callIndicesByNetwork[network][call]
	return ci, ok
}
