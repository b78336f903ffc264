package substrate

import (
	"bytes"

	"github.com/openweb3-io/txsigner/blockchain/substrate/address"
	"github.com/openweb3-io/txsigner/builder/validation"
	"github.com/openweb3-io/txsigner/codec/scale"
	xc "github.com/openweb3-io/txsigner/types"
)

const memoLength = 32

var rewardDestinations = map[RewardDestination]byte{
	"":               0x00,
	RewardStaked:     0x00,
	RewardStash:      0x01,
	RewardController: 0x02,
}

// callEncoder encodes calls for one network and runtime version.
type callEncoder struct {
	network uint16
	// accounts without the multi-address tag
	raw bool
}

func newCallEncoder(network uint16, specVersion uint32, multiAddress bool) *callEncoder {
	return &callEncoder{
		network: network,
		raw:     rawAccounts(network, specVersion, multiAddress),
	}
}

func rawAccounts(network uint16, specVersion uint32, multiAddress bool) bool {
	if multiAddress {
		return false
	}
	switch {
	case network == NetworkPolymesh:
		return false
	case network == NetworkPolkadot && specVersion >= polkadotMultiAddressSpec:
		return false
	case network == NetworkKusama && specVersion > kusamaMultiAddressSpec:
		return false
	}
	return true
}

func (e *callEncoder) callIndex(call string, custom *CallIndices) ([]byte, error) {
	if custom != nil {
		module, err := validation.ByteIndex("module index", custom.ModuleIndex)
		if err != nil {
			return nil, err
		}
		method, err := validation.ByteIndex("method index", custom.MethodIndex)
		if err != nil {
			return nil, err
		}
		return []byte{module, method}, nil
	}
	ci, ok := LookupCallIndex(e.network, call)
	if !ok {
		return nil, xc.NewErr(xc.ErrMissingCallIndices, "no call indices for %s on network %d", call, e.network)
	}
	return ci[:], nil
}

func (e *callEncoder) account(ss58 string) ([]byte, error) {
	key, _, err := address.Decode(ss58)
	if err != nil {
		return nil, err
	}
	return scale.AccountID(key, e.raw)
}

func compactValue(field string, value xc.BigInt) ([]byte, error) {
	v, err := validation.Uint128(field, value)
	if err != nil {
		return nil, err
	}
	return scale.CompactBig(v)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func (e *callEncoder) encode(call *Call) ([]byte, error) {
	set := 0
	for _, ok := range []bool{
		call.Transfer != nil, call.BatchTransfer != nil, call.AssetTransfer != nil, call.BatchAssetTransfer != nil,
		call.Bond != nil, call.BondAndNominate != nil, call.BondExtra != nil, call.Unbond != nil, call.Rebond != nil,
		call.WithdrawUnbonded != nil, call.Nominate != nil, call.Chill != nil, call.ChillAndUnbond != nil,
		call.JoinIdentityAsKey != nil, call.AddAuthorization != nil,
	} {
		if ok {
			set++
		}
	}
	if set == 0 {
		return nil, xc.NewErr(xc.ErrMissingField, "no call given")
	}
	if set > 1 {
		return nil, xc.NewErr(xc.ErrInvalidInput, "%d calls given, expected one", set)
	}

	switch {
	case call.Transfer != nil:
		return e.transfer(call.Transfer)
	case call.BatchTransfer != nil:
		return e.batchTransfer(call.BatchTransfer)
	case call.AssetTransfer != nil:
		return e.assetTransfer(call.AssetTransfer)
	case call.BatchAssetTransfer != nil:
		return e.batchAssetTransfer(call.BatchAssetTransfer)
	case call.Bond != nil:
		return e.bond(call.Bond)
	case call.BondAndNominate != nil:
		return e.bondAndNominate(call.BondAndNominate)
	case call.BondExtra != nil:
		return e.valueCall(CallStakingBondExtra, call.BondExtra.Value, call.BondExtra.CallIndices)
	case call.Unbond != nil:
		return e.valueCall(CallStakingUnbond, call.Unbond.Value, call.Unbond.CallIndices)
	case call.Rebond != nil:
		return e.valueCall(CallStakingRebond, call.Rebond.Value, call.Rebond.CallIndices)
	case call.WithdrawUnbonded != nil:
		return e.withdrawUnbonded(call.WithdrawUnbonded)
	case call.Nominate != nil:
		return e.nominate(call.Nominate)
	case call.Chill != nil:
		return e.callIndex(CallStakingChill, call.Chill.CallIndices)
	case call.JoinIdentityAsKey != nil:
		return e.joinIdentityAsKey(call.JoinIdentityAsKey)
	case call.AddAuthorization != nil:
		return e.addAuthorization(call.AddAuthorization)
	default:
		return e.chillAndUnbond(call.ChillAndUnbond)
	}
}

func (e *callEncoder) transfer(t *Transfer) ([]byte, error) {
	name := CallBalanceTransfer
	if e.network == NetworkPolymesh && t.Memo != "" {
		name = CallBalanceTransferWithMemo
	}
	ci, err := e.callIndex(name, t.CallIndices)
	if err != nil {
		return nil, err
	}
	dest, err := e.account(t.ToAddress)
	if err != nil {
		return nil, err
	}
	value, err := compactValue("value", t.Value)
	if err != nil {
		return nil, err
	}
	data := concat(ci, dest, value)
	if t.Memo != "" {
		if len(t.Memo) > memoLength {
			return nil, xc.NewErr(xc.ErrInvalidValue, "memo is longer than %d bytes", memoLength)
		}
		memo := make([]byte, memoLength)
		copy(memo, t.Memo)
		data = append(data, scale.Option(memo)...)
	}
	return data, nil
}

func (e *callEncoder) assetTransfer(t *AssetTransfer) ([]byte, error) {
	if e.network == NetworkPolymesh {
		return nil, xc.NewErr(xc.ErrNotSupported, "%s is not available on polymesh", CallAssetsTransfer)
	}
	if t.CallIndices == nil {
		return nil, xc.NewErr(xc.ErrMissingCallIndices, "%s requires call indices", CallAssetsTransfer)
	}
	ci, err := e.callIndex(CallAssetsTransfer, t.CallIndices)
	if err != nil {
		return nil, err
	}
	data := ci
	if t.AssetID != 0 {
		data = append(data, scale.Compact(uint64(t.AssetID))...)
	}
	dest, err := e.account(t.ToAddress)
	if err != nil {
		return nil, err
	}
	value, err := compactValue("value", t.Value)
	if err != nil {
		return nil, err
	}
	return concat(data, dest, value), nil
}

func (e *callEncoder) batch(calls [][]byte, custom *CallIndices) ([]byte, error) {
	ci, err := e.callIndex(CallUtilityBatch, custom)
	if err != nil {
		return nil, err
	}
	return concat(ci, scale.Vector(calls...)), nil
}

func (e *callEncoder) batchTransfer(bt *BatchTransfer) ([]byte, error) {
	calls := make([][]byte, len(bt.Transfers))
	for i, t := range bt.Transfers {
		call, err := e.transfer(t)
		if err != nil {
			return nil, err
		}
		calls[i] = call
	}
	return e.batch(calls, bt.CallIndices)
}

func (e *callEncoder) batchAssetTransfer(bat *BatchAssetTransfer) ([]byte, error) {
	calls := make([][]byte, len(bat.Transfers))
	for i, t := range bat.Transfers {
		call, err := e.assetTransfer(t)
		if err != nil {
			return nil, err
		}
		calls[i] = call
	}
	return e.batch(calls, bat.CallIndices)
}

func (e *callEncoder) bond(b *Bond) ([]byte, error) {
	ci, err := e.callIndex(CallStakingBond, b.CallIndices)
	if err != nil {
		return nil, err
	}
	data := ci
	if b.Controller == "" && e.network == NetworkPolymesh {
		return nil, xc.NewErr(xc.ErrMissingField, "polymesh bond requires a controller")
	}
	if b.Controller != "" {
		controller, err := e.account(b.Controller)
		if err != nil {
			return nil, err
		}
		data = append(data, controller...)
	}
	value, err := compactValue("value", b.Value)
	if err != nil {
		return nil, err
	}
	reward, ok := rewardDestinations[b.RewardDestination]
	if !ok {
		return nil, xc.NewErr(xc.ErrInvalidValue, "unknown reward destination %q", b.RewardDestination)
	}
	return concat(data, value, scale.U8(reward)), nil
}

func (e *callEncoder) bondAndNominate(ban *BondAndNominate) ([]byte, error) {
	bond, err := e.bond(&Bond{
		Controller:        ban.Controller,
		Value:             ban.Value,
		RewardDestination: ban.RewardDestination,
	})
	if err != nil {
		return nil, err
	}
	nominate, err := e.nominate(&Nominate{Nominators: ban.Nominators})
	if err != nil {
		return nil, err
	}
	return e.batch([][]byte{bond, nominate}, ban.CallIndices)
}

func (e *callEncoder) valueCall(call string, value xc.BigInt, custom *CallIndices) ([]byte, error) {
	ci, err := e.callIndex(call, custom)
	if err != nil {
		return nil, err
	}
	v, err := compactValue("value", value)
	if err != nil {
		return nil, err
	}
	return concat(ci, v), nil
}

func (e *callEncoder) withdrawUnbonded(wu *WithdrawUnbonded) ([]byte, error) {
	ci, err := e.callIndex(CallStakingWithdrawUnbonded, wu.CallIndices)
	if err != nil {
		return nil, err
	}
	return concat(ci, scale.U32(wu.SlashingSpans)), nil
}

func (e *callEncoder) nominate(n *Nominate) ([]byte, error) {
	ci, err := e.callIndex(CallStakingNominate, n.CallIndices)
	if err != nil {
		return nil, err
	}
	targets := make([][]byte, len(n.Nominators))
	for i, nominator := range n.Nominators {
		target, err := e.account(nominator)
		if err != nil {
			return nil, err
		}
		targets[i] = target
	}
	return concat(ci, scale.Vector(targets...)), nil
}

func (e *callEncoder) chillAndUnbond(cau *ChillAndUnbond) ([]byte, error) {
	chill, err := e.callIndex(CallStakingChill, nil)
	if err != nil {
		return nil, err
	}
	unbond, err := e.valueCall(CallStakingUnbond, cau.Value, nil)
	if err != nil {
		return nil, err
	}
	return e.batch([][]byte{chill, unbond}, cau.CallIndices)
}
