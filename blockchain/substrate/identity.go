package substrate

import (
	"bytes"
	"sort"

	"github.com/openweb3-io/txsigner/blockchain/substrate/address"
	"github.com/openweb3-io/txsigner/codec/scale"
	xc "github.com/openweb3-io/txsigner/types"
)

const (
	signatoryAccount  = 0x01
	authJoinIdentity  = 0x05
	assetIDLength     = 16
	identityIDLength  = 32
	portfolioDefault  = 0x00
	portfolioUserKind = 0x01
)

var restrictionKinds = map[RestrictionKind]byte{
	"":                0x00,
	RestrictionWhole:  0x00,
	RestrictionThese:  0x01,
	RestrictionExcept: 0x02,
}

func (e *callEncoder) identityCall(call string, custom *CallIndices) ([]byte, error) {
	if e.network != NetworkPolymesh && custom == nil {
		return nil, xc.NewErr(xc.ErrNotSupported, "%s is only available on polymesh", call)
	}
	return e.callIndex(call, custom)
}

func (e *callEncoder) joinIdentityAsKey(j *JoinIdentityAsKey) ([]byte, error) {
	ci, err := e.identityCall(CallIdentityJoinIdentityAsKey, j.CallIndices)
	if err != nil {
		return nil, err
	}
	return concat(ci, scale.U64(j.AuthID)), nil
}

// addAuthorization encodes
// ci || Signatory::Account(target) || AuthorizationData::JoinIdentity(permissions) || Option<u64> expiry
func (e *callEncoder) addAuthorization(a *AddAuthorization) ([]byte, error) {
	ci, err := e.identityCall(CallIdentityAddAuthorization, a.CallIndices)
	if err != nil {
		return nil, err
	}
	target, _, err := address.Decode(a.Target)
	if err != nil {
		return nil, err
	}
	permissions, err := encodePermissions(&a.JoinIdentity)
	if err != nil {
		return nil, err
	}
	var expiry []byte
	if a.Expiry > 0 {
		expiry = scale.U64(a.Expiry)
	}
	return concat(
		ci,
		[]byte{signatoryAccount},
		target,
		[]byte{authJoinIdentity},
		permissions,
		scale.Option(expiry),
	), nil
}

func encodePermissions(p *SecondaryKeyPermissions) ([]byte, error) {
	var out []byte

	if p.Asset == nil {
		out = append(out, restrictionKinds[RestrictionWhole])
	} else {
		asset, err := encodeAssetPermissions(p.Asset)
		if err != nil {
			return nil, err
		}
		out = append(out, asset...)
	}

	if p.Extrinsic == nil {
		out = append(out, restrictionKinds[RestrictionWhole])
	} else {
		extrinsic, err := encodeExtrinsicPermissions(p.Extrinsic)
		if err != nil {
			return nil, err
		}
		out = append(out, extrinsic...)
	}

	if p.Portfolio == nil {
		out = append(out, restrictionKinds[RestrictionWhole])
	} else {
		portfolio, err := encodePortfolioPermissions(p.Portfolio)
		if err != nil {
			return nil, err
		}
		out = append(out, portfolio...)
	}
	return out, nil
}

// restriction returns the kind byte and whether a set follows it.
func restriction(kind RestrictionKind) (byte, bool, error) {
	b, ok := restrictionKinds[kind]
	if !ok {
		return 0, false, xc.NewErr(xc.ErrInvalidValue, "unknown restriction kind %q", kind)
	}
	return b, b != restrictionKinds[RestrictionWhole], nil
}

// sortedSet orders encoded items the way a BTreeSet iterates and drops duplicates.
func sortedSet(items [][]byte) [][]byte {
	sort.Slice(items, func(i, j int) bool {
		return bytes.Compare(items[i], items[j]) < 0
	})
	out := items[:0]
	for i, item := range items {
		if i > 0 && bytes.Equal(item, items[i-1]) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func encodeAssetPermissions(p *AssetPermissions) ([]byte, error) {
	kind, hasSet, err := restriction(p.Kind)
	if err != nil {
		return nil, err
	}
	if !hasSet {
		return []byte{kind}, nil
	}
	items := make([][]byte, len(p.Assets))
	for i, asset := range p.Assets {
		if len(asset) != assetIDLength {
			return nil, xc.NewErr(xc.ErrInvalidValue, "asset id must be %d bytes, got %d", assetIDLength, len(asset))
		}
		items[i] = bytes.Clone(asset)
	}
	return append([]byte{kind}, scale.Vector(sortedSet(items)...)...), nil
}

func encodeExtrinsicPermissions(p *ExtrinsicPermissions) ([]byte, error) {
	kind, hasSet, err := restriction(p.Kind)
	if err != nil {
		return nil, err
	}
	if !hasSet {
		return []byte{kind}, nil
	}
	pallets := make([]PalletPermissions, len(p.Pallets))
	copy(pallets, p.Pallets)
	sort.SliceStable(pallets, func(i, j int) bool {
		return pallets[i].PalletName < pallets[j].PalletName
	})

	entries := make([][]byte, 0, len(pallets))
	for i, pallet := range pallets {
		if i > 0 && pallet.PalletName == pallets[i-1].PalletName {
			return nil, xc.NewErr(xc.ErrInvalidValue, "pallet %q listed twice", pallet.PalletName)
		}
		palletKind, palletHasSet, err := restriction(pallet.Kind)
		if err != nil {
			return nil, err
		}
		entry := concat(scale.LengthPrefixed([]byte(pallet.PalletName)), []byte{palletKind})
		if palletHasSet {
			names := make([][]byte, len(pallet.ExtrinsicNames))
			for k, name := range pallet.ExtrinsicNames {
				names[k] = []byte(name)
			}
			names = sortedSet(names)
			for k, name := range names {
				names[k] = scale.LengthPrefixed(name)
			}
			entry = append(entry, scale.Vector(names...)...)
		}
		entries = append(entries, entry)
	}
	return append([]byte{kind}, scale.Vector(entries...)...), nil
}

func encodePortfolioPermissions(p *PortfolioPermissions) ([]byte, error) {
	kind, hasSet, err := restriction(p.Kind)
	if err != nil {
		return nil, err
	}
	if !hasSet {
		return []byte{kind}, nil
	}
	portfolios := make([]PortfolioID, len(p.Portfolios))
	copy(portfolios, p.Portfolios)
	for _, portfolio := range portfolios {
		if len(portfolio.Identity) != identityIDLength {
			return nil, xc.NewErr(xc.ErrInvalidValue, "identity id must be %d bytes, got %d", identityIDLength, len(portfolio.Identity))
		}
	}
	sort.SliceStable(portfolios, func(i, j int) bool {
		return comparePortfolios(portfolios[i], portfolios[j]) < 0
	})

	items := make([][]byte, 0, len(portfolios))
	for i, portfolio := range portfolios {
		if i > 0 && comparePortfolios(portfolio, portfolios[i-1]) == 0 {
			continue
		}
		item := bytes.Clone(portfolio.Identity)
		if portfolio.Number == nil {
			item = append(item, portfolioDefault)
		} else {
			item = append(item, portfolioUserKind)
			item = append(item, scale.U64(*portfolio.Number)...)
		}
		items = append(items, item)
	}
	return append([]byte{kind}, scale.Vector(items...)...), nil
}

// comparePortfolios orders by identity, then the default portfolio before
// numbered ones.
func comparePortfolios(a, b PortfolioID) int {
	if c := bytes.Compare(a.Identity, b.Identity); c != 0 {
		return c
	}
	switch {
	case a.Number == nil && b.Number == nil:
		return 0
	case a.Number == nil:
		return -1
	case b.Number == nil:
		return 1
	case *a.Number < *b.Number:
		return -1
	case *a.Number > *b.Number:
		return 1
	}
	return 0
}
