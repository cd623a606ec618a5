package config

import "blitzswap/internal/model"

// Coin describes a supported asset: its full coin type, display metadata,
// and smallest-unit precision.
type Coin struct {
	Type     model.AssetID
	Symbol   string
	Name     string
	Decimals int
}

// Network describes a reachable IOTA network and the DEX package deployed on
// it. A zero PackageID means no on-chain deployment exists and pool data
// comes from the static table.
type Network struct {
	Name      string
	RPCURL    string
	PackageID string
}

const (
	// HubAsset is the platform's native asset, used as the intermediary for
	// two-hop routing when no direct pool exists.
	HubAsset model.AssetID = "0x2::iota::IOTA"

	// StakedAsset is the staking receipt paired with the hub asset in the
	// fixed-rate staking pool.
	StakedAsset model.AssetID = "0xd84fe8b6622ff910dc5e097c06de5ac31055c169453435d162ff999c8fb65202::simple_staking::StakedIOTA"

	// StakingPoolID is the well-known object id of the IOTA<->stIOTA staking
	// pool. Pools carrying this id are quoted at a fixed exchange rate.
	StakingPoolID = "0xbb039632ab28afa6b123a537acd03c1988e665170c75e06ee81bf996d1426021"
)

// SupportedCoins is the asset universe the router discovers pools for.
var SupportedCoins = []Coin{
	{Type: HubAsset, Symbol: "IOTA", Name: "IOTA", Decimals: 9},
	{Type: "0x5d4b302506645c37ff133b98c4b50a5ae14841659738d6d733d59d0d217a93bf::coin::COIN", Symbol: "USDC", Name: "USD Coin", Decimals: 6},
	{Type: "0xc060006111016b8a020ad5b33834984a437aaa7d3c74c18e09a95d48aceab08c::coin::COIN", Symbol: "USDT", Name: "Tether USD", Decimals: 6},
	{Type: "0xaf8cd5edc19c4512f4259f0bee101a40d41ebed738ade5874359610ef8eeced5::coin::COIN", Symbol: "WETH", Name: "Wrapped Ether", Decimals: 8},
	{Type: "0x027792d9fed7f9844eb4839566001bb6f6cb4804f66aa2da6fe1ee242d896881::coin::COIN", Symbol: "WBTC", Name: "Wrapped Bitcoin", Decimals: 8},
	{Type: StakedAsset, Symbol: "stIOTA", Name: "Staked IOTA", Decimals: 9},
}

// Networks maps network short names to their endpoints and deployments.
var Networks = map[string]Network{
	"mainnet": {
		Name:      "IOTA Mainnet",
		RPCURL:    "https://api.mainnet.iota.cafe",
		PackageID: "0x0",
	},
	"testnet": {
		Name:      "IOTA Testnet",
		RPCURL:    "https://api.testnet.iota.cafe",
		PackageID: "0xd84fe8b6622ff910dc5e097c06de5ac31055c169453435d162ff999c8fb65202",
	},
	"devnet": {
		Name:      "IOTA Devnet",
		RPCURL:    "https://api.devnet.iota.cafe",
		PackageID: "0x0",
	},
}

// AssetUniverse returns the coin types of all supported coins, in table order.
func AssetUniverse() []model.AssetID {
	assets := make([]model.AssetID, 0, len(SupportedCoins))
	for _, coin := range SupportedCoins {
		assets = append(assets, coin.Type)
	}
	return assets
}

// CoinBySymbol resolves a display symbol like "USDC" to its coin entry.
func CoinBySymbol(symbol string) (Coin, bool) {
	for _, coin := range SupportedCoins {
		if coin.Symbol == symbol {
			return coin, true
		}
	}
	return Coin{}, false
}

// ResolveAsset accepts either a display symbol or a full coin type and
// returns the asset id. Full coin types pass through untouched so assets
// outside the supported table can still be queried.
func ResolveAsset(s string) model.AssetID {
	if coin, ok := CoinBySymbol(s); ok {
		return coin.Type
	}
	return model.AssetID(s)
}
