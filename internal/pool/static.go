package pool

import (
	"context"
	"math/big"
	"strings"

	"blitzswap/internal/config"
	"blitzswap/internal/model"
)

// StaticSource serves pool snapshots from a fixed in-memory table. It backs
// networks with no on-chain deployment and deterministic tests.
type StaticSource struct {
	pools []model.PoolInfo
}

// NewStaticSource builds a source over the given table.
func NewStaticSource(pools []model.PoolInfo) *StaticSource {
	return &StaticSource{pools: pools}
}

// DefaultPools is the development pool table: a fixed-rate staking pool plus
// constant-product pools for the major pairs.
func DefaultPools() []model.PoolInfo {
	usdc := config.SupportedCoins[1].Type
	usdt := config.SupportedCoins[2].Type

	return []model.PoolInfo{
		{
			PoolID:   config.StakingPoolID,
			AssetA:   config.HubAsset,
			AssetB:   config.StakedAsset,
			ReserveA: big.NewInt(10_000_000_000_000), // 10,000 IOTA
			ReserveB: big.NewInt(9_900_000_000_000),  // 9,900 stIOTA, 1.01 staking rate
			LPSupply: big.NewInt(10_000_000_000_000),
			FeeBps:   10,
		},
		{
			PoolID:   "0x" + strings.Repeat("b", 64),
			AssetA:   config.HubAsset,
			AssetB:   usdc,
			ReserveA: big.NewInt(5_000_000_000_000), // 5,000 IOTA
			ReserveB: big.NewInt(15_000_000_000),    // 15,000 USDC
			LPSupply: big.NewInt(5_000_000_000_000),
			FeeBps:   30,
		},
		{
			PoolID:   "0x" + strings.Repeat("c", 64),
			AssetA:   config.HubAsset,
			AssetB:   usdt,
			ReserveA: big.NewInt(3_000_000_000_000), // 3,000 IOTA
			ReserveB: big.NewInt(9_000_000_000),     // 9,000 USDT
			LPSupply: big.NewInt(3_000_000_000_000),
			FeeBps:   30,
		},
		{
			PoolID:   "0x" + strings.Repeat("d", 64),
			AssetA:   usdc,
			AssetB:   usdt,
			ReserveA: big.NewInt(50_000_000_000),
			ReserveB: big.NewInt(50_000_000_000),
			LPSupply: big.NewInt(50_000_000_000),
			FeeBps:   10, // stable pair tier
		},
	}
}

// QueryPair scans the table in either orientation and returns the pool
// oriented so AssetA equals a.
func (s *StaticSource) QueryPair(_ context.Context, a, b model.AssetID) (model.PoolInfo, bool, error) {
	for _, p := range s.pools {
		if p.Holds(a, b) {
			oriented, _ := p.OrientedFor(a)
			return oriented, true, nil
		}
	}
	return model.PoolInfo{}, false, nil
}

// QueryAll enumerates all pairs of the asset universe against the table.
func (s *StaticSource) QueryAll(ctx context.Context, assets []model.AssetID) ([]model.PoolInfo, error) {
	return queryAllPairs(ctx, s, assets)
}
