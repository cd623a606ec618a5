package pool

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"blitzswap/internal/config"
	"blitzswap/internal/ledger"
	"blitzswap/internal/model"
)

// defaultFeeBps is assumed when a pool object omits its fee field.
const defaultFeeBps = 30

// LedgerSource resolves pairs against the DEX package deployed on chain by
// querying typed Pool objects through the node's JSON-RPC API.
type LedgerSource struct {
	client    *ledger.Client
	packageID string
	timeout   time.Duration
	logger    *zap.Logger
}

// NewLedgerSource builds a source for the package deployed at packageID.
// timeout bounds each node query; after it elapses the query is reported as
// a source failure, never as "no pool".
func NewLedgerSource(client *ledger.Client, packageID string, timeout time.Duration, logger *zap.Logger) *LedgerSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &LedgerSource{
		client:    client,
		packageID: packageID,
		timeout:   timeout,
		logger:    logger,
	}
}

// QueryPair looks for a Pool<a, b> object, then a Pool<b, a> object with the
// result reoriented. The staking pair never has a DEX pool object; it is
// served as a synthetic fixed-rate snapshot against the staking pool.
func (s *LedgerSource) QueryPair(ctx context.Context, a, b model.AssetID) (model.PoolInfo, bool, error) {
	if isStakingPair(a, b) {
		p, _ := stakingPoolSnapshot().OrientedFor(a)
		return p, true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	p, ok, err := s.queryOrder(ctx, a, b)
	if err != nil || ok {
		return p, ok, err
	}

	p, ok, err = s.queryOrder(ctx, b, a)
	if err != nil || !ok {
		return model.PoolInfo{}, false, err
	}
	return p.Reversed(), true, nil
}

// QueryAll enumerates all pairs of the asset universe against the ledger.
func (s *LedgerSource) QueryAll(ctx context.Context, assets []model.AssetID) ([]model.PoolInfo, error) {
	return queryAllPairs(ctx, s, assets)
}

// queryOrder fetches the pool object whose type parameters are exactly
// (first, second), in storage order.
func (s *LedgerSource) queryOrder(ctx context.Context, first, second model.AssetID) (model.PoolInfo, bool, error) {
	structType := fmt.Sprintf("%s::dex::Pool<%s, %s>", s.packageID, first, second)

	objects, err := s.client.GetOwnedObjects(ctx, s.packageID, structType, 1)
	if err != nil {
		return model.PoolInfo{}, false, fmt.Errorf("query pool objects: %w", err)
	}
	if len(objects) == 0 {
		return model.PoolInfo{}, false, nil
	}

	p, err := parsePool(objects[0], first, second)
	if err != nil {
		// A present but unreadable object is a source fault, not absence.
		return model.PoolInfo{}, false, fmt.Errorf("parse pool object: %w", err)
	}

	s.logger.Debug("pool resolved from ledger",
		zap.String("pool_id", p.PoolID),
		zap.String("asset_a", string(p.AssetA)),
		zap.String("asset_b", string(p.AssetB)),
	)
	return p, true, nil
}

// parsePool converts a raw Move object into a typed snapshot. All field
// parsing happens here at the source boundary; nothing downstream touches
// loosely-typed data.
func parsePool(obj ledger.OwnedObject, assetA, assetB model.AssetID) (model.PoolInfo, error) {
	if obj.Data == nil || obj.Data.Content == nil {
		return model.PoolInfo{}, fmt.Errorf("object has no content")
	}
	if obj.Data.Content.DataType != "moveObject" {
		return model.PoolInfo{}, fmt.Errorf("unexpected data type %q", obj.Data.Content.DataType)
	}

	fields := obj.Data.Content.Fields
	reserveA, err := fields.ReserveA.BigInt()
	if err != nil {
		return model.PoolInfo{}, fmt.Errorf("reserve_a: %w", err)
	}
	reserveB, err := fields.ReserveB.BigInt()
	if err != nil {
		return model.PoolInfo{}, fmt.Errorf("reserve_b: %w", err)
	}
	lpSupply, err := fields.LPSupply.BigInt()
	if err != nil {
		return model.PoolInfo{}, fmt.Errorf("lp_supply: %w", err)
	}

	feeBps := defaultFeeBps
	if fields.FeePercentage != "" {
		feeBps, err = fields.FeePercentage.Int()
		if err != nil {
			return model.PoolInfo{}, fmt.Errorf("fee_percentage: %w", err)
		}
	}

	return model.PoolInfo{
		PoolID:   obj.Data.ObjectID,
		AssetA:   assetA,
		AssetB:   assetB,
		ReserveA: reserveA,
		ReserveB: reserveB,
		LPSupply: lpSupply,
		FeeBps:   feeBps,
	}, nil
}

func isStakingPair(a, b model.AssetID) bool {
	return (a == config.HubAsset && b == config.StakedAsset) ||
		(a == config.StakedAsset && b == config.HubAsset)
}

// stakingPoolSnapshot models the staking pool as a 1:1 pool. The reserve
// ratio stands in for the staking exchange rate.
func stakingPoolSnapshot() model.PoolInfo {
	return model.PoolInfo{
		PoolID:   config.StakingPoolID,
		AssetA:   config.HubAsset,
		AssetB:   config.StakedAsset,
		ReserveA: big.NewInt(1_000_000_000_000),
		ReserveB: big.NewInt(1_000_000_000_000),
		LPSupply: big.NewInt(1_000_000_000_000),
		FeeBps:   10,
	}
}
