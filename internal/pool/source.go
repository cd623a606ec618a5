package pool

import (
	"context"

	"blitzswap/internal/model"
)

// Source supplies raw pool snapshots for asset pairs, either from a ledger
// query or from a static table.
//
// QueryPair tries storage order (a, b) first, then (b, a) with the result
// reoriented so AssetA equals a. "No pool exists" is a normal outcome and
// reports (zero, false, nil); a non-nil error means the source itself
// failed (network, timeout, malformed response) and must not be conflated
// with absence.
type Source interface {
	QueryPair(ctx context.Context, a, b model.AssetID) (model.PoolInfo, bool, error)
	QueryAll(ctx context.Context, assets []model.AssetID) ([]model.PoolInfo, error)
}

// queryAllPairs enumerates all unordered pairs of the asset universe and
// queries each. O(n²) pair queries is fine at the supported-coin scale; this
// backs discovery listings, not the hot swap path.
func queryAllPairs(ctx context.Context, s Source, assets []model.AssetID) ([]model.PoolInfo, error) {
	var pools []model.PoolInfo
	for i := 0; i < len(assets); i++ {
		for j := i + 1; j < len(assets); j++ {
			p, ok, err := s.QueryPair(ctx, assets[i], assets[j])
			if err != nil {
				return nil, err
			}
			if ok {
				pools = append(pools, p)
			}
		}
	}
	return pools, nil
}
