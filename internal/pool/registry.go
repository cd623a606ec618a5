package pool

import (
	"context"
	"time"

	"go.uber.org/zap"

	"blitzswap/internal/model"
)

// RegistryConfig holds the registry's tunables and the assets it discovers
// pools for.
type RegistryConfig struct {
	CacheTTL      time.Duration
	CacheCapacity int
	// FixedRatePoolIDs lists pool ids quoted at a fixed exchange rate
	// instead of the constant-product curve.
	FixedRatePoolIDs []string
	// Assets is the universe enumerated by FindAllPools.
	Assets []model.AssetID
}

// Registry resolves asset pairs to oriented pool snapshots. It owns its
// cache and consults the source on a miss; the cache is injected state, not
// a package-level map, so registries are isolated from each other.
type Registry struct {
	cache     *Cache
	source    Source
	logger    *zap.Logger
	fixedRate map[string]bool
	assets    []model.AssetID
}

// NewRegistry builds a registry over the given source.
func NewRegistry(cfg RegistryConfig, source Source, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = 100
	}

	fixedRate := make(map[string]bool, len(cfg.FixedRatePoolIDs))
	for _, id := range cfg.FixedRatePoolIDs {
		fixedRate[id] = true
	}

	return &Registry{
		cache:     NewCache(cfg.CacheTTL, cfg.CacheCapacity),
		source:    source,
		logger:    logger,
		fixedRate: fixedRate,
		assets:    cfg.Assets,
	}
}

// FindPoolsForPair resolves (a, b) to a pool snapshot oriented so AssetA
// equals a. It reports (zero, false, nil) when no pool exists and a non-nil
// error only when the source failed. Pools violating the reserve invariant
// are logged and treated as absent: an empty pool cannot quote, so callers
// see it the same as no pool at all.
func (r *Registry) FindPoolsForPair(ctx context.Context, a, b model.AssetID) (model.PoolInfo, bool, error) {
	if cached, ok := r.cache.Get(a, b); ok {
		return cached, true, nil
	}

	p, ok, err := r.source.QueryPair(ctx, a, b)
	if err != nil {
		return model.PoolInfo{}, false, err
	}
	if !ok {
		return model.PoolInfo{}, false, nil
	}

	p.FixedRate = p.FixedRate || r.fixedRate[p.PoolID]

	if err := p.Validate(); err != nil {
		r.logger.Warn("discarding invalid pool",
			zap.String("pool_id", p.PoolID),
			zap.Error(err),
		)
		return model.PoolInfo{}, false, nil
	}

	r.cache.Put(p)

	oriented, ok := p.OrientedFor(a)
	if !ok {
		// The source answered with a pool for a different pair.
		r.logger.Warn("discarding misoriented pool",
			zap.String("pool_id", p.PoolID),
			zap.String("requested", string(a)),
		)
		return model.PoolInfo{}, false, nil
	}
	return oriented, true, nil
}

// FindAllPools enumerates the configured asset universe pairwise. Results
// pass through the same validation and caching as single-pair lookups.
func (r *Registry) FindAllPools(ctx context.Context) ([]model.PoolInfo, error) {
	var pools []model.PoolInfo
	for i := 0; i < len(r.assets); i++ {
		for j := i + 1; j < len(r.assets); j++ {
			p, ok, err := r.FindPoolsForPair(ctx, r.assets[i], r.assets[j])
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
