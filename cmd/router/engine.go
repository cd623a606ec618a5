package main

import (
	"context"

	"go.uber.org/zap"

	"blitzswap/internal/config"
	"blitzswap/internal/ledger"
	"blitzswap/internal/pool"
	"blitzswap/internal/router"
)

// engine bundles the wired routing components and their cleanup.
type engine struct {
	registry *pool.Registry
	router   *router.Router
	close    func()
}

// buildEngine constructs the pool source, registry, and router for the
// configured network. Networks without a deployed DEX package fall back to
// the static pool table.
func buildEngine(ctx context.Context, cfg config.Config, logger *zap.Logger) (*engine, error) {
	network := config.Networks[cfg.Network]

	var (
		source  pool.Source
		cleanup = func() {}
	)
	if network.PackageID == "0x0" {
		logger.Info("no package deployed, using static pool table",
			zap.String("network", cfg.Network),
		)
		source = pool.NewStaticSource(pool.DefaultPools())
	} else {
		client, err := ledger.NewClient(ctx, cfg.RPCURL,
			ledger.WithRetries(cfg.MaxRetries, cfg.RetryBackoff))
		if err != nil {
			return nil, err
		}
		cleanup = client.Close
		source = pool.NewLedgerSource(client, network.PackageID, cfg.QueryTimeout, logger)
	}

	registry := pool.NewRegistry(pool.RegistryConfig{
		CacheTTL:         cfg.CacheTTL,
		CacheCapacity:    cfg.CacheCapacity,
		FixedRatePoolIDs: []string{config.StakingPoolID},
		Assets:           config.AssetUniverse(),
	}, source, logger)

	return &engine{
		registry: registry,
		router:   router.NewRouter(registry, config.HubAsset, logger),
		close:    cleanup,
	}, nil
}
