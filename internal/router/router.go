// Package router turns swap requests into routes across one or two pool
// legs.
package router

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"blitzswap/internal/model"
	"blitzswap/internal/pool"
	"blitzswap/internal/quote"
)

// Router orchestrates the pool registry and the quoting engine. It tries a
// direct pool first and falls back to a two-hop route through the hub
// asset. Discovery returns at most one pool per pair, so the route found is
// the first available one, not the best of several candidates.
type Router struct {
	registry *pool.Registry
	hub      model.AssetID
	logger   *zap.Logger
}

// NewRouter builds a router over the registry with the given hub asset.
func NewRouter(registry *pool.Registry, hub model.AssetID, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		registry: registry,
		hub:      hub,
		logger:   logger,
	}
}

// FindBestRoute computes a route from input to output for amountIn. It
// reports (zero, false, nil) when neither a direct nor a hub-mediated pool
// path exists; that is a normal negative outcome, not an error. A non-nil
// error means pool data could not be fetched and the caller may retry.
//
// Identical inputs at the same cache state yield identical routes.
func (r *Router) FindBestRoute(ctx context.Context, input, output model.AssetID, amountIn *big.Int) (model.SwapRoute, bool, error) {
	direct, ok, err := r.registry.FindPoolsForPair(ctx, input, output)
	if err != nil {
		return model.SwapRoute{}, false, err
	}
	if ok {
		aToB := direct.AssetA == input
		outputAmount, impact := quote.Output(direct, amountIn, aToB)

		r.logger.Debug("direct route",
			zap.String("pool_id", direct.PoolID),
			zap.String("in", amountIn.String()),
			zap.String("out", outputAmount.String()),
		)
		return model.SwapRoute{
			Legs:         []model.PoolInfo{direct},
			InputAmount:  amountIn,
			OutputAmount: outputAmount,
			PriceImpact:  impact,
			Path:         []model.AssetID{input, output},
		}, true, nil
	}

	if input == r.hub || output == r.hub {
		return model.SwapRoute{}, false, nil
	}
	return r.hubRoute(ctx, input, output, amountIn)
}

// hubRoute chains two legs through the hub asset, feeding the first leg's
// output into the second. The combined price impact is the linear sum of
// the per-leg impacts; true compounded impact is slightly larger, which is
// acceptable for display but not for settlement.
func (r *Router) hubRoute(ctx context.Context, input, output model.AssetID, amountIn *big.Int) (model.SwapRoute, bool, error) {
	leg1, ok, err := r.registry.FindPoolsForPair(ctx, input, r.hub)
	if err != nil {
		return model.SwapRoute{}, false, err
	}
	if !ok {
		return model.SwapRoute{}, false, nil
	}

	leg2, ok, err := r.registry.FindPoolsForPair(ctx, r.hub, output)
	if err != nil {
		return model.SwapRoute{}, false, err
	}
	if !ok {
		return model.SwapRoute{}, false, nil
	}

	hubAmount, impact1 := quote.Output(leg1, amountIn, leg1.AssetA == input)
	finalAmount, impact2 := quote.Output(leg2, hubAmount, leg2.AssetA == r.hub)

	r.logger.Debug("hub route",
		zap.String("leg1_pool", leg1.PoolID),
		zap.String("leg2_pool", leg2.PoolID),
		zap.String("in", amountIn.String()),
		zap.String("hub_amount", hubAmount.String()),
		zap.String("out", finalAmount.String()),
	)
	return model.SwapRoute{
		Legs:         []model.PoolInfo{leg1, leg2},
		InputAmount:  amountIn,
		OutputAmount: finalAmount,
		PriceImpact:  impact1 + impact2,
		Path:         []model.AssetID{input, r.hub, output},
	}, true, nil
}
