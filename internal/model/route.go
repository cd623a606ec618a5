package model

import "math/big"

// SwapRoute is the result of a successful route computation. Legs are
// oriented so each leg's AssetA is that leg's input asset. Routes are built
// fresh per request and never cached.
type SwapRoute struct {
	Legs         []PoolInfo
	InputAmount  *big.Int
	OutputAmount *big.Int
	// PriceImpact is a display-only percentage. For two-leg routes it is the
	// linear sum of the per-leg impacts, a documented approximation.
	PriceImpact float64
	// Path lists the assets traversed, input to output inclusive.
	Path []AssetID
}
