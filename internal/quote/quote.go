// Package quote computes deterministic swap outputs for a single oriented
// pool leg. It is pure: no I/O, no shared state.
package quote

import (
	"math"
	"math/big"

	"blitzswap/internal/model"
)

var bpsDenominator = big.NewInt(10000)

// Output computes the swap output amount and price impact for one pool leg.
// aToB selects the direction: true swaps the pool's AssetA into AssetB.
//
// Amounts use exact integer arithmetic. The fee is taken on the input and
// the truncating divisions happen in a fixed order:
//
//	afterFee = amountIn * (10000 - feeBps) / 10000
//	out      = afterFee * reserveOut / (reserveIn + afterFee)
//
// Reordering the divisions changes the rounding by fractions of the smallest
// unit, so the order is part of the contract, not an implementation detail.
//
// Price impact is the relative change in marginal spot price, as a
// percentage. It is computed in floating point and is for display only.
//
// Pool reserves must be positive; zero-reserve pools are filtered out by the
// registry before they can reach this function.
func Output(pool model.PoolInfo, amountIn *big.Int, aToB bool) (*big.Int, float64) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return new(big.Int), 0
	}

	reserveIn, reserveOut := pool.ReserveA, pool.ReserveB
	if !aToB {
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
	}

	afterFee := new(big.Int).Mul(amountIn, big.NewInt(int64(10000-pool.FeeBps)))
	afterFee.Quo(afterFee, bpsDenominator)

	if pool.FixedRate {
		return fixedRateOutput(afterFee, reserveIn, reserveOut), 0
	}

	// out = afterFee * reserveOut / (reserveIn + afterFee)
	out := new(big.Int).Mul(afterFee, reserveOut)
	denominator := new(big.Int).Add(reserveIn, afterFee)
	out.Quo(out, denominator)

	return out, priceImpact(amountIn, out, reserveIn, reserveOut)
}

// fixedRateOutput converts at the pool's current reserve ratio. The ratio is
// the exchange rate (e.g. a staking rate), so no slippage curve applies.
func fixedRateOutput(afterFee, reserveIn, reserveOut *big.Int) *big.Int {
	if reserveIn.Sign() <= 0 {
		// Rate not initialized yet: 1:1 conversion.
		return new(big.Int).Set(afterFee)
	}
	out := new(big.Int).Mul(afterFee, reserveOut)
	return out.Quo(out, reserveIn)
}

// priceImpact measures how far the marginal price moved from the pre-swap
// spot price, as a percentage of the spot price.
func priceImpact(amountIn, out, reserveIn, reserveOut *big.Int) float64 {
	rIn := bigFloat(reserveIn)
	rOut := bigFloat(reserveOut)
	if rIn == 0 || rOut == 0 {
		return 0
	}

	before := rOut / rIn
	after := (rOut - bigFloat(out)) / (rIn + bigFloat(amountIn))

	impact := math.Abs(after-before) / before * 100
	if impact < 0 || math.IsNaN(impact) {
		return 0
	}
	return impact
}

func bigFloat(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}
