package quote

import (
	"math/big"
	"testing"

	"blitzswap/internal/model"
)

func curvePool(reserveA, reserveB int64, feeBps int) model.PoolInfo {
	return model.PoolInfo{
		PoolID:   "0xpool",
		AssetA:   "0x2::iota::IOTA",
		AssetB:   "0xusdc::coin::COIN",
		ReserveA: big.NewInt(reserveA),
		ReserveB: big.NewInt(reserveB),
		LPSupply: big.NewInt(reserveA),
		FeeBps:   feeBps,
	}
}

func TestOutputAgainstSpotPrice(t *testing.T) {
	// 1,000 IOTA : 284.7 USDC pool, 0.3% fee, swap 1 IOTA.
	pool := curvePool(1_000_000_000_000, 284_700_000, 30)
	amountIn := big.NewInt(1_000_000_000)

	out, impact := Output(pool, amountIn, true)

	// Recompute with the documented division order.
	afterFee := new(big.Int).Mul(amountIn, big.NewInt(9970))
	afterFee.Quo(afterFee, big.NewInt(10000))
	expected := new(big.Int).Mul(afterFee, pool.ReserveB)
	expected.Quo(expected, new(big.Int).Add(pool.ReserveA, afterFee))

	if out.Cmp(expected) != 0 {
		t.Fatalf("unexpected output: got %s want %s", out, expected)
	}
	if out.Sign() <= 0 {
		t.Fatalf("output should be positive, got %s", out)
	}
	// Naive spot-price output would be 284,700 USDC units; fee and slippage
	// must both reduce it.
	if out.Cmp(big.NewInt(284_700)) >= 0 {
		t.Fatalf("output %s not below naive spot output 284700", out)
	}
	if impact <= 0 {
		t.Fatalf("price impact should be positive, got %f", impact)
	}
}

func TestNoDrain(t *testing.T) {
	cases := []struct {
		name     string
		reserveA int64
		reserveB int64
		feeBps   int
		amountIn *big.Int
	}{
		{"tiny_pool_huge_amount", 1_000, 1_000, 30, big.NewInt(1_000_000_000_000)},
		{"balanced", 1_000_000, 1_000_000, 30, big.NewInt(500_000)},
		{"skewed", 1_000_000_000_000, 284_700_000, 30, big.NewInt(999_000_000_000)},
		{"zero_fee", 1_000_000, 2_000_000, 0, big.NewInt(10_000_000)},
		{"max_fee", 1_000_000, 2_000_000, 9999, big.NewInt(10_000_000)},
	}

	for _, tc := range cases {
		pool := curvePool(tc.reserveA, tc.reserveB, tc.feeBps)
		out, _ := Output(pool, tc.amountIn, true)
		if out.Sign() < 0 {
			t.Fatalf("%s: negative output %s", tc.name, out)
		}
		if out.Cmp(pool.ReserveB) >= 0 {
			t.Fatalf("%s: output %s drains reserve %s", tc.name, out, pool.ReserveB)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	pool := curvePool(1_000_000_000, 500_000_000, 30)

	prev := new(big.Int)
	for _, amount := range []int64{1, 1_000, 1_000_000, 50_000_000, 900_000_000} {
		out, _ := Output(pool, big.NewInt(amount), true)
		if out.Cmp(prev) < 0 {
			t.Fatalf("output decreased: amountIn=%d out=%s prev=%s", amount, out, prev)
		}
		prev = out
	}

	// Strictly increasing over a coarse step.
	small, _ := Output(pool, big.NewInt(1_000_000), true)
	large, _ := Output(pool, big.NewInt(2_000_000), true)
	if large.Cmp(small) <= 0 {
		t.Fatalf("output not strictly increasing: %s vs %s", small, large)
	}
}

func TestFeeDominance(t *testing.T) {
	amountIn := big.NewInt(10_000_000)

	lowFee := curvePool(1_000_000_000, 1_000_000_000, 10)
	highFee := curvePool(1_000_000_000, 1_000_000_000, 100)

	outLow, _ := Output(lowFee, amountIn, true)
	outHigh, _ := Output(highFee, amountIn, true)

	if outLow.Cmp(outHigh) < 0 {
		t.Fatalf("lower fee produced less output: %s < %s", outLow, outHigh)
	}
}

func TestZeroAmount(t *testing.T) {
	pool := curvePool(1_000_000, 1_000_000, 30)

	out, impact := Output(pool, big.NewInt(0), true)
	if out.Sign() != 0 {
		t.Fatalf("expected zero output, got %s", out)
	}
	if impact != 0 {
		t.Fatalf("expected zero impact, got %f", impact)
	}

	out, impact = Output(pool, nil, true)
	if out.Sign() != 0 || impact != 0 {
		t.Fatalf("nil amount should quote as zero, got %s / %f", out, impact)
	}
}

func TestReorientationSymmetry(t *testing.T) {
	pool := curvePool(3_000_000_000, 9_000_000, 30)
	amountIn := big.NewInt(5_000_000)

	outForward, impactForward := Output(pool, amountIn, true)
	outReversed, impactReversed := Output(pool.Reversed(), amountIn, false)

	if outForward.Cmp(outReversed) != 0 {
		t.Fatalf("reorientation changed output: %s != %s", outForward, outReversed)
	}
	if impactForward != impactReversed {
		t.Fatalf("reorientation changed impact: %f != %f", impactForward, impactReversed)
	}
}

func TestFixedRateOutput(t *testing.T) {
	pool := model.PoolInfo{
		PoolID:    "0xstaking",
		AssetA:    "0x2::iota::IOTA",
		AssetB:    "0xpkg::simple_staking::StakedIOTA",
		ReserveA:  big.NewInt(10_000_000_000_000),
		ReserveB:  big.NewInt(9_900_000_000_000), // 1.01 staking rate
		LPSupply:  big.NewInt(10_000_000_000_000),
		FeeBps:    10,
		FixedRate: true,
	}
	amountIn := big.NewInt(1_000_000_000)

	out, impact := Output(pool, amountIn, true)

	// Ratio conversion after the fee, no slippage term.
	afterFee := new(big.Int).Mul(amountIn, big.NewInt(9990))
	afterFee.Quo(afterFee, big.NewInt(10000))
	expected := new(big.Int).Mul(afterFee, pool.ReserveB)
	expected.Quo(expected, pool.ReserveA)

	if out.Cmp(expected) != 0 {
		t.Fatalf("unexpected fixed-rate output: got %s want %s", out, expected)
	}
	if impact != 0 {
		t.Fatalf("fixed-rate pool must report zero impact, got %f", impact)
	}

	// Regardless of how skewed the ratio is.
	pool.ReserveB = big.NewInt(1_000_000_000)
	_, impact = Output(pool, amountIn, true)
	if impact != 0 {
		t.Fatalf("fixed-rate impact must stay zero, got %f", impact)
	}
}
