package model

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// PoolInfo is a read-only snapshot of a liquidity pool. Snapshots are never
// mutated in place; reorientation produces a fresh copy.
type PoolInfo struct {
	PoolID    string
	AssetA    AssetID
	AssetB    AssetID
	ReserveA  *big.Int
	ReserveB  *big.Int
	LPSupply  *big.Int
	FeeBps    int
	FixedRate bool
}

// Reversed returns a copy with the asset and reserve roles swapped, so the
// caller's requested input asset can always sit in AssetA.
func (p PoolInfo) Reversed() PoolInfo {
	return PoolInfo{
		PoolID:    p.PoolID,
		AssetA:    p.AssetB,
		AssetB:    p.AssetA,
		ReserveA:  p.ReserveB,
		ReserveB:  p.ReserveA,
		LPSupply:  p.LPSupply,
		FeeBps:    p.FeeBps,
		FixedRate: p.FixedRate,
	}
}

// OrientedFor returns the pool oriented so AssetA equals input. The second
// return is false when the pool does not hold the asset at all.
func (p PoolInfo) OrientedFor(input AssetID) (PoolInfo, bool) {
	switch input {
	case p.AssetA:
		return p, true
	case p.AssetB:
		return p.Reversed(), true
	default:
		return PoolInfo{}, false
	}
}

// Holds reports whether the pool holds exactly the unordered pair (a, b).
func (p PoolInfo) Holds(a, b AssetID) bool {
	return (p.AssetA == a && p.AssetB == b) || (p.AssetA == b && p.AssetB == a)
}

// Validate enforces the reserve invariant required for quoting. A pool with
// a zero or missing reserve cannot price a swap and must be treated as
// absent by callers.
func (p PoolInfo) Validate() error {
	if p.PoolID == "" {
		return fmt.Errorf("pool id is empty")
	}
	if p.AssetA == "" || p.AssetB == "" {
		return fmt.Errorf("pool %s: asset type is empty", p.PoolID)
	}
	if p.AssetA == p.AssetB {
		return fmt.Errorf("pool %s: identical assets %s", p.PoolID, p.AssetA)
	}
	if p.ReserveA == nil || p.ReserveA.Sign() <= 0 {
		return fmt.Errorf("pool %s: reserve for %s is not positive", p.PoolID, p.AssetA)
	}
	if p.ReserveB == nil || p.ReserveB.Sign() <= 0 {
		return fmt.Errorf("pool %s: reserve for %s is not positive", p.PoolID, p.AssetB)
	}
	if p.FeeBps < 0 || p.FeeBps >= 10000 {
		return fmt.Errorf("pool %s: fee %d bps out of range", p.PoolID, p.FeeBps)
	}
	return nil
}

// poolJSON carries the wire shape of a pool snapshot. Reserve quantities can
// exceed 64 bits, so they travel as decimal strings.
type poolJSON struct {
	PoolID    string `json:"pool_id"`
	AssetA    string `json:"asset_a"`
	AssetB    string `json:"asset_b"`
	ReserveA  string `json:"reserve_a"`
	ReserveB  string `json:"reserve_b"`
	LPSupply  string `json:"lp_supply"`
	FeeBps    int    `json:"fee_bps"`
	FixedRate bool   `json:"fixed_rate,omitempty"`
}

func (p PoolInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(poolJSON{
		PoolID:    p.PoolID,
		AssetA:    string(p.AssetA),
		AssetB:    string(p.AssetB),
		ReserveA:  bigString(p.ReserveA),
		ReserveB:  bigString(p.ReserveB),
		LPSupply:  bigString(p.LPSupply),
		FeeBps:    p.FeeBps,
		FixedRate: p.FixedRate,
	})
}

func (p *PoolInfo) UnmarshalJSON(data []byte) error {
	var raw poolJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	reserveA, err := parseBig(raw.ReserveA)
	if err != nil {
		return fmt.Errorf("reserve_a: %w", err)
	}
	reserveB, err := parseBig(raw.ReserveB)
	if err != nil {
		return fmt.Errorf("reserve_b: %w", err)
	}
	lpSupply, err := parseBig(raw.LPSupply)
	if err != nil {
		return fmt.Errorf("lp_supply: %w", err)
	}

	*p = PoolInfo{
		PoolID:    raw.PoolID,
		AssetA:    AssetID(raw.AssetA),
		AssetB:    AssetID(raw.AssetB),
		ReserveA:  reserveA,
		ReserveB:  reserveB,
		LPSupply:  lpSupply,
		FeeBps:    raw.FeeBps,
		FixedRate: raw.FixedRate,
	}
	return nil
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func parseBig(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
