package pool

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"blitzswap/internal/model"
)

func testPool(a, b model.AssetID) model.PoolInfo {
	return model.PoolInfo{
		PoolID:   "0xpool-" + string(a),
		AssetA:   a,
		AssetB:   b,
		ReserveA: big.NewInt(1_000_000),
		ReserveB: big.NewInt(2_000_000),
		LPSupply: big.NewInt(1_000_000),
		FeeBps:   30,
	}
}

func TestCacheGetAfterPut(t *testing.T) {
	c := NewCache(30*time.Second, 100)
	p := testPool("0xaaa", "0xbbb")
	c.Put(p)

	got, ok := c.Get("0xaaa", "0xbbb")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.PoolID != p.PoolID || got.AssetA != "0xaaa" {
		t.Fatalf("unexpected entry: %+v", got)
	}
	if got.ReserveA.Cmp(p.ReserveA) != 0 {
		t.Fatalf("reserve mismatch: %s != %s", got.ReserveA, p.ReserveA)
	}
}

func TestCacheReversedLookup(t *testing.T) {
	c := NewCache(30*time.Second, 100)
	c.Put(testPool("0xaaa", "0xbbb"))

	got, ok := c.Get("0xbbb", "0xaaa")
	if !ok {
		t.Fatalf("expected hit for reversed pair")
	}
	if got.AssetA != "0xbbb" || got.AssetB != "0xaaa" {
		t.Fatalf("entry not reoriented: %+v", got)
	}
	if got.ReserveA.Cmp(big.NewInt(2_000_000)) != 0 {
		t.Fatalf("reserves not swapped with orientation: %s", got.ReserveA)
	}
}

func TestCacheExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := NewCache(30*time.Second, 100)
	c.now = func() time.Time { return now }

	c.Put(testPool("0xaaa", "0xbbb"))

	now = now.Add(29 * time.Second)
	if _, ok := c.Get("0xaaa", "0xbbb"); !ok {
		t.Fatalf("entry should still be fresh at 29s")
	}

	now = now.Add(time.Second)
	if _, ok := c.Get("0xaaa", "0xbbb"); ok {
		t.Fatalf("entry should be stale at ttl")
	}
}

func TestCacheFullClearEviction(t *testing.T) {
	c := NewCache(30*time.Second, 100)

	for i := 0; i < 101; i++ {
		a := model.AssetID(fmt.Sprintf("0xcoin%03d", i))
		b := model.AssetID(fmt.Sprintf("0xcoin%03d-b", i))
		c.Put(testPool(a, b))
	}

	// The 101st distinct pair clears everything first, then inserts.
	if c.Len() != 1 {
		t.Fatalf("expected size 1 after full clear, got %d", c.Len())
	}
	if _, ok := c.Get("0xcoin000", "0xcoin000-b"); ok {
		t.Fatalf("pre-eviction key should be absent")
	}
	if _, ok := c.Get("0xcoin100", "0xcoin100-b"); !ok {
		t.Fatalf("last inserted key should be present")
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewCache(30*time.Second, 2)
	c.Put(testPool("0xaaa", "0xbbb"))
	c.Put(testPool("0xccc", "0xddd"))

	// Overwriting an existing pair at capacity must not trigger the clear.
	c.Put(testPool("0xaaa", "0xbbb"))
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries after overwrite, got %d", c.Len())
	}
}
