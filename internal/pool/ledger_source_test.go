package pool

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"blitzswap/internal/config"
	"blitzswap/internal/ledger"
)

func TestLedgerSourceStakingPair(t *testing.T) {
	// The staking pair is answered synthetically, before any node query, so
	// a nil client is fine here.
	source := NewLedgerSource(nil, "0xpkg", 5*time.Second, nil)

	p, ok, err := source.QueryPair(context.Background(), config.StakedAsset, config.HubAsset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected staking pool snapshot")
	}
	if p.PoolID != config.StakingPoolID {
		t.Fatalf("unexpected pool id: %s", p.PoolID)
	}
	if p.AssetA != config.StakedAsset {
		t.Fatalf("snapshot not oriented to request: %s", p.AssetA)
	}
}

func TestParsePool(t *testing.T) {
	raw := `{
		"data": {
			"objectId": "0xdeadbeef",
			"content": {
				"dataType": "moveObject",
				"type": "0xpkg::dex::Pool<0xaaa, 0xbbb>",
				"fields": {
					"reserve_a": "1000000000000",
					"reserve_b": "284700000",
					"lp_supply": "1000000000000",
					"fee_percentage": "30"
				}
			}
		}
	}`

	var obj ledger.OwnedObject
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}

	p, err := parsePool(obj, "0xaaa", "0xbbb")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.PoolID != "0xdeadbeef" {
		t.Fatalf("unexpected pool id: %s", p.PoolID)
	}
	if p.ReserveA.String() != "1000000000000" || p.ReserveB.String() != "284700000" {
		t.Fatalf("unexpected reserves: %s / %s", p.ReserveA, p.ReserveB)
	}
	if p.FeeBps != 30 {
		t.Fatalf("unexpected fee: %d", p.FeeBps)
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("parsed pool should validate: %v", err)
	}
}

func TestParsePoolDefaultsFee(t *testing.T) {
	raw := `{
		"data": {
			"objectId": "0xdeadbeef",
			"content": {
				"dataType": "moveObject",
				"type": "0xpkg::dex::Pool<0xaaa, 0xbbb>",
				"fields": {
					"reserve_a": "100",
					"reserve_b": "200",
					"lp_supply": "100"
				}
			}
		}
	}`

	var obj ledger.OwnedObject
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}

	p, err := parsePool(obj, "0xaaa", "0xbbb")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if p.FeeBps != defaultFeeBps {
		t.Fatalf("expected default fee %d, got %d", defaultFeeBps, p.FeeBps)
	}
}

func TestParsePoolRejectsNonMoveObject(t *testing.T) {
	raw := `{"data": {"objectId": "0x1", "content": {"dataType": "package", "fields": {}}}}`

	var obj ledger.OwnedObject
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("unmarshal object: %v", err)
	}

	if _, err := parsePool(obj, "0xaaa", "0xbbb"); err == nil {
		t.Fatalf("expected error for non-move object")
	}
}
