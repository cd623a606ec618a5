package ledger

import (
	"encoding/json"
	"testing"
)

func TestFieldValueUnmarshal(t *testing.T) {
	var fields PoolFields

	// Current nodes serialize u64 as strings; older ones emitted numbers.
	raw := `{"reserve_a":"1000000000000","reserve_b":284700000,"lp_supply":"1000000000000","fee_percentage":30}`
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	reserveA, err := fields.ReserveA.BigInt()
	if err != nil {
		t.Fatalf("reserve_a: %v", err)
	}
	if reserveA.String() != "1000000000000" {
		t.Fatalf("unexpected reserve_a: %s", reserveA)
	}

	reserveB, err := fields.ReserveB.BigInt()
	if err != nil {
		t.Fatalf("reserve_b: %v", err)
	}
	if reserveB.Int64() != 284_700_000 {
		t.Fatalf("unexpected reserve_b: %s", reserveB)
	}

	fee, err := fields.FeePercentage.Int()
	if err != nil {
		t.Fatalf("fee_percentage: %v", err)
	}
	if fee != 30 {
		t.Fatalf("unexpected fee: %d", fee)
	}
}

func TestFieldValueRejectsGarbage(t *testing.T) {
	var f FieldValue = "not-a-number"
	if _, err := f.BigInt(); err == nil {
		t.Fatalf("expected error for non-numeric field")
	}
	if _, err := f.Int(); err == nil {
		t.Fatalf("expected error for non-numeric field")
	}
}

func TestFieldValueDefaults(t *testing.T) {
	var f FieldValue
	v, err := f.BigInt()
	if err != nil {
		t.Fatalf("empty field should parse as zero: %v", err)
	}
	if v.Sign() != 0 {
		t.Fatalf("expected zero, got %s", v)
	}
}
