package storage

import (
	"bufio"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"blitzswap/internal/model"
)

func TestJsonlPutPoolBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.jsonl")
	sink := NewJsonlStorage(path)

	records := []model.PoolRecord{
		{
			Network: "testnet",
			Pool: model.PoolInfo{
				PoolID:   "0xabc",
				AssetA:   "0xaaa",
				AssetB:   "0xbbb",
				ReserveA: big.NewInt(1_000_000),
				ReserveB: big.NewInt(2_000_000),
				LPSupply: big.NewInt(1_000_000),
				FeeBps:   30,
			},
			CapturedAt: "2025-01-01T00:00:00Z",
		},
	}

	if err := sink.PutPoolBatch(records); err != nil {
		t.Fatalf("put batch: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var got []model.PoolRecord
	for scanner.Scan() {
		var record model.PoolRecord
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("unmarshal line: %v", err)
		}
		got = append(got, record)
	}

	if !reflect.DeepEqual(records, got) {
		t.Fatalf("round-trip mismatch: %+v != %+v", records, got)
	}
}
