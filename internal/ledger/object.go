package ledger

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
)

// OwnedObject is one entry of an iotax_getOwnedObjects page.
type OwnedObject struct {
	Data *ObjectData `json:"data"`
}

// ObjectData carries the object id and, when showContent was requested, the
// parsed Move content.
type ObjectData struct {
	ObjectID string         `json:"objectId"`
	Content  *ObjectContent `json:"content"`
}

// ObjectContent is the Move-object view of an on-chain object.
type ObjectContent struct {
	DataType string     `json:"dataType"`
	Type     string     `json:"type"`
	Fields   PoolFields `json:"fields"`
}

// PoolFields holds the pool struct fields the router reads. The node
// serializes Move u64 values as JSON strings, but older nodes emitted bare
// numbers; FieldValue accepts both.
type PoolFields struct {
	ReserveA      FieldValue `json:"reserve_a"`
	ReserveB      FieldValue `json:"reserve_b"`
	LPSupply      FieldValue `json:"lp_supply"`
	FeePercentage FieldValue `json:"fee_percentage"`
}

// FieldValue is a numeric Move field that may arrive as a JSON string or a
// JSON number.
type FieldValue string

func (f *FieldValue) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FieldValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FieldValue(n.String())
	return nil
}

// BigInt parses the field as an arbitrary-precision non-negative integer.
// An absent field parses as zero.
func (f FieldValue) BigInt() (*big.Int, error) {
	if f == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(string(f), 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer field %q", string(f))
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative integer field %q", string(f))
	}
	return v, nil
}

// Int parses the field as a small machine integer (used for fee bps).
func (f FieldValue) Int() (int, error) {
	if f == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(string(f))
	if err != nil {
		return 0, fmt.Errorf("invalid integer field %q: %w", string(f), err)
	}
	return v, nil
}
