package model

// PoolRecord is one exported pool-catalog entry: a snapshot plus where and
// when it was captured. Records feed discovery listings, not quoting.
type PoolRecord struct {
	Network    string   `json:"network"`
	Pool       PoolInfo `json:"pool"`
	CapturedAt string   `json:"captured_at"`
}
