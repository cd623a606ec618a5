package storage

import "blitzswap/internal/model"

// Storage defines a sink for pool-catalog records.
type Storage interface {
	PutPoolBatch(records []model.PoolRecord) error
}
