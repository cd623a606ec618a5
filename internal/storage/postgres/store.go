package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blitzswap/internal/model"
)

// Store provides Postgres persistence for the pool catalog.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertPoolRecords inserts or updates catalog entries keyed by network and
// pool id. Reserve quantities are stored as numeric strings.
func (s *Store) UpsertPoolRecords(ctx context.Context, records []model.PoolRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, record := range records {
		p := record.Pool
		batch.Queue(`
			INSERT INTO pool_catalog (
				network, pool_id, asset_a, asset_b, reserve_a, reserve_b,
				lp_supply, fee_bps, fixed_rate, captured_at, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10, now(), now())
			ON CONFLICT (network, pool_id)
			DO UPDATE SET
				asset_a = EXCLUDED.asset_a,
				asset_b = EXCLUDED.asset_b,
				reserve_a = EXCLUDED.reserve_a,
				reserve_b = EXCLUDED.reserve_b,
				lp_supply = EXCLUDED.lp_supply,
				fee_bps = EXCLUDED.fee_bps,
				fixed_rate = EXCLUDED.fixed_rate,
				captured_at = EXCLUDED.captured_at,
				updated_at = now()
		`,
			record.Network,
			p.PoolID,
			string(p.AssetA),
			string(p.AssetB),
			p.ReserveA.String(),
			p.ReserveB.String(),
			p.LPSupply.String(),
			p.FeeBps,
			p.FixedRate,
			record.CapturedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range records {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
