package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"blitzswap/internal/config"
	"blitzswap/internal/model"
	"blitzswap/internal/storage"
	"blitzswap/internal/storage/postgres"
)

func runPools(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	defer eng.close()

	pools, err := eng.registry.FindAllPools(ctx)
	if err != nil {
		return fmt.Errorf("discover pools: %w", err)
	}

	capturedAt := time.Now().UTC().Format(time.RFC3339)
	records := make([]model.PoolRecord, 0, len(pools))
	for _, p := range pools {
		records = append(records, model.PoolRecord{
			Network:    cfg.Network,
			Pool:       p,
			CapturedAt: capturedAt,
		})
	}

	logger.Info("pool discovery complete",
		zap.String("network", cfg.Network),
		zap.Int("pools", len(records)),
		zap.String("out", cfg.Out),
	)

	if cfg.Out != "" {
		var sink storage.Storage = storage.NewJsonlStorage(cfg.Out)
		if err := sink.PutPoolBatch(records); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
	}

	if cfg.PGDSN != "" {
		store, err := postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		if err := store.UpsertPoolRecords(ctx, records); err != nil {
			return fmt.Errorf("upsert catalog: %w", err)
		}
	}

	return nil
}
