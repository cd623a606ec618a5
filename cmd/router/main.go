package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "router",
		Short:        "AMM routing and quoting engine",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a swap route for an asset pair",
		RunE:  runQuote,
	}

	addEngineFlags(quoteCmd)
	quoteCmd.Flags().String("input", "", "input asset (symbol or coin type)")
	quoteCmd.Flags().String("output", "", "output asset (symbol or coin type)")
	quoteCmd.Flags().String("amount", "", "input amount in smallest units")

	root.AddCommand(quoteCmd)

	poolsCmd := &cobra.Command{
		Use:   "pools",
		Short: "Discover pools and export the catalog",
		RunE:  runPools,
	}

	addEngineFlags(poolsCmd)
	poolsCmd.Flags().String("out", "./data/pools.jsonl", "output JSONL path")
	poolsCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for catalog upserts")

	root.AddCommand(poolsCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve quote and pool endpoints over HTTP",
		RunE:  runServe,
	}

	addEngineFlags(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "listen address")

	root.AddCommand(serveCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().String("network", "testnet", "network (mainnet, testnet, devnet)")
	cmd.Flags().String("rpc", "", "node RPC URL (defaults per network)")
	cmd.Flags().Duration("cache-ttl", 30*time.Second, "pool snapshot staleness window")
	cmd.Flags().Int("cache-capacity", 100, "pool cache entry bound")
	cmd.Flags().Duration("query-timeout", 5*time.Second, "per-query ledger timeout")
	cmd.Flags().Int("max-retries", 3, "maximum ledger retry attempts")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial ledger retry backoff")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
