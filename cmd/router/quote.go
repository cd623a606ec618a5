package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"blitzswap/internal/config"
)

func runQuote(cmd *cobra.Command, _ []string) error {
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

	inputParam, _ := cmd.Flags().GetString("input")
	outputParam, _ := cmd.Flags().GetString("output")
	amountParam, _ := cmd.Flags().GetString("amount")

	if inputParam == "" || outputParam == "" {
		return fmt.Errorf("input and output assets are required")
	}
	amount, ok := new(big.Int).SetString(amountParam, 10)
	if !ok {
		return fmt.Errorf("invalid amount %q", amountParam)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}

	input := config.ResolveAsset(inputParam)
	output := config.ResolveAsset(outputParam)
	if input == output {
		return fmt.Errorf("input and output assets cannot be the same")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng, err := buildEngine(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	defer eng.close()

	route, found, err := eng.router.FindBestRoute(ctx, input, output, amount)
	if err != nil {
		return fmt.Errorf("find route: %w", err)
	}
	if !found {
		return fmt.Errorf("no route for %s -> %s", inputParam, outputParam)
	}

	path := make([]string, 0, len(route.Path))
	for _, asset := range route.Path {
		path = append(path, string(asset))
	}

	logger.Info("route found",
		zap.Strings("path", path),
		zap.Int("legs", len(route.Legs)),
		zap.String("input_amount", route.InputAmount.String()),
		zap.String("output_amount", route.OutputAmount.String()),
		zap.Float64("price_impact_pct", route.PriceImpact),
	)

	fmt.Printf("output amount: %s\n", route.OutputAmount.String())
	fmt.Printf("price impact:  %.4f%%\n", route.PriceImpact)
	return nil
}
