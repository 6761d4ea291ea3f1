// Package main - Entry point for the asset cost estimation server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"asset-cost/api"
	"asset-cost/assets"
	"asset-cost/internal/config"
	"asset-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "asset-cost-server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "asset-cost.json", "Path to the JSON config file")
	envFile := flag.String("env-file", ".env", "Path to a .env file")
	flag.Parse()

	if err := config.LoadDotEnv(*envFile); err != nil {
		return err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	registry, err := assets.NewRegistry(cfg.RateCards)
	if err != nil {
		return err
	}
	logging.Info("asset-cost server starting",
		zap.String("version", version),
		zap.Strings("assets", registry.Names()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(version, registry, cfg.Server)
	if err := server.Run(ctx); err != nil {
		return err
	}

	logging.Info("server exited")
	return nil
}
