// Package main - Entry point for the solar-quote HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"solar-quote/adapters/storage"
	"solar-quote/api"
	"solar-quote/core/quote"
	"solar-quote/internal/config"
	"solar-quote/internal/logging"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Config file, JSON or HCL")
	addr := flag.String("addr", "", "Server address (overrides config)")
	dataFile := flag.String("data", "", "Quotation record file (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *dataFile != "" {
		cfg.Quote.DataFile = *dataFile
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	ctx := context.Background()
	store := storage.StoreFactory(cfg.Quote.DataFile)
	service := quote.NewService(ctx, store, quote.RatesFromConfig(cfg.Quote), logging.Logger)

	server := api.NewServer(service, api.Options{
		Version:         version,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		ProjectionYears: cfg.Quote.ProjectionYears,
		Logger:          logging.Logger,
	})

	fmt.Printf("☀ solar-quote server v%s\n", version)
	fmt.Printf("   API:  http://localhost%s/v1\n", cfg.Server.Addr)
	fmt.Printf("   Data: %s (%s)\n", cfg.Quote.DataFile, store.Backend())
	fmt.Println()

	if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
