// Package main seeds an empty store with demonstration data.
//
// The store is chosen the same way as for the server (STORAGE_DRIVER and
// friends). A store holding any slot is left untouched.
package main

import (
	"context"
	"fmt"
	"os"

	"shopledger/internal/config"
	"shopledger/internal/domain/auth"
	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/storage"
	"shopledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
		Process:     "seed",
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := logger.WithLogger(context.Background(), log)

	// Print a hash for OPERATOR_PASSWORD_HASH if a password was supplied
	if password := os.Getenv("SEED_OPERATOR_PASSWORD"); password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalw("failed to hash operator password", "error", err)
		}
		fmt.Printf("OPERATOR_PASSWORD_HASH=%s\n", hash)
	}

	if err := checkDurable(cfg.Storage); err != nil {
		log.Fatalw("refusing to seed", "error", err)
	}

	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatalw("failed to open storage", "error", err)
	}
	defer backend.Close()

	l, err := ledger.Open(ctx, backend.Store, ledger.Options{
		TxManager: backend.TxManager,
		Location:  cfg.Location,
	})
	if err != nil {
		log.Fatalw("failed to open ledger", "error", err)
	}

	seeded, err := seedDemoData(ctx, l)
	if err != nil {
		log.Fatalw("failed to seed demo data", "error", err)
	}
	if !seeded {
		log.Info("store already holds data, nothing seeded")
		return
	}

	log.Info("seeding completed successfully")
}
