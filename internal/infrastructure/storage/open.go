// Package storage selects the kv.Store backend named in configuration.
package storage

import (
	"context"
	"fmt"

	"shopledger/internal/config"
	"shopledger/internal/core/kv"
	"shopledger/internal/core/tx"
	"shopledger/internal/infrastructure/storage/file"
	"shopledger/internal/infrastructure/storage/memory"
	"shopledger/internal/infrastructure/storage/postgres"
	"shopledger/pkg/logger"
)

// Backend is an opened store with the transaction manager matching it.
type Backend struct {
	Driver    string
	Store     kv.Store
	TxManager tx.Manager

	// Pool is set for the postgres driver only
	Pool *postgres.Pool

	closers []func()
}

// Close releases the backend's resources.
func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// Open creates the backend for cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (*Backend, error) {
	b := &Backend{Driver: cfg.Driver, TxManager: tx.Nop{}}

	switch cfg.Driver {
	case config.DriverMemory:
		b.Store = memory.New()

	case config.DriverFile:
		store, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		b.Store = store
		b.closers = append(b.closers, func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "failed to close file store", "error", err)
			}
		})

	case config.DriverPostgres:
		poolCfg := postgres.DefaultPoolConfig(cfg.DatabaseURL)
		if cfg.MaxConns > 0 {
			poolCfg.MaxConns = int32(cfg.MaxConns)
		}
		pool, err := postgres.NewPool(ctx, poolCfg)
		if err != nil {
			return nil, err
		}
		b.Pool = pool
		b.closers = append(b.closers, pool.Close)

		txm := postgres.NewTxManager(pool)
		store := postgres.NewSlotStore(txm)
		if err := store.EnsureSchema(ctx); err != nil {
			b.Close()
			return nil, err
		}
		b.Store = store
		b.TxManager = txm

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	logger.Info(ctx, "storage opened", "driver", cfg.Driver)
	return b, nil
}
