package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopledger/internal/config"
	"shopledger/internal/domain/ledger"
	"shopledger/internal/infrastructure/storage/memory"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	l, err := ledger.Open(ctx, store, ledger.Options{})
	require.NoError(t, err)

	seeded, err := seedDemoData(ctx, l)
	require.NoError(t, err)
	assert.True(t, seeded)

	assert.Len(t, l.ListSuppliers(), 2)
	assert.Len(t, l.ListProducts(), 4)
	assert.Len(t, l.ListCustomers(), 2)
	assert.Len(t, l.LowStockProducts(), 2)

	hardware := l.ListSuppliers()[0]
	assert.Len(t, l.SupplierProducts(hardware.ID), 3)

	reopened, err := ledger.Open(ctx, store, ledger.Options{})
	require.NoError(t, err)
	seeded, err = seedDemoData(ctx, reopened)
	require.NoError(t, err)
	assert.False(t, seeded)
	assert.Len(t, reopened.ListProducts(), 4)
}

func TestCheckDurable(t *testing.T) {
	assert.Error(t, checkDurable(config.StorageConfig{Driver: config.DriverMemory}))
	assert.NoError(t, checkDurable(config.StorageConfig{Driver: config.DriverFile, DataDir: t.TempDir()}))
	assert.NoError(t, checkDurable(config.StorageConfig{Driver: config.DriverPostgres}))
}
