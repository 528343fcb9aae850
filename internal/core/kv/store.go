// Package kv defines the persistence port the ledger is written against.
//
// Every entity type lives in exactly one slot holding its whole collection.
// Stores only move bytes; encoding is the repository's concern.
package kv

import (
	"context"
)

// Slot names, one per entity type.
const (
	SlotProducts  = "products"
	SlotCustomers = "customers"
	SlotSuppliers = "suppliers"
	SlotSales     = "sales"
	SlotPurchases = "purchases"
)

// Slots lists every slot in load order.
var Slots = []string{SlotProducts, SlotCustomers, SlotSuppliers, SlotSales, SlotPurchases}

// Store is a durable key-value store with load/save semantics.
type Store interface {
	// Load returns the bytes last saved under key.
	// found is false (and err nil) when nothing was ever saved there.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)

	// Save replaces the value under key. It must be durable before returning.
	Save(ctx context.Context, key string, value []byte) error
}
