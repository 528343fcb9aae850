// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"shopledger/internal/core/apperror"
	"shopledger/internal/core/entity"
	"shopledger/internal/core/id"
	"shopledger/internal/core/kv"
)

// Collection is the in-memory copy of one persisted slot.
//
// Items keep insertion order. Every mutation writes the whole collection to
// the store first and only then becomes visible to readers, so a failed save
// leaves the previous state in place.
//
// Collection is not safe for concurrent use; callers serialize access.
type Collection[T entity.Identifiable] struct {
	slot  string
	store kv.Store
	items []T
}

// Cloner is implemented by records that hold slices or pointers. Collection
// hands readers clones so they cannot reach into stored state.
type Cloner[T any] interface {
	Clone() T
}

// NewCollection creates an empty collection bound to slot.
func NewCollection[T entity.Identifiable](slot string, store kv.Store) *Collection[T] {
	return &Collection[T]{
		slot:  slot,
		store: store,
	}
}

// Slot returns the persistence slot name.
func (c *Collection[T]) Slot() string {
	return c.slot
}

// Load replaces the in-memory state with whatever the store holds.
// found is false when the slot was never written.
func (c *Collection[T]) Load(ctx context.Context) (found bool, err error) {
	data, found, err := c.store.Load(ctx, c.slot)
	if err != nil {
		return false, apperror.NewStorage(c.slot, fmt.Errorf("load %s: %w", c.slot, err))
	}
	if !found || len(data) == 0 {
		c.items = nil
		return found, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return true, apperror.NewStorage(c.slot, fmt.Errorf("decode %s: %w", c.slot, err))
	}
	c.items = items
	return true, nil
}

// List returns a snapshot of all items in insertion order.
func (c *Collection[T]) List() []T {
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = clone(item)
	}
	return out
}

// Restore replaces the in-memory state with items without writing to the
// store. Used to undo mutations the store did not commit.
func (c *Collection[T]) Restore(items []T) {
	c.items = slices.Clone(items)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Get looks up an item by ID.
func (c *Collection[T]) Get(itemID id.ID) (T, bool) {
	if i := c.indexOf(itemID); i >= 0 {
		return clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// Filter returns the items matching keep, in insertion order.
func (c *Collection[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, clone(item))
		}
	}
	return out
}

// Add appends item and persists the collection.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	next := append(slices.Clone(c.items), item)
	return c.persist(ctx, next)
}

// Update replaces the item with the result of mutate.
// A missing ID is a no-op: updated is false and nothing is written.
func (c *Collection[T]) Update(ctx context.Context, itemID id.ID, mutate func(T) T) (updated bool, err error) {
	i := c.indexOf(itemID)
	if i < 0 {
		return false, nil
	}

	next := slices.Clone(c.items)
	next[i] = mutate(next[i])
	if err := c.persist(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the item with itemID.
// A missing ID is a no-op: deleted is false and nothing is written.
func (c *Collection[T]) Delete(ctx context.Context, itemID id.ID) (deleted bool, err error) {
	i := c.indexOf(itemID)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(c.items), i, i+1)
	if err := c.persist(ctx, next); err != nil {
		return false, err
	}
	return true, nil
}

func clone[T any](item T) T {
	if cl, ok := any(item).(Cloner[T]); ok {
		return cl.Clone()
	}
	return item
}

func (c *Collection[T]) indexOf(itemID id.ID) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.GetID() == itemID
	})
}

func (c *Collection[T]) persist(ctx context.Context, next []T) error {
	if next == nil {
		next = []T{}
	}
	data, err := json.Marshal(next)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("encode %s: %w", c.slot, err))
	}
	if err := c.store.Save(ctx, c.slot, data); err != nil {
		return apperror.NewStorage(c.slot, fmt.Errorf("save %s: %w", c.slot, err))
	}
	c.items = next
	return nil
}
