// Package memory provides an in-memory kv.Store used by tests and demo runs.
package memory

import (
	"context"
	"slices"
	"sync"

	"shopledger/internal/core/kv"
)

var _ kv.Store = (*Store)(nil)

// Store keeps slot values in a map.
type Store struct {
	mu      sync.RWMutex
	values  map[string][]byte
	saves   map[string]int
	failing map[string]error
}

// New creates an empty store.
func New() *Store {
	return &Store{
		values:  make(map[string][]byte),
		saves:   make(map[string]int),
		failing: make(map[string]error),
	}
}

// Load implements kv.Store.
func (s *Store) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Save implements kv.Store.
func (s *Store) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failing[key]; err != nil {
		return err
	}
	s.values[key] = slices.Clone(value)
	s.saves[key]++
	return nil
}

// SaveCount reports how many successful saves hit key.
func (s *Store) SaveCount(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves[key]
}

// FailSaves makes every later Save on key return err. A nil err clears it.
func (s *Store) FailSaves(key string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failing, key)
		return
	}
	s.failing[key] = err
}

// Snapshot copies every slot value.
func (s *Store) Snapshot() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(s.values))
	for k, v := range s.values {
		out[k] = slices.Clone(v)
	}
	return out
}

// Restore replaces every slot value with snap. Slots absent from snap
// become absent.
func (s *Store) Restore(snap map[string][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string][]byte, len(snap))
	for k, v := range snap {
		s.values[k] = slices.Clone(v)
	}
}
