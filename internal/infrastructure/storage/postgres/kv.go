package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"shopledger/internal/core/kv"
)

// SlotTable holds one row per persisted slot.
const SlotTable = "ledger_slots"

const createSlotTableSQL = `CREATE TABLE IF NOT EXISTS ` + SlotTable + ` (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var _ kv.Store = (*SlotStore)(nil)

// slotRow is the scanned shape of a slot.
type slotRow struct {
	Value []byte `db:"value"`
}

// SlotStore is a kv.Store backed by a single PostgreSQL table.
// Saves made inside RunInTransaction share the caller's transaction.
type SlotStore struct {
	txm *TxManager
}

// NewSlotStore creates a slot store using txm for connections.
func NewSlotStore(txm *TxManager) *SlotStore {
	return &SlotStore{txm: txm}
}

// EnsureSchema creates the slot table if it does not exist.
func (s *SlotStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.txm.GetQuerier(ctx).Exec(ctx, createSlotTableSQL); err != nil {
		return fmt.Errorf("create %s: %w", SlotTable, err)
	}
	return nil
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (s *SlotStore) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Load implements kv.Store.
func (s *SlotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	sql, args, err := s.loadQuery(key).ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build query: %w", err)
	}

	var row slotRow
	if err := pgxscan.Get(ctx, s.txm.GetQuerier(ctx), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load slot %s: %w", key, err)
	}
	return row.Value, true, nil
}

// Save implements kv.Store. The slot row is inserted or replaced.
func (s *SlotStore) Save(ctx context.Context, key string, value []byte) error {
	sql, args, err := s.saveQuery(key, value).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := s.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}

func (s *SlotStore) loadQuery(key string) squirrel.SelectBuilder {
	return s.Builder().
		Select("value").
		From(SlotTable).
		Where(squirrel.Eq{"key": key})
}

func (s *SlotStore) saveQuery(key string, value []byte) squirrel.InsertBuilder {
	return s.Builder().
		Insert(SlotTable).
		Columns("key", "value", "updated_at").
		Values(key, squirrel.Expr("?::jsonb", string(value)), squirrel.Expr("now()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at")
}
