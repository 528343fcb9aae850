package postgres

import (
	"strings"
	"testing"

	"shopledger/internal/core/kv"
)

func TestSlotStore_LoadQuery(t *testing.T) {
	s := NewSlotStore(nil)

	sql, args, err := s.loadQuery(kv.SlotProducts).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	wantSQL := "SELECT value FROM ledger_slots WHERE key = $1"
	if sql != wantSQL {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", wantSQL, sql)
	}
	if len(args) != 1 || args[0] != kv.SlotProducts {
		t.Errorf("Args mismatch: %v", args)
	}
}

func TestSlotStore_SaveQuery(t *testing.T) {
	s := NewSlotStore(nil)
	payload := []byte(`[{"name":"Hammer"}]`)

	sql, args, err := s.saveQuery(kv.SlotSales, payload).ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	for _, part := range []string{
		"INSERT INTO ledger_slots",
		"$1",
		"$2::jsonb",
		"now()",
		"ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
	} {
		if !strings.Contains(sql, part) {
			t.Errorf("SQL %q does not contain %q", sql, part)
		}
	}
	if len(args) != 2 {
		t.Fatalf("Args count mismatch\nwant: 2\ngot:  %d", len(args))
	}
	if args[0] != kv.SlotSales {
		t.Errorf("key arg = %v", args[0])
	}
	if args[1] != string(payload) {
		t.Errorf("value arg = %v", args[1])
	}
}
