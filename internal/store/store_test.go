package store

import (
	"context"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(":memory:")
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_OpenIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Open(); err != nil {
		t.Fatalf("first open: %v", err)
	}
	first := s.db
	if err := s.Open(); err != nil {
		t.Fatalf("second open: %v", err)
	}
	if s.db != first {
		t.Error("expected repeated Open to keep the same handle")
	}
}

func TestStore_CloseIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestStore_ReopensAfterClose(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Use after close must transparently reopen.
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping after close: %v", err)
	}
}

func TestStore_ForeignKeysEnabled(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	var enabled int
	if err := s.Get(ctx, &enabled, `PRAGMA foreign_keys`); err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if enabled != 1 {
		t.Errorf("foreign_keys = %d, want 1", enabled)
	}
}

func TestStore_ExecuteReportsLastInsertID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateTables(ctx); err != nil {
		t.Fatalf("create tables: %v", err)
	}

	res, err := s.Execute(ctx,
		`INSERT INTO users (name, email, age) VALUES (?, ?, ?)`,
		"Alice", "alice@example.com", 30,
	)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if res.RowsAffected != 1 {
		t.Errorf("RowsAffected = %d, want 1", res.RowsAffected)
	}
	if res.LastInsertID == 0 {
		t.Error("expected non-zero LastInsertID")
	}
}

func TestStore_EngineErrorsPropagate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Execute(ctx, `INSERT INTO no_such_table (x) VALUES (1)`); err == nil {
		t.Fatal("expected error for missing table")
	}
}
