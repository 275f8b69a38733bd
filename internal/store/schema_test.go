package store

import (
	"context"
	"testing"
)

func countUsers(t *testing.T, s *Store) int {
	t.Helper()
	var count int
	if err := s.Get(context.Background(), &count, `SELECT COUNT(*) FROM users`); err != nil {
		t.Fatalf("count users: %v", err)
	}
	return count
}

func TestInitialize_SeedsEmptyDatabase(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if got := countUsers(t, s); got != len(seedUsers) {
		t.Errorf("seeded %d users, want %d", got, len(seedUsers))
	}
}

func TestInitialize_IsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("first initialize: %v", err)
	}
	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("second initialize: %v", err)
	}
	if got := countUsers(t, s); got != len(seedUsers) {
		t.Errorf("got %d users after double initialize, want %d", got, len(seedUsers))
	}
}

func TestSeed_SkipsNonEmptyTable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateTables(ctx); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	if _, err := s.Execute(ctx,
		`INSERT INTO users (name, email, age) VALUES (?, ?, ?)`,
		"Existing", "existing@example.com", 40,
	); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if got := countUsers(t, s); got != 1 {
		t.Errorf("got %d users, want 1 (seed must not touch non-empty table)", got)
	}
}

func TestReset_DropsAndReseeds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Initialize(ctx); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if _, err := s.Execute(ctx,
		`INSERT INTO users (name, email, age) VALUES (?, ?, ?)`,
		"Extra", "extra@example.com", 22,
	); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := countUsers(t, s); got != len(seedUsers) {
		t.Errorf("got %d users after reset, want %d", got, len(seedUsers))
	}
}
