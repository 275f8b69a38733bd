// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/userdesk/userdesk/internal/store"
)

// NewStore opens an in-memory store with the schema created and no seed
// data. The store is closed when the test finishes.
func NewStore(t testing.TB) *store.Store {
	t.Helper()

	s := store.New(":memory:")
	if err := s.Open(); err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if err := s.CreateTables(context.Background()); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return s
}
