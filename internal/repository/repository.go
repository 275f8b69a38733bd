// Package repository provides the database access layer.
package repository

import "github.com/userdesk/userdesk/internal/store"

// Repository translates user-entity operations into store statements.
type Repository struct {
	store *store.Store
}

// New creates a Repository over the given store adapter.
func New(s *store.Store) *Repository {
	return &Repository{store: s}
}
