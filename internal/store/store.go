// Package store provides the embedded SQLite store adapter.
// It owns the single process-wide connection handle and exposes the
// execute/query primitives the repository is built on. Engine errors
// propagate unchanged; the adapter interprets nothing.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Store wraps a single SQLite connection handle.
// The handle is created lazily on first use and can be released with
// Close; any call after Close transparently reopens it.
type Store struct {
	path string

	mu sync.Mutex
	db *sqlx.DB
}

// Result reports the outcome of a statement that returns no rows.
type Result struct {
	RowsAffected int64
	LastInsertID int64
}

// New returns a Store for the database file at path.
// Use ":memory:" for an in-memory database in tests.
func New(path string) *Store {
	return &Store{path: path}
}

// Open eagerly creates the connection handle and verifies connectivity.
// Calling Open on an already open store is a no-op.
func (s *Store) Open() error {
	_, err := s.handle()
	return err
}

// handle returns the live connection handle, opening it if needed.
func (s *Store) handle() (*sqlx.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	// Foreign-key enforcement is off by default in SQLite; enable it at
	// connection time. A single connection keeps writes serialized and
	// makes ":memory:" databases stable across statements.
	db, err := sqlx.Open("sqlite3", s.path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s.db = db
	return s.db, nil
}

// Close releases the connection handle. Safe to call multiple times;
// the next use reopens the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

// Execute runs a statement that returns no rows (INSERT, UPDATE, DELETE,
// DDL) and reports rows affected and the last inserted row id.
func (s *Store) Execute(ctx context.Context, query string, args ...any) (Result, error) {
	db, err := s.handle()
	if err != nil {
		return Result{}, err
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return Result{}, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return Result{}, err
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return Result{}, err
	}

	return Result{RowsAffected: rows, LastInsertID: lastID}, nil
}

// Get runs a query expected to return a single row and scans it into dest.
// Returns sql.ErrNoRows unchanged when no row matches.
func (s *Store) Get(ctx context.Context, dest any, query string, args ...any) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.GetContext(ctx, dest, query, args...)
}

// Select runs a query returning multiple rows and scans them into dest.
func (s *Store) Select(ctx context.Context, dest any, query string, args ...any) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	return db.SelectContext(ctx, dest, query, args...)
}

// InTx runs fn inside a transaction, committing on nil and rolling back
// on error or panic.
func (s *Store) InTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
