package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// createUsersTable is the schema contract for the users table.
const createUsersTable = `
	CREATE TABLE IF NOT EXISTS users (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL UNIQUE,
		age        INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)
`

// seedUser is one row of the demo dataset.
type seedUser struct {
	Name  string
	Email string
	Age   int
}

// seedUsers is the fixed demo dataset inserted into an empty database.
var seedUsers = []seedUser{
	{Name: "João Silva", Email: "joao.silva@email.com", Age: 28},
	{Name: "Maria Santos", Email: "maria.santos@email.com", Age: 32},
	{Name: "Pedro Oliveira", Email: "pedro.oliveira@email.com", Age: 25},
	{Name: "Ana Costa", Email: "ana.costa@email.com", Age: 30},
	{Name: "Carlos Souza", Email: "carlos.souza@email.com", Age: 45},
}

// CreateTables creates the users table if it does not exist.
func (s *Store) CreateTables(ctx context.Context) error {
	if _, err := s.Execute(ctx, createUsersTable); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// DropTables drops the users table.
func (s *Store) DropTables(ctx context.Context) error {
	if _, err := s.Execute(ctx, `DROP TABLE IF EXISTS users`); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}

// Seed inserts the demo dataset if the table is empty. All rows are
// inserted in a single transaction: either every seed row lands or none.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.Get(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		// Already seeded (or in use); leave the data alone.
		return nil
	}

	now := time.Now().UTC()
	err := s.InTx(ctx, func(tx *sqlx.Tx) error {
		const query = `
			INSERT INTO users (name, email, age, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`
		for _, u := range seedUsers {
			if _, err := tx.ExecContext(ctx, query, u.Name, u.Email, u.Age, now, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}

// Initialize creates the schema if absent and seeds the demo dataset
// only when the table is empty. Safe to call more than once.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.CreateTables(ctx); err != nil {
		return err
	}
	return s.Seed(ctx)
}

// Reset drops and recreates the schema, then reseeds unconditionally.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.DropTables(ctx); err != nil {
		return err
	}
	if err := s.CreateTables(ctx); err != nil {
		return err
	}
	return s.Seed(ctx)
}
