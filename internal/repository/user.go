package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/userdesk/userdesk/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

// CreateUserParams holds the fields for inserting a new user.
type CreateUserParams struct {
	Name  string
	Email string
	Age   int
}

// UpdateUserParams holds the fields for a partial update. A nil field
// retains the stored value; a non-nil field overwrites it.
type UpdateUserParams struct {
	Name  *string
	Email *string
	Age   *int
}

// ListUsers returns all users ordered by ascending id.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	const query = `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		ORDER BY id ASC
	`

	users := []model.User{}
	if err := r.store.Select(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUserByID retrieves a user by id.
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		WHERE id = ?
	`

	var user model.User
	if err := r.store.Get(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email address.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		WHERE email = ?
	`

	var user model.User
	if err := r.store.Get(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// SearchUsersByName returns users whose name contains term, ordered by
// ascending name. Matching is case-insensitive; an empty term matches
// every row.
func (r *Repository) SearchUsersByName(ctx context.Context, term string) ([]model.User, error) {
	const query = `
		SELECT id, name, email, age, created_at, updated_at
		FROM users
		WHERE name LIKE ?
		ORDER BY name ASC
	`

	users := []model.User{}
	if err := r.store.Select(ctx, &users, query, "%"+term+"%"); err != nil {
		return nil, fmt.Errorf("failed to search users by name: %w", err)
	}
	return users, nil
}

// CountUsers returns the total number of users.
func (r *Repository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.store.Get(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// CreateUser inserts a new user and returns the freshly read row.
func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (*model.User, error) {
	const query = `
		INSERT INTO users (name, email, age, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	res, err := r.store.Execute(ctx, query, params.Name, params.Email, params.Age, now, now)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetUserByID(ctx, res.LastInsertID)
}

// UpdateUser applies a coalescing update: each field is overwritten only
// when supplied, otherwise retained. updated_at is refreshed on every
// call, including one with zero changed fields. Returns the freshly read
// row.
func (r *Repository) UpdateUser(ctx context.Context, id int64, params UpdateUserParams) (*model.User, error) {
	const query = `
		UPDATE users
		SET name = COALESCE(?, name),
		    email = COALESCE(?, email),
		    age = COALESCE(?, age),
		    updated_at = ?
		WHERE id = ?
	`

	res, err := r.store.Execute(ctx, query, params.Name, params.Email, params.Age, time.Now().UTC(), id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetUserByID(ctx, id)
}

// DeleteUser removes a user by id.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	res, err := r.store.Execute(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// isUniqueViolation checks if the error is a SQLite unique constraint
// violation. The driver reports these as plain errors, so match on the
// engine's message.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
