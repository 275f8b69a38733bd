// Package service provides business logic for the application.
// It is transport-agnostic: inputs and outputs are plain values, and
// failures are reported through the apperr taxonomy.
package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/userdesk/userdesk/internal/apperr"
	"github.com/userdesk/userdesk/internal/model"
	"github.com/userdesk/userdesk/internal/repository"
)

// Email must look like local@domain.tld: no whitespace or extra @ in any
// part, and at least one dot in the domain.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minAge = 1
	maxAge = 150
)

// UserService handles user business rules over the repository.
type UserService struct {
	repo *repository.Repository
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository) *UserService {
	return &UserService{repo: repo}
}

// CreateUserInput defines input for creating a user.
type CreateUserInput struct {
	Name  string
	Email string
	Age   int
}

// UpdateUserInput defines input for a partial update. Nil fields are
// treated as omitted and retain the stored value.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Age   *int
}

// ListUsersOutput pairs the listing with an independently fetched count.
// The count comes from its own query rather than len(Data); under
// concurrent external writers the two may diverge, which is accepted for
// a single-writer embedded store.
type ListUsersOutput struct {
	Data  []model.User
	Count int
}

// CreateUser validates input and inserts a new user.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*model.User, error) {
	// A zero age counts as missing, same as an empty name or email.
	if input.Name == "" || input.Email == "" || input.Age == 0 {
		return nil, apperr.Validation("Name, email, and age are required")
	}
	if !emailRegex.MatchString(input.Email) {
		return nil, apperr.Validation("Invalid email format")
	}
	if input.Age < minAge || input.Age > maxAge {
		return nil, apperr.Validation("Age must be between 1 and 150")
	}

	user, err := s.repo.CreateUser(ctx, repository.CreateUserParams{
		Name:  input.Name,
		Email: input.Email,
		Age:   input.Age,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, apperr.Conflict("Email already exists")
		}
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies a partial update: supplied fields are merged over
// the existing record, omitted fields are retained, and the id is never
// overwritten. Existence is asserted before the update.
func (s *UserService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*model.User, error) {
	existing, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := repository.UpdateUserParams{
		Name:  &existing.Name,
		Email: &existing.Email,
		Age:   &existing.Age,
	}
	if input.Name != nil {
		merged.Name = input.Name
	}
	if input.Email != nil {
		merged.Email = input.Email
	}
	if input.Age != nil {
		merged.Age = input.Age
	}

	user, err := s.repo.UpdateUser(ctx, id, merged)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, apperr.NotFound("User not found")
		case errors.Is(err, repository.ErrEmailExists):
			return nil, apperr.Conflict("Email already exists")
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user, asserting existence first.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return apperr.NotFound("User not found")
		}
		return err
	}
	return nil
}

// ListUsers returns all users together with the total count.
func (s *UserService) ListUsers(ctx context.Context) (*ListUsersOutput, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}

	return &ListUsersOutput{Data: users, Count: count}, nil
}
