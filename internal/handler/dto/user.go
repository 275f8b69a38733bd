// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/userdesk/userdesk/internal/model"
)

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// UpdateUserRequest represents the request body for a partial update.
// Omitted fields stay nil and retain the stored value, so "field absent"
// and "field set to zero" are never confused.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converts a model.User to its response form.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       u.Age,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserEnvelope wraps a single user for read responses.
type UserEnvelope struct {
	Data UserResponse `json:"data"`
}

// ListUsersResponse pairs the listing with the total count.
type ListUsersResponse struct {
	Data  []UserResponse `json:"data"`
	Count int            `json:"count"`
}

// ToListUsersResponse converts users and a count to the list envelope.
func ToListUsersResponse(users []model.User, count int) ListUsersResponse {
	data := make([]UserResponse, 0, len(users))
	for i := range users {
		data = append(data, ToUserResponse(&users[i]))
	}
	return ListUsersResponse{Data: data, Count: count}
}

// MutationResponse is returned by create, update, and delete.
type MutationResponse struct {
	Message string        `json:"message"`
	Data    *UserResponse `json:"data,omitempty"`
}

// ErrorResponse is the error envelope for every failed request.
// Context names the failing operation and is only set for unexpected
// errors.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}
