package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad input"), KindValidation},
		{"bad request", BadRequest("bad id"), KindBadRequest},
		{"not found", NotFound("missing"), KindNotFound},
		{"conflict", Conflict("duplicate"), KindConflict},
		{"unexpected", Unexpected("boom", errors.New("disk full")), KindUnexpected},
		{"plain error", errors.New("something else"), KindUnexpected},
		{"wrapped", fmt.Errorf("op: %w", NotFound("missing")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMessageOf(t *testing.T) {
	if got := MessageOf(NotFound("User not found")); got != "User not found" {
		t.Errorf("unexpected message: %q", got)
	}

	// Internals of unknown errors must not leak.
	if got := MessageOf(errors.New("pq: connection refused")); got != "Internal server error" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestUnexpected_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Unexpected("store failure", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}

	want := "store failure: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
