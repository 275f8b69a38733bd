// Package apperr defines the application's error taxonomy.
// Errors carry a kind and a user-facing message; the HTTP layer maps
// kinds to status codes in exactly one place.
package apperr

import "errors"

// Kind classifies an error for status-code mapping.
type Kind int

const (
	// KindUnexpected is any failure not caused by the caller.
	KindUnexpected Kind = iota
	// KindValidation is malformed or missing input.
	KindValidation
	// KindBadRequest is a malformed identifier or parameter.
	KindBadRequest
	// KindNotFound means the referenced entity does not exist.
	KindNotFound
	// KindConflict is a uniqueness violation.
	KindConflict
)

// Error is a tagged error carrying a kind and a plain-text message.
// The message is safe to return to callers; the wrapped cause is not.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// BadRequest returns a KindBadRequest error.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NotFound returns a KindNotFound error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict returns a KindConflict error.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Unexpected wraps an internal failure. The message is what callers see;
// err is preserved for logging.
func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf extracts the kind from err. Errors that are not *Error are
// classified as KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// MessageOf returns the user-facing message for err. For errors outside
// the taxonomy it returns a generic message so internals never leak.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
