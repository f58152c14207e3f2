// Package app holds the application services and business logic.
package app

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials indicates that the provided email or password was
	// incorrect. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserExists indicates a registration attempt with a taken email.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound indicates the user row no longer exists. During session
	// resolution this is how deleted users are locked out despite holding a
	// still-valid token.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound indicates a referenced row is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference indicates a write pointing at a row that does not
	// exist, surfaced from a storage-level foreign key check.
	ErrInvalidReference = errors.New("invalid reference")
)

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level validation failures. It is always
// detected before any storage call.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// EntryError attributes a workout-log batch failure to a specific entry
// index. The whole batch has been rolled back by the time it is returned.
type EntryError struct {
	Index int
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("exercise entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
