// Package common defines shared constants and sentinel errors used across
// the calendard server, CLI client, and supporting packages. Callers should
// use errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Auth errors. ErrUnauthorized covers missing tokens and bad
	// credentials; ErrInvalidToken means a token was presented but resolves
	// to no user, and the client should discard it.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden: the resource exists but the caller does not own it.
	ErrForbidden = errors.New("forbidden")

	// ErrFriendResolution: one or more friend ids on a user record could
	// not be resolved. The friend join is all-or-nothing.
	ErrFriendResolution = errors.New("friend resolution failed")

	// ErrInternal covers transient backend failures (store unavailable).
	// Never retried automatically.
	ErrInternal = errors.New("internal error")
)

// ValidationError reports the first input rule a request failed. The reason
// is human-readable and safe to return to the client verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for the given field and reason.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
