package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when no row matches the key.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned on registration with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned on registration with an already taken username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned on login or password confirmation failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProfileIncomplete is returned by operations that require a completed profile.
	ErrProfileIncomplete = errors.New("profile is not completed")
	// ErrProviderUnavailable is returned when the text provider fails or times out.
	ErrProviderUnavailable = errors.New("suggestion provider unavailable")
)

// ValidationError reports the first request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
