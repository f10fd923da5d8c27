// Package apperr defines the error taxonomy shared by the service layer and
// the HTTP boundary. Handlers map each class to a status code with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed input.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate marks a uniqueness collision (email already registered).
	ErrDuplicate = errors.New("duplicate")
	// ErrAuth marks bad credentials or a bad token.
	ErrAuth = errors.New("unauthorized")
	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStore marks an underlying persistence failure.
	ErrStore = errors.New("store error")
)

func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

func Duplicate(msg string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, msg)
}

// Auth carries a reason ("invalid credentials", "token expired", ...). The
// reason is part of the message only; callers branch on ErrAuth.
func Auth(reason string) error {
	return fmt.Errorf("%w: %s", ErrAuth, reason)
}

func NotFound(what string) error {
	return fmt.Errorf("%s: %w", what, ErrNotFound)
}

func Store(err error) error {
	return fmt.Errorf("%w: %w", ErrStore, err)
}
