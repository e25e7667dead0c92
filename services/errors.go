package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers a missing, malformed or expired token, and a
	// token whose user no longer exists (an invalid session).
	ErrUnauthorized = errors.New("token missing or invalid")

	// ErrNotFound is returned for a well-formed id with no matching record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrDuplicateUsername is returned when registration trips the unique
	// username constraint.
	ErrDuplicateUsername = errors.New("expected `username` to be unique")

	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
)

func validationErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
