package repositories

import "errors"

var (
	// ErrNotFound is returned when no document matches a well-formed id.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when an insert trips the unique
	// username index.
	ErrDuplicateUsername = errors.New("duplicate username")
)
