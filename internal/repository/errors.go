package repository

import "errors"

// Sentinel errors for the persistence boundary
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the accounts unique index rejects a
	// create. It is the authoritative signal for a lost signup race.
	ErrDuplicateEmail = errors.New("email already registered")
)
