package service

import "errors"

// Sentinel errors for service layer
var (
	// ErrConflict signals a duplicate account email, whether caught by the
	// pre-signup lookup or by the store's unique index after a lost race.
	ErrConflict = errors.New("email already registered")
)
