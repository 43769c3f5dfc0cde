package services

import "errors"

// Failure kinds the transport layer maps to HTTP statuses. Services
// wrap these with context; callers test with errors.Is. Anything not
// wrapping one of them is an internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid input")
)
