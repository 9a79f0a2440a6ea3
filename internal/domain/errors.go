package domain

import "errors"

// Sentinel errors for the repository and service layers. Handlers map these
// to HTTP status codes; anything else is treated as a storage failure.
var (
	// ErrNotFound indicates the identifier resolved to no record.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness violation that survived retries,
	// such as a slug or email collision.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates missing or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
