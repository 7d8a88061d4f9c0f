package domain

import "errors"

// Error kinds. Every error returned by services and usecases wraps exactly one
// of these; the HTTP layer maps the kind to a status code.
var (
	// ErrValidation malformed, missing or out-of-range input (400)
	ErrValidation = errors.New("validation error")

	// ErrUnauthenticated missing or invalid credentials (401)
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrAuthorization actor lacks permission or ownership (403)
	ErrAuthorization = errors.New("authorization error")

	// ErrNotFound referenced entity does not exist (404)
	ErrNotFound = errors.New("not found")

	// ErrConflict entity is not in the state required by the transition (409)
	ErrConflict = errors.New("conflict")

	// ErrInsufficientFunds balance check failed (400)
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInternal storage or unexpected failure (500)
	ErrInternal = errors.New("internal error")
)
