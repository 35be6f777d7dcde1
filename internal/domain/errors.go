package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when an operation needs an authenticated user and has none.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned for malformed identifiers and failed request validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidID is returned when an identifier is not a well-formed storage identifier.
	ErrInvalidID = fmt.Errorf("%w: malformed identifier", ErrInvalidInput)

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited is returned when the caller exceeded the request budget for a window.
	ErrRateLimited = errors.New("rate limited")
)

var (
	// ErrConflict is returned when a write collides with existing state.
	ErrConflict = errors.New("conflict")

	// ErrUsernameTaken is returned when provisioning a profile with a username someone else holds.
	ErrUsernameTaken = fmt.Errorf("%w: username already taken", ErrConflict)
)
