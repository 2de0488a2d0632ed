// Package service provides the application-level task operations between the
// HTTP layer and the storage backends. It owns not-found semantics (the
// stores report absence as a normal value; this layer turns it into a typed
// error) and partial-update merging.
package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by errors.Is for any NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports that no record of the given entity kind exists with
// the given id. The API layer maps it to HTTP 404.
type NotFoundError struct {
	Entity string
	ID     int64
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// Unwrap returns ErrNotFound so errors.Is(err, ErrNotFound) matches.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError reports a business-rule rejection raised by the service
// itself, beyond what the request-schema layer checks. The API layer maps it
// to HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
