package store

import (
	"errors"
	"fmt"
)

// ErrStorage is the root of all storage failures. Backend errors wrap it so
// callers can detect "the engine failed" with a single errors.Is check.
var ErrStorage = errors.New("storage failure")

// StorageError reports a failed storage operation with backend context.
type StorageError struct {
	Backend   string // backend name (e.g. "sqlite", "postgres")
	Operation string // the operation that failed (e.g. "create", "connect")
	Err       error  // underlying engine error
}

// Error implements the error interface for StorageError.
func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s failed: %v", e.Backend, e.Operation, e.Err)
	}
	return fmt.Sprintf("%s %s failed", e.Backend, e.Operation)
}

// Unwrap returns ErrStorage so errors.Is(err, ErrStorage) matches any
// StorageError regardless of backend.
func (e *StorageError) Unwrap() error {
	return ErrStorage
}

// NewStorageError creates a StorageError for the given backend and operation.
func NewStorageError(backend, operation string, err error) *StorageError {
	return &StorageError{
		Backend:   backend,
		Operation: operation,
		Err:       err,
	}
}
