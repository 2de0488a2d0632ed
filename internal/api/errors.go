package api

import (
	"errors"
	"net/http"

	"github.com/josebarbozaDUOC/API-TASK/internal/service"
	"github.com/josebarbozaDUOC/API-TASK/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type, so handlers never leak internal error details to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound

	case errors.As(err, &validationErr):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrStorage):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the given
// error. Storage errors in particular must never reach clients verbatim:
// they can carry connection strings and engine internals.
func GetSafeErrorMessage(err error) string {
	var notFoundErr *service.NotFoundError
	var validationErr *service.ValidationError

	switch {
	case errors.As(err, &notFoundErr):
		return "Task not found"

	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, store.ErrStorage):
		return "Storage operation failed"

	default:
		return "An unexpected error occurred"
	}
}
