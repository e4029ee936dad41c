package errors

import "net/http"

const (
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeValidation     = "VALIDATION_ERROR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeDatabase       = "DATABASE_ERROR"
	CodeCache          = "CACHE_ERROR"
	CodeInternal       = "INTERNAL_SERVER_ERROR"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrConflict = New(
		CodeConflict,
		"Resource conflict",
		http.StatusConflict,
	)

	ErrValidation = New(
		CodeValidation,
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrNoIDsProvided = New(
		CodeInvalidRequest,
		"No IDs provided",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		CodeDatabase,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		CodeCache,
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
