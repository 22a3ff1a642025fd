package errors

import (
	"net/http"

	"jobfinder/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code associated with the failure
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrAuthenticationFailed is the only error the session core surfaces to
	// callers of Login: credentials rejected or no token in the response.
	ErrAuthenticationFailed = NewBaseError(
		http.StatusUnauthorized,
		"AUTHENTICATION_FAILED",
		"Email or password is incorrect",
		"",
	)

	// ErrLoginSuperseded marks a login whose result arrived after a logout or
	// a newer login already replaced the session. The stale result is discarded.
	ErrLoginSuperseded = NewBaseError(
		http.StatusConflict,
		"LOGIN_SUPERSEDED",
		"Login was superseded by a newer session change",
		"",
	)

	// ErrStorageUnavailable covers persisted read/write failures. It is logged
	// and absorbed: a broken store behaves like an absent session.
	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"On-device storage is unavailable",
		"",
	)

	// ErrTokenDecodeFailed covers claim extraction failures. Non-fatal: the
	// session continues without an account id.
	ErrTokenDecodeFailed = NewBaseError(
		http.StatusBadRequest,
		"TOKEN_DECODE_FAILED",
		"Bearer token claims could not be decoded",
		"",
	)

	// ErrEnrichmentFailed covers best-effort follow-up calls (profile fetch,
	// push-token sync). Logged, swallowed, never affects session validity.
	ErrEnrichmentFailed = NewBaseError(
		http.StatusBadGateway,
		"ENRICHMENT_FAILED",
		"Best-effort enrichment call failed",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrServerUnreachable = NewBaseError(
		http.StatusBadGateway,
		"SERVER_UNREACHABLE",
		"Could not reach the server",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)
)
