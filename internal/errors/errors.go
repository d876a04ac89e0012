// Package errors defines the structured errors shared by the paraphrase
// pipeline and the HTTP boundary.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for programmatic handling.
type ErrorCode string

const (
	// ErrCodeInvalidRequest marks a client-input error. The caller can fix it.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeInternal marks an inference or unexpected server failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeUnavailable marks a model provider that cannot be reached or is not configured.
	ErrCodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeRateLimitExceeded marks a request rejected by the rate limiter.
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"
	// ErrCodeNotFound marks an unknown route.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeMethodNotAllowed marks a known route hit with the wrong method.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
)

var defaultStatus = map[ErrorCode]int{
	ErrCodeInvalidRequest:    http.StatusBadRequest,
	ErrCodeInternal:          http.StatusInternalServerError,
	ErrCodeUnavailable:       http.StatusServiceUnavailable,
	ErrCodeRateLimitExceeded: http.StatusTooManyRequests,
	ErrCodeNotFound:          http.StatusNotFound,
	ErrCodeMethodNotAllowed:  http.StatusMethodNotAllowed,
}

// StructuredError carries an error code, a caller-facing message, an
// optional HTTP status override and the underlying cause.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Status  int
	Cause   error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the explicit status if one was set, otherwise the
// default status for the error code.
func (e *StructuredError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	if s, ok := defaultStatus[e.Code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// WithStatus overrides the HTTP status reported for this error.
func (e *StructuredError) WithStatus(status int) *StructuredError {
	e.Status = status
	return e
}

// IsClientError reports whether the error was caused by the caller's input.
func (e *StructuredError) IsClientError() bool {
	return e.Code == ErrCodeInvalidRequest
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// InvalidUsage creates a client-input error with status 400.
func InvalidUsage(message string) *StructuredError {
	return New(ErrCodeInvalidRequest, message)
}

// As returns the first StructuredError in err's chain, if any.
func As(err error) (*StructuredError, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// HTTPStatus maps any error to an HTTP status. Errors that are not
// structured are treated as internal failures.
func HTTPStatus(err error) int {
	if se, ok := As(err); ok {
		return se.HTTPStatus()
	}
	return http.StatusInternalServerError
}
