// Package apierror provides the stable error taxonomy for the API.
// All errors returned to clients go through this package to ensure a
// consistent envelope and to prevent leaking internal details (stack
// traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies an error into one of the stable API error categories.
// The string value travels in the response envelope so clients can branch
// on it without parsing free-text messages.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindInternal     Kind = "internal"
)

// Error is the canonical API error. It carries the kind used for HTTP
// status mapping plus a human-readable detail.
type Error struct {
	Kind   Kind   `json:"code"`
	Detail string `json:"detail"`
}

func (e *Error) Error() string { return e.Detail }

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Validation(detail string) *Error   { return New(KindValidation, detail) }
func Unauthorized(detail string) *Error { return New(KindUnauthorized, detail) }
func Forbidden(detail string) *Error    { return New(KindForbidden, detail) }
func NotFound(detail string) *Error     { return New(KindNotFound, detail) }
func Conflict(detail string) *Error     { return New(KindConflict, detail) }

// Internal wraps a storage or infrastructure failure. The original error is
// logged by the caller; clients only ever see the generic detail.
func Internal() *Error {
	return New(KindInternal, "Error interno del servidor")
}

// HTTPStatus maps an error to its HTTP status code. Unclassified errors are
// treated as internal failures.
func HTTPStatus(err error) int {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return http.StatusInternalServerError
	}
	switch apiErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AsAPIError normalizes any error into an *Error suitable for the response
// envelope, hiding detail for unclassified (internal) errors.
func AsAPIError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal()
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Kind   Kind              `json:"code"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Kind: KindValidation, Detail: "Error de validacion", Fields: fields}
}
