package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error kinds shared by every use case. Use-case sentinels wrap one of these
// so handlers can fall back to a generic status mapping.
var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("conflict")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrValidation           = errors.New("validation error")
)

// Kind builds a sentinel error that matches both its own identity and kind
// through errors.Is.
func Kind(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// ValidationError carries field-level details for a rejected payload.
type ValidationError struct {
	Err     error
	Details []string
}

func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Err: ErrValidation, Details: details}
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(e.Details, "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AppError is the transport representation of a failed operation.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []string
	Err        error
}

// HTTPError is the JSON body returned to clients.
type HTTPError struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

// FromError maps an error onto the generic taxonomy. Errors that match no
// kind are reported as internal failures.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErr *ValidationError
	if errors.As(err, &vErr) {
		out := NewDomainError("VALIDATION_ERROR", "Invalid request", err, http.StatusBadRequest)
		out.Details = vErr.Details
		return out
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return NewDomainError("UNAUTHORIZED", err.Error(), err, http.StatusUnauthorized)
	case errors.Is(err, ErrForbidden):
		return NewDomainError("FORBIDDEN", err.Error(), err, http.StatusForbidden)
	case errors.Is(err, ErrNotFound):
		return NewDomainError("NOT_FOUND", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		return NewDomainError("CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, ErrInsufficientQuantity):
		return NewDomainError("INSUFFICIENT_QUANTITY", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, ErrValidation):
		return NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	default:
		return NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
