// Package errs defines the error categories the blog API distinguishes and
// how each one maps onto an HTTP status.
//
// Handlers never pick status codes themselves. They return one of these
// errors and the error middleware turns it into a response envelope.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when no blog matches a lookup
var ErrNotFound = errors.New("blog not found")

// FieldError is a single rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError carries the field-level reasons a request was rejected.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// NewValidationError builds a ValidationError with the given fields
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// StoreError wraps a failure of the data store with the operation that hit it.
type StoreError struct {
	Op string
	// Code is the postgres condition name (e.g. "unique_violation"), if known
	Code string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError. A nil err stays nil.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// HTTPStatus returns the status code for err
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
