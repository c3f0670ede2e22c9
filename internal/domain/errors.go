package domain

import (
	"errors"
	"fmt"
)

// ValidationError indicates a malformed input value: invalid interval,
// non-positive price, score out of range and so on.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: fmt.Sprint(id)}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

func IsNotFoundError(err error) bool {
	var nerr *NotFoundError
	return errors.As(err, &nerr)
}

// ConflictError indicates an overlap violation on a booking, maintenance
// window, seasonal pricing entry or discount.
type ConflictError struct {
	Message string
}

func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string {
	return e.Message
}

func IsConflictError(err error) bool {
	var cerr *ConflictError
	return errors.As(err, &cerr)
}
