package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRuleNotFound indicates that no active automatic accounting rule matches
// the requested tenant, origin and category.
var ErrRuleNotFound = errors.New("no matching accounting rule")

// ErrTypeMismatch indicates that a financial entry's recorded type does not
// match the origin expected by the posting operation.
var ErrTypeMismatch = errors.New("financial entry type mismatch")

// ErrConflict indicates that a write collided with an already existing
// resource (e.g. a uniqueness violation).
var ErrConflict = errors.New("resource conflict")

// AppError carries a status code alongside a message and an optional wrapped
// cause. Repositories use it to annotate infrastructure failures without
// leaking driver details to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a generic AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewConflictError creates an AppError wrapping ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrConflict}
}

// NewValidationFailedError creates an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}
