package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// ErrConflict is reserved for stores that detect a concurrent write.
	// Commands never return it.
	ErrConflict = errors.New("conflict")

	ErrInvalidColumn = errors.New("invalid column")
	ErrEmptyBoard    = errors.New("project has no workflow columns")
	ErrAlreadyClosed = errors.New("ticket is already closed")
	ErrNotClosed     = errors.New("ticket is not closed")
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details. Keys are JSON field paths
// such as "title" or "columns[0].name". Each field carries one message: when a
// value breaks several constraints, only the first one checked is reported.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FieldsError returns a *ValidationError for fields, or nil when fields is empty.
func FieldsError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
