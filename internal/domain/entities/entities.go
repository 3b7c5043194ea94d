package entities

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common errors
var (
	ErrActionNotFound = errors.New("action not found")
)

// DateLayout is the wire format for action dates (ISO 8601 calendar date).
const DateLayout = "2006-01-02"

// ActionMaxLength is the maximum length of the action description.
const ActionMaxLength = 255

// Action represents a single sustainability activity record
type Action struct {
	ID     int    `json:"id"`
	Action string `json:"action"`
	Date   string `json:"date"`
	Points int    `json:"points"`
}

// ValidationError carries per-field validation messages for a rejected
// create or update request
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a message for the given field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors reports whether any field message was recorded
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// StorageError wraps an I/O or serialization failure against the backing file
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// AsValidationError returns the ValidationError wrapped by err, if any
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsStorageError returns the StorageError wrapped by err, if any
func AsStorageError(err error) (*StorageError, bool) {
	var se *StorageError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
