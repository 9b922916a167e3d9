// Package errors provides sentinel errors for the REK CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidInput indicates malformed package metadata.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDestinationConflict indicates the scaffold root already exists and is not empty.
	ErrDestinationConflict = errors.New("destination conflict")

	// ErrPermission indicates insufficient filesystem permissions.
	ErrPermission = errors.New("permission denied")

	// ErrInvalidName indicates the package name failed the filesystem-safety check.
	ErrInvalidName = errors.New("invalid package name")

	// ErrIO indicates a generic filesystem write failure.
	ErrIO = errors.New("i/o failure")

	// ErrVCSInit indicates the post-generation repository initialization failed.
	// Non-fatal: the scaffold itself is still considered successfully created.
	ErrVCSInit = errors.New("repository initialization failed")
)

// DetailError captures structured error information for user-facing messages.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the filesystem path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an invalid input error with details.
func NewInvalidInputError(message, hint string) error {
	return &DetailError{
		Type:    "invalid input",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidInput,
	}
}

// NewDestinationConflictError creates a destination conflict error with details.
func NewDestinationConflictError(message, location, hint string) error {
	return &DetailError{
		Type:     "destination conflict",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrDestinationConflict,
	}
}

// NewPermissionError creates a permission denied error with details.
func NewPermissionError(message, location string) error {
	return &DetailError{
		Type:     "permission denied",
		Message:  message,
		Location: location,
		Cause:    ErrPermission,
	}
}

// NewInvalidNameError creates an invalid name error with details.
func NewInvalidNameError(message, hint string) error {
	return &DetailError{
		Type:    "invalid package name",
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidName,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed reports whether the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}
