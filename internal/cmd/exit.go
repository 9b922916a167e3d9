// Package cmd provides command implementations for the REK CLI.
package cmd

import (
	"errors"

	rekerrors "github.com/blockguard-sf/rek/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidInput indicates malformed metadata or an unsafe package name.
	ExitInvalidInput = 2

	// ExitDestinationConflict indicates the scaffold root exists and is not empty.
	ExitDestinationConflict = 3

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 4

	// ExitIOFailure indicates a generic filesystem write failure.
	ExitIOFailure = 5
)

// ExitCodeFromError determines the appropriate exit code for an error.
// A repository-initialization failure never reaches this mapping: it is
// reported as a warning and the run still succeeds.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *rekerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, rekerrors.ErrInvalidInput), errors.Is(err, rekerrors.ErrInvalidName):
		return ExitInvalidInput
	case errors.Is(err, rekerrors.ErrDestinationConflict):
		return ExitDestinationConflict
	case errors.Is(err, rekerrors.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, rekerrors.ErrIO):
		return ExitIOFailure
	default:
		return ExitGeneralError
	}
}
