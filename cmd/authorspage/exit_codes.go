package main

import (
	"errors"
	"os"
)

// Exit codes for the authorspage CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Page generated
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags
	ExitIO      = 3 // Write failure, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrWritePage) ||
		errors.Is(err, ErrWritePreview) {
		return ExitIO
	}

	// Usage errors (exit 2)
	if errors.Is(err, ErrConflictingFlags) {
		return ExitUsage
	}

	return ExitGeneral
}
