package probearm

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrNotFound indicates a storage key holds no value.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a configured value failed validation.
	ErrValidation = errors.New("validation error")
)
