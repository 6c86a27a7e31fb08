// Package errors defines the sentinel errors shared across DigiTime.
//
// This package must only import the standard library so every other
// package can depend on it.
package errors

import "errors"

// Sentinel errors. Check them with errors.Is.
var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidClockFormat indicates a clock format other than 12h or 24h.
	ErrInvalidClockFormat = errors.New("invalid clock format")

	// ErrInvalidClockStyle indicates an unknown clock face style.
	ErrInvalidClockStyle = errors.New("invalid clock style")

	// ErrInvalidView indicates an unknown display view.
	ErrInvalidView = errors.New("invalid view")

	// ErrInvalidPreset indicates a countdown preset that is not a positive
	// whole number of seconds.
	ErrInvalidPreset = errors.New("invalid countdown preset")

	// ErrInvalidInterval indicates a non-positive tick interval.
	ErrInvalidInterval = errors.New("invalid tick interval")

	// ErrIdleUnsupported indicates idle detection is not available on this system.
	ErrIdleUnsupported = errors.New("idle detection unsupported")

	// ErrAlreadyRunning indicates another instance already holds the lock.
	ErrAlreadyRunning = errors.New("instance already running")

	// ErrNotTerminal indicates an interactive command was started without a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
