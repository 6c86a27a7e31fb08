// Package platform wraps the operating system services DigiTime depends on:
// user idle time and the single-instance lock.
package platform

import (
	"time"

	"digitime/internal/errors"
)

// IdleProvider returns the duration since last user input.
// Implementations return errors.ErrIdleUnsupported when the system cannot tell.
type IdleProvider interface {
	IdleDuration() (time.Duration, error)
}

// NewIdleProvider returns a platform-specific idle provider.
func NewIdleProvider() IdleProvider {
	return newIdleProvider()
}

type unsupportedIdleProvider struct{}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, errors.ErrIdleUnsupported
}
