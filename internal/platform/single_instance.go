package platform

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"digitime/internal/errors"
)

const instanceLockName = "digitime.lock"

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	lock *flock.Flock
}

// AcquireSingleInstance takes an exclusive lock file in dir.
// It returns errors.ErrAlreadyRunning when another process holds the lock.
func AcquireSingleInstance(dir string) (*InstanceGuard, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "create lock directory")
	}

	lock := flock.New(filepath.Join(dir, instanceLockName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, "acquire instance lock")
	}
	if !locked {
		return nil, errors.ErrAlreadyRunning
	}
	return &InstanceGuard{lock: lock}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.lock == nil {
		return nil
	}
	if err := guard.lock.Unlock(); err != nil {
		return errors.Wrap(err, "release instance lock")
	}
	return nil
}

// Path returns the lock file path.
func (guard *InstanceGuard) Path() string {
	if guard == nil || guard.lock == nil {
		return ""
	}
	return guard.lock.Path()
}
