package store

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked means another run already holds the state lock.
var ErrLocked = errors.New("state is locked by another run")

// RunLock guards the seen set against overlapping runs.
type RunLock struct {
	fl *flock.Flock
}

// AcquireRunLock takes a non-blocking exclusive lock on path.
func AcquireRunLock(path string) (*RunLock, error) {
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &RunLock{fl: fl}, nil
}

func (l *RunLock) Release() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
