package fs

import (
	"errors"
	"syscall"
)

// isTransient reports whether an operation hitting err is worth retrying.
// Everything else fails immediately.
func isTransient(err error) bool {
	return errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ETIMEDOUT)
}
