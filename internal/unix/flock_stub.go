//go:build !linux && !darwin

// Package unix provides platform-specific advisory locking primitives.
package unix

import "errors"

// ErrWouldBlock is returned by TryLock when another process holds the lock.
var ErrWouldBlock = errors.New("lock held elsewhere")

// ErrUnsupported is returned on platforms without flock semantics.
var ErrUnsupported = errors.New("advisory locks not supported on this platform")

// TryLock is unsupported on this platform.
func TryLock(fd int) error {
	return ErrUnsupported
}

// Unlock is unsupported on this platform.
func Unlock(fd int) error {
	return ErrUnsupported
}
