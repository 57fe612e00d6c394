//go:build linux || darwin

// Package unix provides platform-specific advisory locking primitives.
package unix

import (
	"errors"

	"golang.org/x/sys/unix"
)

// ErrWouldBlock is returned by TryLock when another process holds the lock.
var ErrWouldBlock = errors.New("lock held elsewhere")

// TryLock attempts to take an exclusive advisory lock on the descriptor
// without blocking. The lock is released when the descriptor is closed,
// including by process exit.
func TryLock(fd int) error {
	err := unix.Flock(fd, unix.LOCK_EX|unix.LOCK_NB)
	if err == unix.EWOULDBLOCK || err == unix.EAGAIN {
		return ErrWouldBlock
	}
	return err
}

// Unlock drops an advisory lock held on the descriptor.
func Unlock(fd int) error {
	return unix.Flock(fd, unix.LOCK_UN)
}
