package rc

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/matthew-sharp/openrc/internal/unix"
)

// lockService takes the service's exclusive transition lock. The lock lives
// on a dedicated file so it survives state-link churn, and it is advisory
// flock, so an abnormal exit releases it with the descriptor.
func (r *RC) lockService(service string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, held := r.locks[service]; held {
		// Re-entering a transition this process already owns.
		return nil
	}

	path := r.lockFile(service)
	if err := mkdirAll(filepath.Dir(path)); err != nil {
		return &OpError{Op: OpMark, Path: path, Err: err}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, FileMode)
	if err != nil {
		return &OpError{Op: OpMark, Path: path, Err: err}
	}
	if err := unix.TryLock(int(f.Fd())); err != nil {
		_ = f.Close()
		if errors.Is(err, unix.ErrWouldBlock) {
			return &OpError{Op: OpMark, Path: path, Err: ErrBusy}
		}
		return &OpError{Op: OpMark, Path: path, Err: err}
	}
	r.locks[service] = f
	return nil
}

// unlockService releases the transition lock if this process holds it.
func (r *RC) unlockService(service string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, held := r.locks[service]
	if !held {
		return
	}
	delete(r.locks, service)
	_ = unix.Unlock(int(f.Fd()))
	_ = f.Close()
}

// tryLockFree probes whether the transition lock is currently free without
// holding it.
func (r *RC) tryLockFree(service string) bool {
	f, err := os.OpenFile(r.lockFile(service), os.O_RDWR, 0)
	if err != nil {
		// No lockfile means no transition has ever started.
		return os.IsNotExist(err)
	}
	defer func() { _ = f.Close() }()

	if err := unix.TryLock(int(f.Fd())); err != nil {
		return false
	}
	_ = unix.Unlock(int(f.Fd()))
	return true
}
