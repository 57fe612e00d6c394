package rc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// Runlevel returns the name of the active runlevel. When no runlevel has
// been stored yet the system is still in sysinit.
func (r *RC) Runlevel() string {
	data, err := os.ReadFile(r.softlevelPath())
	if err != nil {
		return LevelSysinit
	}
	level := strings.TrimSpace(string(data))
	if level == "" {
		return LevelSysinit
	}
	return level
}

// SetRunlevel stores the active runlevel atomically. It only records the
// change; starting and stopping services is the driver's job.
func (r *RC) SetRunlevel(level string) error {
	if !validName(level) {
		return &OpError{Op: OpRunlevel, Path: level, Err: ErrBadName}
	}
	path := r.softlevelPath()
	if err := renameio.WriteFile(path, []byte(level+"\n"), FileMode); err != nil {
		return &OpError{Op: OpRunlevel, Path: path, Err: err}
	}
	return nil
}

// RunlevelExists reports whether the runlevel has a membership directory.
func (r *RC) RunlevelExists(level string) bool {
	return validName(level) && isDir(r.runlevelDir(level))
}

// Runlevels returns the sorted names of all runlevels.
func (r *RC) Runlevels() []string {
	return lsDir(filepath.Join(r.Root, RunlevelDirName))
}

// ServicesInRunlevel returns the sorted names of the runlevel's members.
func (r *RC) ServicesInRunlevel(level string) []string {
	return lsDir(r.runlevelDir(level))
}

// ServiceInRunlevel reports whether the service is a member of the runlevel.
func (r *RC) ServiceInRunlevel(service, level string) bool {
	if !validName(service) || !validName(level) {
		return false
	}
	return exists(filepath.Join(r.runlevelDir(level), service))
}

// ServiceAdd makes the service a member of the runlevel. The service must
// resolve and the runlevel must exist.
func (r *RC) ServiceAdd(level, service string) error {
	if !r.RunlevelExists(level) {
		return &OpError{Op: OpRunlevel, Path: level, Err: ErrNotFound}
	}
	script, err := r.ResolveService(service)
	if err != nil {
		return err
	}
	link := filepath.Join(r.runlevelDir(level), service)
	if err := os.Symlink(script, link); err != nil && !os.IsExist(err) {
		return &OpError{Op: OpRunlevel, Path: link, Err: err}
	}
	return nil
}

// ServiceDelete removes the service from the runlevel.
func (r *RC) ServiceDelete(level, service string) error {
	if !validName(service) || !validName(level) {
		return &OpError{Op: OpRunlevel, Path: service, Err: ErrBadName}
	}
	link := filepath.Join(r.runlevelDir(level), service)
	if err := os.Remove(link); err != nil {
		if os.IsNotExist(err) {
			return &OpError{Op: OpRunlevel, Path: link, Err: ErrNotFound}
		}
		return &OpError{Op: OpRunlevel, Path: link, Err: err}
	}
	return nil
}

// AddRunlevel creates an empty runlevel.
func (r *RC) AddRunlevel(level string) error {
	if !validName(level) {
		return &OpError{Op: OpRunlevel, Path: level, Err: ErrBadName}
	}
	if err := mkdirAll(r.runlevelDir(level)); err != nil {
		return &OpError{Op: OpRunlevel, Path: level, Err: err}
	}
	return nil
}

// RunlevelStarting reports whether a runlevel start is in progress.
func (r *RC) RunlevelStarting() bool {
	return exists(filepath.Join(r.Root, StartingFile))
}

// RunlevelStopping reports whether a runlevel stop is in progress.
func (r *RC) RunlevelStopping() bool {
	return exists(filepath.Join(r.Root, StoppingFile))
}

// SetRunlevelStarting raises or clears the transient start-in-progress flag.
func (r *RC) SetRunlevelStarting(on bool) error {
	return r.setFlag(filepath.Join(r.Root, StartingFile), on)
}

// SetRunlevelStopping raises or clears the transient stop-in-progress flag.
func (r *RC) SetRunlevelStopping(on bool) error {
	return r.setFlag(filepath.Join(r.Root, StoppingFile), on)
}

func (r *RC) setFlag(path string, on bool) error {
	if on {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, FileMode)
		if err != nil {
			return &OpError{Op: OpRunlevel, Path: path, Err: err}
		}
		return f.Close()
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return &OpError{Op: OpRunlevel, Path: path, Err: err}
	}
	return nil
}
