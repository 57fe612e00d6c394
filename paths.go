package rc

import (
	"io/fs"
	"path/filepath"
)

// Reserved runlevel names
const (
	// LevelSysinit is the first runlevel brought up at boot
	LevelSysinit = "sysinit"

	// LevelBoot holds services every other runlevel builds on
	LevelBoot = "boot"

	// LevelSingle is single-user mode
	LevelSingle = "single"

	// LevelShutdown is entered when the system powers off
	LevelShutdown = "shutdown"

	// LevelReboot is entered when the system restarts
	LevelReboot = "reboot"
)

// Directory and file names under the RC root
const (
	// InitDirName contains the executable init scripts
	InitDirName = "init.d"

	// ConfDirName contains per-service configuration files
	ConfDirName = "conf.d"

	// RunlevelDirName contains one directory per runlevel; membership is a
	// symlink named after the service
	RunlevelDirName = "runlevels"

	// StateDirName contains one directory per service state; a service is
	// in a state iff a symlink named after it exists there
	StateDirName = "state"

	// OptionsDirName contains per-service persistent option files
	OptionsDirName = "options"

	// DaemonsDirName contains per-service daemon record files
	DaemonsDirName = "daemons"

	// ScheduledDirName links trigger services to the services they start
	ScheduledDirName = "scheduled"

	// LocksDirName contains the per-service transition lockfiles
	LocksDirName = "locks"

	// DeptreeFile is the serialized dependency cache
	DeptreeFile = "deptree"

	// SoftlevelFile stores the name of the active runlevel
	SoftlevelFile = "softlevel"

	// StartingFile flags that a runlevel start is in progress
	StartingFile = "rc.starting"

	// StoppingFile flags that a runlevel stop is in progress
	StoppingFile = "rc.stopping"

	// RCConfFile is the global configuration file consulted by the
	// dependency cache staleness check
	RCConfFile = "rc.conf"
)

// File modes
const (
	// DirMode is the default mode for created directories
	DirMode fs.FileMode = 0o755

	// FileMode is the default mode for created files
	FileMode fs.FileMode = 0o644
)

func (r *RC) stateDir(st State) string {
	return filepath.Join(r.Root, StateDirName, st.String())
}

func (r *RC) stateLink(st State, service string) string {
	return filepath.Join(r.Root, StateDirName, st.String(), service)
}

func (r *RC) runlevelDir(level string) string {
	return filepath.Join(r.Root, RunlevelDirName, level)
}

func (r *RC) optionsDir(service string) string {
	return filepath.Join(r.Root, OptionsDirName, service)
}

func (r *RC) daemonsDir(service string) string {
	return filepath.Join(r.Root, DaemonsDirName, service)
}

func (r *RC) scheduledDir(trigger string) string {
	return filepath.Join(r.Root, ScheduledDirName, trigger)
}

func (r *RC) lockFile(service string) string {
	return filepath.Join(r.Root, LocksDirName, service)
}

func (r *RC) deptreePath() string {
	return filepath.Join(r.Root, DeptreeFile)
}

func (r *RC) softlevelPath() string {
	return filepath.Join(r.Root, SoftlevelFile)
}

// EnsureLayout creates the directory skeleton under the root. It is safe to
// call on an existing tree; missing pieces are created, present ones are
// left alone.
func (r *RC) EnsureLayout() error {
	dirs := []string{
		r.InitDir,
		r.ConfDir,
		filepath.Join(r.Root, RunlevelDirName),
		filepath.Join(r.Root, StateDirName),
		filepath.Join(r.Root, OptionsDirName),
		filepath.Join(r.Root, DaemonsDirName),
		filepath.Join(r.Root, ScheduledDirName),
		filepath.Join(r.Root, LocksDirName),
	}
	for _, st := range storedStates {
		dirs = append(dirs, r.stateDir(st))
	}
	for _, d := range dirs {
		if err := mkdirAll(d); err != nil {
			return &OpError{Op: OpLayout, Path: d, Err: err}
		}
	}
	return nil
}
