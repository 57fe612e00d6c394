package rc

import (
	"os"
	"path/filepath"
)

// ScheduleStartService records that target should be started once trigger
// reaches started, and marks target as scheduled. The driver walks
// ServicesScheduledBy when a service comes up.
func (r *RC) ScheduleStartService(trigger, target string) error {
	if !validName(trigger) || !validName(target) {
		return &OpError{Op: OpSchedule, Path: trigger + "/" + target, Err: ErrBadName}
	}
	dir := r.scheduledDir(trigger)
	if err := mkdirAll(dir); err != nil {
		return &OpError{Op: OpSchedule, Path: dir, Err: err}
	}
	script, err := r.ResolveService(target)
	if err != nil {
		script = r.initScript(target)
	}
	link := filepath.Join(dir, target)
	if err := os.Symlink(script, link); err != nil && !os.IsExist(err) {
		return &OpError{Op: OpSchedule, Path: link, Err: err}
	}
	return r.MarkService(target, StateScheduled)
}

// ServicesScheduledBy returns the sorted names of the services scheduled to
// start when the trigger service has started.
func (r *RC) ServicesScheduledBy(trigger string) []string {
	if !validName(trigger) {
		return nil
	}
	return lsDir(r.scheduledDir(trigger))
}

// ScheduleClear forgets everything scheduled to start with the trigger
// service. Targets no longer scheduled by any other trigger lose their
// scheduled marker.
func (r *RC) ScheduleClear(trigger string) error {
	if !validName(trigger) {
		return &OpError{Op: OpSchedule, Path: trigger, Err: ErrBadName}
	}
	targets := r.ServicesScheduledBy(trigger)
	if err := rmDir(r.scheduledDir(trigger), true); err != nil {
		return &OpError{Op: OpSchedule, Path: trigger, Err: err}
	}
	for _, target := range targets {
		if !r.scheduledByAnyone(target) {
			removeQuiet(r.stateLink(StateScheduled, target))
		}
	}
	return nil
}

// clearScheduled removes the service from every trigger's scheduled set and
// drops its scheduled marker.
func (r *RC) clearScheduled(service string) {
	base := filepath.Join(r.Root, ScheduledDirName)
	for _, trigger := range lsDir(base) {
		removeQuiet(filepath.Join(base, trigger, service))
	}
	removeQuiet(r.stateLink(StateScheduled, service))
}

func (r *RC) scheduledByAnyone(service string) bool {
	base := filepath.Join(r.Root, ScheduledDirName)
	for _, trigger := range lsDir(base) {
		if exists(filepath.Join(base, trigger, service)) {
			return true
		}
	}
	return false
}
