package rc

import (
	"os"
)

// State describes a service's lifecycle position. The exclusive states
// (stopped through inactive) replace one another; the marker states
// coexist with whichever exclusive state is current.
type State int

const (
	// StateStopped is the terminal off state
	StateStopped State = iota
	// StateStarting means the start script is running; exclusive transition
	StateStarting
	// StateStarted is the terminal on state
	StateStarted
	// StateStopping means the stop script is running; exclusive transition
	StateStopping
	// StateInactive is declared by the script itself, e.g. a one-shot that ran
	StateInactive
	// StateWasinactive remembers a service that was inactive before the
	// current transition began
	StateWasinactive
	// StateColdplugged marks a service activated outside any runlevel
	StateColdplugged
	// StateFailed marks a service whose last transition exited non-zero
	StateFailed
	// StateScheduled marks a service waiting for a trigger service
	StateScheduled
	// StateCrashed is computed, never stored: started but with no live daemons
	StateCrashed
)

// storedStates are the states with an on-disk link directory.
var storedStates = []State{
	StateStopped, StateStarting, StateStarted, StateStopping, StateInactive,
	StateWasinactive, StateColdplugged, StateFailed, StateScheduled,
}

// exclusiveStates replace one another; a service holds at most one.
var exclusiveStates = []State{
	StateStopped, StateStarting, StateStarted, StateStopping, StateInactive,
}

// String returns the state's directory name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateStarted:
		return "started"
	case StateStopping:
		return "stopping"
	case StateInactive:
		return "inactive"
	case StateWasinactive:
		return "wasinactive"
	case StateColdplugged:
		return "coldplugged"
	case StateFailed:
		return "failed"
	case StateScheduled:
		return "scheduled"
	case StateCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// ParseState maps a state directory name back to its State. The second
// return is false for unknown names.
func ParseState(name string) (State, bool) {
	for _, st := range storedStates {
		if st.String() == name {
			return st, true
		}
	}
	if name == StateCrashed.String() {
		return StateCrashed, true
	}
	return 0, false
}

func (s State) exclusive() bool {
	switch s {
	case StateStopped, StateStarting, StateStarted, StateStopping, StateInactive:
		return true
	}
	return false
}

func (s State) transitional() bool {
	return s == StateStarting || s == StateStopping
}

// exclusiveStateOf returns the service's current exclusive state. A service
// with no exclusive link reads as stopped.
func (r *RC) exclusiveStateOf(service string) State {
	for _, st := range exclusiveStates {
		if isLink(r.stateLink(st, service)) {
			return st
		}
	}
	return StateStopped
}

// ServiceState reports whether the service is in the queried state. Crashed
// is computed from the service's daemon records; stopped is additionally
// true for a service that has never been marked at all.
func (r *RC) ServiceState(service string, st State) bool {
	if !validName(service) {
		return false
	}
	switch st {
	case StateCrashed:
		return r.ServiceDaemonsCrashed(service)
	case StateStopped:
		return r.exclusiveStateOf(service) == StateStopped
	default:
		return isLink(r.stateLink(st, service))
	}
}

// ServicesInState returns the names of all services currently in the state.
// For stopped, only services with an explicit stopped link are listed; a
// service that was never marked is not included.
func (r *RC) ServicesInState(st State) []string {
	if st == StateCrashed {
		var crashed []string
		for _, s := range r.ServicesInState(StateStarted) {
			if r.ServiceDaemonsCrashed(s) {
				crashed = append(crashed, s)
			}
		}
		return crashed
	}
	return lsDir(r.stateDir(st))
}

// MarkService moves the service into the given state.
//
// Exclusive states replace one another: the new link is created before the
// old one is removed, so a concurrent observer sees the old state or the
// new one, never neither. Entering starting or stopping acquires the
// service's transition lock (ErrBusy when another process holds it) and
// fires the corresponding hook; entering a terminal state releases the
// lock. Leaving inactive sets the wasinactive marker; entering started
// clears wasinactive, failed and scheduled.
//
// Marker states only create their own link. Use UnmarkService to clear one.
// Marking the current exclusive state again is a no-op.
func (r *RC) MarkService(service string, st State) error {
	if !validName(service) {
		return &OpError{Op: OpMark, Path: service, Err: ErrBadName}
	}
	if st == StateCrashed {
		return &OpError{Op: OpMark, Path: service, Err: ErrNotStored}
	}

	if !st.exclusive() {
		if err := r.addStateLink(st, service); err != nil {
			return err
		}
		return nil
	}

	prev := r.exclusiveStateOf(service)
	if prev == st && isLink(r.stateLink(st, service)) {
		return nil
	}

	if st.transitional() {
		if err := r.lockService(service); err != nil {
			return err
		}
	}

	if err := r.addStateLink(st, service); err != nil {
		if st.transitional() {
			r.unlockService(service)
		}
		return err
	}
	for _, other := range exclusiveStates {
		if other == st {
			continue
		}
		removeQuiet(r.stateLink(other, service))
	}

	if prev == StateInactive && st != StateStarted {
		// Remember the inactive history for dependency resolution.
		if err := r.addStateLink(StateWasinactive, service); err != nil {
			return err
		}
	}

	switch st {
	case StateStarted:
		removeQuiet(r.stateLink(StateWasinactive, service))
		removeQuiet(r.stateLink(StateFailed, service))
		r.clearScheduled(service)
	case StateStopped:
		// A stopped service has no daemons left to track.
		_ = rmDir(r.daemonsDir(service), true)
	}

	if !st.transitional() {
		r.unlockService(service)
	}

	switch st {
	case StateStarting:
		r.hook(HookServiceStartNow, service)
	case StateStopping:
		r.hook(HookServiceStopNow, service)
	}

	return nil
}

// UnmarkService removes a marker state link. Clearing scheduled also
// removes the service from every trigger's scheduled set. Exclusive states
// cannot be unmarked; mark the successor state instead.
func (r *RC) UnmarkService(service string, st State) error {
	if !validName(service) {
		return &OpError{Op: OpMark, Path: service, Err: ErrBadName}
	}
	if st.exclusive() || st == StateCrashed {
		return &OpError{Op: OpMark, Path: service, Err: ErrNotStored}
	}
	if st == StateScheduled {
		r.clearScheduled(service)
		return nil
	}
	removeQuiet(r.stateLink(st, service))
	return nil
}

// addStateLink points state/<st>/<service> at the service's script. The
// script path is best-effort; the link's existence is what encodes state.
func (r *RC) addStateLink(st State, service string) error {
	dir := r.stateDir(st)
	if err := mkdirAll(dir); err != nil {
		return &OpError{Op: OpMark, Path: dir, Err: err}
	}
	target, err := r.ResolveService(service)
	if err != nil {
		target = r.initScript(service)
	}
	link := r.stateLink(st, service)
	if err := os.Symlink(target, link); err != nil {
		if os.IsExist(err) {
			return nil
		}
		return &OpError{Op: OpMark, Path: link, Err: err}
	}
	return nil
}

func removeQuiet(path string) {
	_ = os.Remove(path)
}
