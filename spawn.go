package rc

import (
	"os"
	"os/exec"
)

// Verbs passed to init scripts
const (
	// VerbStart runs the script's start action
	VerbStart = "start"

	// VerbStop runs the script's stop action
	VerbStop = "stop"

	// VerbDepend makes the script emit its dependency declarations on
	// stdout without side effects
	VerbDepend = "depend"
)

// StartService spawns the service's init script with the start verb and
// returns the child pid. The caller collects completion with Waitpid. A
// service already starting or started is a no-op returning pid 0.
func (r *RC) StartService(service string) (int, error) {
	if r.ServiceState(service, StateStarting) || r.ServiceState(service, StateStarted) {
		return 0, nil
	}
	return r.spawn(service, VerbStart, OpStart)
}

// StopService spawns the service's init script with the stop verb and
// returns the child pid. A service already stopping or stopped is a no-op
// returning pid 0.
func (r *RC) StopService(service string) (int, error) {
	if r.ServiceState(service, StateStopping) || r.ServiceState(service, StateStopped) {
		return 0, nil
	}
	return r.spawn(service, VerbStop, OpStop)
}

func (r *RC) spawn(service, verb string, op Operation) (int, error) {
	script, err := r.ResolveService(service)
	if err != nil {
		return -1, err
	}

	cmd := exec.Command(script, verb)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "RC_SVCNAME="+service)
	if err := cmd.Start(); err != nil {
		return -1, &OpError{Op: op, Path: script, Err: err}
	}

	pid := cmd.Process.Pid
	r.mu.Lock()
	if r.children == nil {
		r.children = make(map[int]*exec.Cmd)
	}
	r.children[pid] = cmd
	r.mu.Unlock()

	return pid, nil
}

// Waitpid blocks until the child with the given pid exits and returns its
// exit status. Only pids returned by StartService or StopService on this
// handle can be collected; anything else yields -1.
func (r *RC) Waitpid(pid int) int {
	r.mu.Lock()
	cmd, ok := r.children[pid]
	delete(r.children, pid)
	r.mu.Unlock()
	if !ok {
		return -1
	}

	err := cmd.Wait()
	if err == nil {
		return 0
	}
	if exitErr, isExit := err.(*exec.ExitError); isExit {
		return exitErr.ExitCode()
	}
	return -1
}
