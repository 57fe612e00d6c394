//go:build linux

package rc

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
)

func TestServiceDaemonsCrashed(t *testing.T) {
	r := newTestRC(t)

	sleepBin, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("no sleep binary")
	}

	cmd := exec.Command(sleepBin, "60")
	if err := cmd.Start(); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = cmd.Process.Kill()
		_, _ = cmd.Process.Wait()
	}()

	pidfile := filepath.Join(t.TempDir(), "sleep.pid")
	if err := os.WriteFile(pidfile, []byte(strconv.Itoa(cmd.Process.Pid)+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := r.SetServiceDaemon("svc", sleepBin, "", pidfile, true); err != nil {
		t.Fatal(err)
	}

	if r.ServiceDaemonsCrashed("svc") {
		t.Error("daemon is alive; service must not read as crashed")
	}

	_ = cmd.Process.Kill()
	_, _ = cmd.Process.Wait()

	if !r.ServiceDaemonsCrashed("svc") {
		t.Error("daemon is gone; service must read as crashed")
	}
}

func TestServiceDaemonsCrashedNoRecords(t *testing.T) {
	r := newTestRC(t)

	if r.ServiceDaemonsCrashed("empty") {
		t.Error("a service with no daemon records cannot be crashed")
	}
}

func TestServiceDaemonsCrashedUnreadablePidfile(t *testing.T) {
	r := newTestRC(t)

	if err := r.SetServiceDaemon("svc", "/bin/whatever", "", "/nonexistent/pidfile", true); err != nil {
		t.Fatal(err)
	}
	if !r.ServiceDaemonsCrashed("svc") {
		t.Error("a missing pidfile means the daemon is gone")
	}
}

func TestServiceStateCrashed(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "svc")

	if err := r.MarkService("svc", StateStarted); err != nil {
		t.Fatal(err)
	}
	if err := r.SetServiceDaemon("svc", "/bin/whatever", "", "/nonexistent/pidfile", true); err != nil {
		t.Fatal(err)
	}
	if !r.ServiceState("svc", StateCrashed) {
		t.Error("crashed query should delegate to the daemon check")
	}
}
