//go:build linux

package rc

import (
	"os"
	"testing"
)

func TestFindPidsByPid(t *testing.T) {
	self := os.Getpid()

	got := FindPids("", "", 0, self)
	if len(got) != 1 || got[0] != self {
		t.Errorf("FindPids(pid=%d) = %v, want [%d]", self, got, self)
	}
}

func TestFindPidsByPidMissing(t *testing.T) {
	// Pid 1 always exists; an absurdly large one does not.
	if got := FindPids("", "", 0, 1<<30); len(got) != 0 {
		t.Errorf("FindPids(bogus pid) = %v, want []", got)
	}
}

func TestFindPidsByCmd(t *testing.T) {
	self := os.Getpid()
	comm := procName(self)
	if comm == "" {
		t.Skip("cannot read own comm")
	}

	got := FindPids("", comm, 0, 0)
	found := false
	for _, pid := range got {
		if pid == self {
			found = true
		}
	}
	if !found {
		t.Errorf("FindPids(cmd=%s) = %v, missing self %d", comm, got, self)
	}
}

func TestFindPidsCmdBeatsExec(t *testing.T) {
	self := os.Getpid()
	comm := procName(self)
	if comm == "" {
		t.Skip("cannot read own comm")
	}

	// A nonsense exec must be ignored when cmd is also given.
	got := FindPids("/nonexistent/bin", comm, 0, 0)
	found := false
	for _, pid := range got {
		if pid == self {
			found = true
		}
	}
	if !found {
		t.Errorf("exec should be ignored when cmd is given; got %v", got)
	}
}

func TestFindPidsNoMatch(t *testing.T) {
	if got := FindPids("", "no-such-process-name", 0, 0); len(got) != 0 {
		t.Errorf("FindPids(bogus cmd) = %v, want []", got)
	}
}
