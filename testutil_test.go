package rc

import (
	"os"
	"path/filepath"
	"testing"
)

// newTestRC returns a handle over a fresh tree in a temp directory.
func newTestRC(t *testing.T, opts ...RCOption) *RC {
	t.Helper()

	r, err := New(t.TempDir(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := r.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	return r
}

// writeScript installs an init script that prints the given dependency
// lines for the depend verb and exits zero for everything else.
func writeScript(t *testing.T, dir, name string, dependLines ...string) string {
	t.Helper()

	body := "#!/bin/sh\nif [ \"$1\" = depend ]; then\n:\n"
	for _, line := range dependLines {
		body += "echo \"" + line + "\"\n"
	}
	body += "fi\nexit 0\n"

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing script %s: %v", name, err)
	}
	return path
}

// installService writes a script into the handle's init directory.
func installService(t *testing.T, r *RC, name string, dependLines ...string) string {
	t.Helper()
	return writeScript(t, r.InitDir, name, dependLines...)
}

// addToRunlevel creates the runlevel if needed and adds the services.
func addToRunlevel(t *testing.T, r *RC, level string, services ...string) {
	t.Helper()

	if err := r.AddRunlevel(level); err != nil {
		t.Fatalf("AddRunlevel(%s): %v", level, err)
	}
	for _, s := range services {
		if err := r.ServiceAdd(level, s); err != nil {
			t.Fatalf("ServiceAdd(%s, %s): %v", level, s, err)
		}
	}
}

// writeBrokenScript installs a script whose depend action exits non-zero.
func writeBrokenScript(t *testing.T, r *RC, name string) {
	t.Helper()

	body := "#!/bin/sh\nexit 1\n"
	path := filepath.Join(r.InitDir, name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("writing script %s: %v", name, err)
	}
}

// buildTree builds the dependency tree and fails the test on parse
// warnings.
func buildTree(t *testing.T, r *RC) *Deptree {
	t.Helper()

	tree, err := r.BuildDeptree()
	if err != nil {
		t.Fatalf("BuildDeptree: %v", err)
	}
	return tree
}
