package rc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveService(t *testing.T) {
	r := newTestRC(t)
	path := installService(t, r, "sshd")

	got, err := r.ResolveService("sshd")
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("ResolveService = %s, want %s", got, path)
	}
	if !r.ServiceExists("sshd") {
		t.Error("ServiceExists = false for an installed service")
	}
}

func TestResolveServiceMissing(t *testing.T) {
	r := newTestRC(t)

	_, err := r.ResolveService("ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if r.ServiceExists("ghost") {
		t.Error("ServiceExists = true for a missing service")
	}
}

func TestResolveServiceNotExecutable(t *testing.T) {
	r := newTestRC(t)

	path := filepath.Join(r.InitDir, "plain")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if r.ServiceExists("plain") {
		t.Error("a non-executable file must not resolve")
	}
}

func TestResolveServicePrefersLocal(t *testing.T) {
	local := t.TempDir()
	r := newTestRC(t, WithLocalInitDir(local))

	system := installService(t, r, "sshd")
	override := writeScript(t, local, "sshd")

	got, err := r.ResolveService("sshd")
	if err != nil {
		t.Fatal(err)
	}
	if got != override {
		t.Errorf("ResolveService = %s, want local %s (system %s)", got, override, system)
	}
}

func TestResolveServiceAbsolutePath(t *testing.T) {
	r := newTestRC(t)
	path := installService(t, r, "sshd")

	got, err := r.ResolveService(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("ResolveService(abs) = %s, want %s", got, path)
	}
}
