package rc

import (
	"os"
	"testing"
	"time"
)

func TestDeptreeCacheRoundTrip(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")
	installService(t, r, "sshd", "ineed net", "iuse logger", "iprovide remote-shell")
	installService(t, r, "logger", "ibefore sshd")

	built := buildTree(t, r)
	if err := r.SaveDeptree(built); err != nil {
		t.Fatal(err)
	}
	loaded, err := r.LoadDeptree()
	if err != nil {
		t.Fatal(err)
	}

	if !built.Equal(loaded) {
		t.Error("loaded tree differs structurally from the built one")
	}
}

func TestUpdateDeptreeStale(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")

	updated, err := r.UpdateDeptree(false)
	if err != nil {
		t.Fatal(err)
	}
	if !updated {
		t.Fatal("first update must build the cache")
	}

	// Nothing changed; the cache is current.
	updated, err = r.UpdateDeptree(false)
	if err != nil {
		t.Fatal(err)
	}
	if updated {
		t.Error("update rebuilt a current cache")
	}

	// Age the cache behind the scripts.
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(r.deptreePath(), old, old); err != nil {
		t.Fatal(err)
	}
	updated, err = r.UpdateDeptree(false)
	if err != nil {
		t.Fatal(err)
	}
	if !updated {
		t.Error("update ignored a stale cache")
	}
}

func TestUpdateDeptreeForce(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "net")

	if _, err := r.UpdateDeptree(true); err != nil {
		t.Fatal(err)
	}
	updated, err := r.UpdateDeptree(true)
	if err != nil {
		t.Fatal(err)
	}
	if !updated {
		t.Error("force must always rebuild")
	}
}

func TestLoadDeptreeMissing(t *testing.T) {
	r := newTestRC(t)

	if _, err := r.LoadDeptree(); err == nil {
		t.Error("loading a missing cache should fail")
	}
}
