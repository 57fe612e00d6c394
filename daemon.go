package rc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
)

// DaemonRecord identifies a long-running child process a service started.
// Index is a 1-based ordinal assigned in insertion order and preserved
// through deletions, so holes are normal.
type DaemonRecord struct {
	// Exec is the path of the daemon executable
	Exec string
	// Name is the daemon's process name, when it differs from Exec
	Name string
	// Pidfile, when set, names the file holding the daemon's pid
	Pidfile string
	// UID is the real uid the record was created under
	UID int
	// Index is the record's ordinal within the service
	Index int
}

func (d *DaemonRecord) encode() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "exec=%s\n", d.Exec)
	if d.Name != "" {
		fmt.Fprintf(&b, "name=%s\n", d.Name)
	}
	if d.Pidfile != "" {
		fmt.Fprintf(&b, "pidfile=%s\n", d.Pidfile)
	}
	fmt.Fprintf(&b, "uid=%d\n", d.UID)
	return []byte(b.String())
}

func decodeDaemonRecord(data []byte, index int) *DaemonRecord {
	d := &DaemonRecord{Index: index}
	for _, line := range strings.Split(string(data), "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		switch key {
		case "exec":
			d.Exec = value
		case "name":
			d.Name = value
		case "pidfile":
			d.Pidfile = value
		case "uid":
			d.UID, _ = strconv.Atoi(value)
		}
	}
	return d
}

// ServiceDaemons returns the service's daemon records ordered by index.
func (r *RC) ServiceDaemons(service string) []*DaemonRecord {
	if !validName(service) {
		return nil
	}
	dir := r.daemonsDir(service)
	var indices []int
	for _, name := range lsDir(dir) {
		if idx, err := strconv.Atoi(name); err == nil && idx > 0 {
			indices = append(indices, idx)
		}
	}
	sort.Ints(indices)

	records := make([]*DaemonRecord, 0, len(indices))
	for _, idx := range indices {
		data, err := os.ReadFile(filepath.Join(dir, strconv.Itoa(idx)))
		if err != nil {
			continue
		}
		records = append(records, decodeDaemonRecord(data, idx))
	}
	return records
}

// SetServiceDaemon saves or removes the arguments used to find a running
// daemon. With started true a new record is created at the lowest free
// index. With started false the first record matching every supplied field
// is removed; empty fields match anything.
func (r *RC) SetServiceDaemon(service, execPath, name, pidfile string, started bool) error {
	if !validName(service) {
		return &OpError{Op: OpDaemon, Path: service, Err: ErrBadName}
	}

	if !started {
		for _, rec := range r.ServiceDaemons(service) {
			if execPath != "" && rec.Exec != execPath {
				continue
			}
			if name != "" && rec.Name != name {
				continue
			}
			if pidfile != "" && rec.Pidfile != pidfile {
				continue
			}
			path := filepath.Join(r.daemonsDir(service), strconv.Itoa(rec.Index))
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return &OpError{Op: OpDaemon, Path: path, Err: err}
			}
			return nil
		}
		return nil
	}

	dir := r.daemonsDir(service)
	if err := mkdirAll(dir); err != nil {
		return &OpError{Op: OpDaemon, Path: dir, Err: err}
	}

	used := make(map[int]bool)
	for _, rec := range r.ServiceDaemons(service) {
		used[rec.Index] = true
	}
	index := 1
	for used[index] {
		index++
	}

	rec := &DaemonRecord{
		Exec:    execPath,
		Name:    name,
		Pidfile: pidfile,
		UID:     os.Getuid(),
		Index:   index,
	}
	path := filepath.Join(dir, strconv.Itoa(index))
	if err := renameio.WriteFile(path, rec.encode(), FileMode); err != nil {
		return &OpError{Op: OpDaemon, Path: path, Err: err}
	}
	return nil
}

// ServiceStartedDaemon reports whether the service started a daemon with
// the given executable. A positive index restricts the check to that
// record.
func (r *RC) ServiceStartedDaemon(service, execPath string, index int) bool {
	for _, rec := range r.ServiceDaemons(service) {
		if index > 0 && rec.Index != index {
			continue
		}
		if rec.Exec == execPath {
			return true
		}
	}
	return false
}

// ClearServiceDaemons removes every daemon record for the service. Drivers
// call this when resetting a service to stopped.
func (r *RC) ClearServiceDaemons(service string) error {
	if !validName(service) {
		return &OpError{Op: OpDaemon, Path: service, Err: ErrBadName}
	}
	if err := rmDir(r.daemonsDir(service), true); err != nil {
		return &OpError{Op: OpDaemon, Path: service, Err: err}
	}
	return nil
}
