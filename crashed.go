package rc

import (
	"os"
	"strconv"
	"strings"
)

// ServiceDaemonsCrashed reports whether any daemon the service started is
// no longer running. Each record is checked against the process table with
// the exec and name it was saved with, under the uid that started it; a
// pidfile additionally pins the match to that pid. A service with no
// records cannot be crashed.
func (r *RC) ServiceDaemonsCrashed(service string) bool {
	if !validName(service) {
		return false
	}
	for _, rec := range r.ServiceDaemons(service) {
		pid := 0
		if rec.Pidfile != "" {
			var ok bool
			if pid, ok = readPidfile(rec.Pidfile); !ok {
				// The daemon owns its pidfile; an unreadable one means
				// the daemon is gone.
				return true
			}
		}
		if len(FindPids(rec.Exec, rec.Name, rec.UID, pid)) == 0 {
			return true
		}
	}
	return false
}

// readPidfile parses the leading pid from a pidfile. Extra lines after the
// pid are tolerated.
func readPidfile(path string) (int, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, false
	}
	content := strings.TrimSpace(string(data))
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		content = content[:idx]
	}
	pid, err := strconv.Atoi(strings.TrimSpace(content))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
