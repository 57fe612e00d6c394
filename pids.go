//go:build linux

package rc

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const procDir = "/proc"

// FindPids scans the process table and returns the pids matching every
// supplied predicate. All predicates are optional: pass "" for exec and
// cmd, 0 for uid, 0 for pid. A non-zero pid overrides every other filter;
// when both exec and cmd are given, exec is ignored; uid filters on the
// real uid; exec matches the executable path (argv[0]); cmd matches the
// reported process name.
func FindPids(execPath, cmd string, uid, pid int) []int {
	if pid > 0 {
		if exists(filepath.Join(procDir, strconv.Itoa(pid))) {
			return []int{pid}
		}
		return nil
	}

	entries, err := os.ReadDir(procDir)
	if err != nil {
		return nil
	}

	var pids []int
	for _, e := range entries {
		p, err := strconv.Atoi(e.Name())
		if err != nil || p <= 0 {
			continue
		}
		if uid > 0 && procUID(p) != uid {
			continue
		}
		switch {
		case cmd != "":
			if procName(p) != cmd {
				continue
			}
		case execPath != "":
			if procArgv0(p) != execPath {
				continue
			}
		}
		pids = append(pids, p)
	}
	return pids
}

// procUID returns the real uid of the process, or -1.
func procUID(pid int) int {
	data, err := os.ReadFile(filepath.Join(procDir, strconv.Itoa(pid), "status"))
	if err != nil {
		return -1
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(line[len("Uid:"):])
		if len(fields) == 0 {
			return -1
		}
		uid, err := strconv.Atoi(fields[0])
		if err != nil {
			return -1
		}
		return uid
	}
	return -1
}

// procName returns the process name (the comm field), or "".
func procName(pid int) string {
	data, err := os.ReadFile(filepath.Join(procDir, strconv.Itoa(pid), "stat"))
	if err != nil {
		return ""
	}
	// comm is parenthesized and may itself contain spaces.
	open := strings.IndexByte(string(data), '(')
	closing := strings.LastIndexByte(string(data), ')')
	if open < 0 || closing < open {
		return ""
	}
	return string(data[open+1 : closing])
}

// procArgv0 returns the first cmdline argument, or "".
func procArgv0(pid int) string {
	data, err := os.ReadFile(filepath.Join(procDir, strconv.Itoa(pid), "cmdline"))
	if err != nil || len(data) == 0 {
		return ""
	}
	if idx := strings.IndexByte(string(data), 0); idx >= 0 {
		return string(data[:idx])
	}
	return string(data)
}
