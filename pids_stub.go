//go:build !linux

package rc

// FindPids requires a /proc process table and always returns nil on this
// platform.
func FindPids(execPath, cmd string, uid, pid int) []int {
	return nil
}
