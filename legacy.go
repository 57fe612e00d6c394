package rc

// Package-level wrappers over the Default handle, kept for callers written
// against the historical process-wide API. New code should hold its own RC.

// ResolveService resolves a service name using the Default handle.
func ResolveService(service string) (string, error) {
	return Default.ResolveService(service)
}

// ServiceExists reports service existence using the Default handle.
func ServiceExists(service string) bool {
	return Default.ServiceExists(service)
}

// ServiceState queries a service state using the Default handle.
func ServiceState(service string, st State) bool {
	return Default.ServiceState(service, st)
}

// MarkService changes a service state using the Default handle.
func MarkService(service string, st State) error {
	return Default.MarkService(service, st)
}

// WaitService waits on a transition using the Default handle.
func WaitService(service string) bool {
	return Default.WaitService(service)
}

// Runlevel returns the active runlevel of the Default handle.
func Runlevel() string {
	return Default.Runlevel()
}

// SetRunlevel stores the active runlevel on the Default handle.
func SetRunlevel(level string) error {
	return Default.SetRunlevel(level)
}

// ServiceOption reads a persistent option using the Default handle.
func ServiceOption(service, option string) (string, bool) {
	return Default.ServiceOption(service, option)
}

// SetServiceOption saves a persistent option using the Default handle.
func SetServiceOption(service, option, value string) error {
	return Default.SetServiceOption(service, option, value)
}
