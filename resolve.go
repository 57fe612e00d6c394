package rc

import "path/filepath"

// initScript is the canonical system path of a service's script, whether or
// not it exists.
func (r *RC) initScript(service string) string {
	return filepath.Join(r.InitDir, service)
}

// ResolveService maps a service name to the absolute path of its executable
// init script. A user-local init directory, when configured, is preferred
// over the system one. A name containing a path separator is treated as a
// path and only checked for being an executable file.
func (r *RC) ResolveService(service string) (string, error) {
	if service == "" {
		return "", &OpError{Op: OpResolve, Path: service, Err: ErrBadName}
	}

	if filepath.Base(service) != service {
		abs, err := filepath.Abs(service)
		if err != nil {
			return "", &OpError{Op: OpResolve, Path: service, Err: err}
		}
		if isExec(abs) {
			return abs, nil
		}
		return "", &OpError{Op: OpResolve, Path: abs, Err: ErrNotFound}
	}

	if r.LocalInitDir != "" {
		if path := filepath.Join(r.LocalInitDir, service); isExec(path) {
			return path, nil
		}
	}
	if path := r.initScript(service); isExec(path) {
		return path, nil
	}
	return "", &OpError{Op: OpResolve, Path: service, Err: ErrNotFound}
}

// ServiceExists reports whether the service name resolves to an executable
// init script.
func (r *RC) ServiceExists(service string) bool {
	_, err := r.ResolveService(service)
	return err == nil
}
