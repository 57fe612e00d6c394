package rc

import "fmt"

// WriteEnviron publishes an environment variable through the plugin
// environment handle as a NUL-terminated KEY=VALUE record. Plugins call
// this to pass variables back to the driver; the library itself never
// reads the stream.
func (r *RC) WriteEnviron(key, value string) error {
	if r.EnvironFD == nil {
		return &OpError{Op: OpUnknown, Path: key, Err: ErrNotFound}
	}
	if _, err := fmt.Fprintf(r.EnvironFD, "%s=%s\x00", key, value); err != nil {
		return &OpError{Op: OpUnknown, Path: key, Err: err}
	}
	return nil
}
