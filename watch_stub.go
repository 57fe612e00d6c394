//go:build !linux && !darwin

package rc

import (
	"context"
	"errors"
)

// StateEvent reports a change to a service's exclusive state.
type StateEvent struct {
	// Service is the service name
	Service string
	// State is the exclusive state after the change
	State State
	// Err carries watcher failures; State is meaningless when set
	Err error
}

// WatchCleanupFunc releases a watcher's resources.
type WatchCleanupFunc func() error

// WatchService is unsupported on this platform.
func (r *RC) WatchService(ctx context.Context, service string) (<-chan StateEvent, WatchCleanupFunc, error) {
	return nil, nil, errors.New("rc: watch not supported on this platform")
}
