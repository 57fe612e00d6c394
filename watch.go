//go:build linux || darwin

package rc

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
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

// WatchService observes the service's exclusive state through the state
// link directories and emits an event whenever it changes. Rapid
// transitions are debounced. The cleanup function must be called to stop
// the watcher; cancelling ctx stops it as well.
func (r *RC) WatchService(ctx context.Context, service string) (<-chan StateEvent, WatchCleanupFunc, error) {
	if !validName(service) {
		return nil, nil, &OpError{Op: OpWatch, Path: service, Err: ErrBadName}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, &OpError{Op: OpWatch, Path: service, Err: err}
	}
	for _, st := range exclusiveStates {
		dir := r.stateDir(st)
		if err := mkdirAll(dir); err != nil {
			_ = watcher.Close()
			return nil, nil, &OpError{Op: OpWatch, Path: dir, Err: err}
		}
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, nil, &OpError{Op: OpWatch, Path: dir, Err: err}
		}
	}

	ch := make(chan StateEvent, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	var mu sync.Mutex
	var debouncer *time.Timer
	last := r.exclusiveStateOf(service)

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	readAndSend := func() {
		if sctx.IsStopping() {
			return
		}
		current := r.exclusiveStateOf(service)

		mu.Lock()
		changed := current != last
		if changed {
			last = current
		}
		mu.Unlock()

		if changed && !sctx.IsStopping() {
			select {
			case ch <- StateEvent{Service: service, State: current}:
			case <-sctx.Stopping():
			}
		}
	}

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			mu.Lock()
			if debouncer != nil {
				debouncer.Stop()
			}
			mu.Unlock()
		})

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != service {
					continue
				}
				mu.Lock()
				if debouncer != nil {
					debouncer.Stop()
				}
				debouncer = time.AfterFunc(r.WatchDebounce, readAndSend)
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					select {
					case ch <- StateEvent{Service: service, Err: err}:
					case <-sctx.Stopping():
						return nil
					}
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
