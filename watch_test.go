//go:build linux

package rc

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatchServiceStateChange(t *testing.T) {
	r := newTestRC(t, WithWatchDebounce(5*time.Millisecond))
	installService(t, r, "svc")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup, err := r.WatchService(ctx, "svc")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cleanup() }()

	if err := r.MarkService("svc", StateStarting); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Err != nil {
			t.Fatalf("event error: %v", ev.Err)
		}
		if ev.State != StateStarting {
			t.Errorf("event state = %v, want starting", ev.State)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the state change")
	}

	if err := r.MarkService("svc", StateStarted); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		if ev.Err != nil {
			t.Fatalf("event error: %v", ev.Err)
		}
		if ev.State != StateStarted {
			t.Errorf("event state = %v, want started", ev.State)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the second change")
	}
}

func TestWatchServiceIgnoresOtherServices(t *testing.T) {
	r := newTestRC(t, WithWatchDebounce(5*time.Millisecond))
	installService(t, r, "svc")
	installService(t, r, "noise")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup, err := r.WatchService(ctx, "svc")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = cleanup() }()

	if err := r.MarkService("noise", StateStarted); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-events:
		t.Errorf("unexpected event for another service: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchServiceCleanup(t *testing.T) {
	r := newTestRC(t)
	installService(t, r, "svc")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, cleanup, err := r.WatchService(ctx, "svc")
	if err != nil {
		t.Fatal(err)
	}
	if err := cleanup(); err != nil {
		t.Errorf("cleanup: %v", err)
	}
}
