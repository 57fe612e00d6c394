// Package rc provides a native Go library for the service-management core
// of an init system: resolving init scripts, tracking per-service lifecycle
// state on the filesystem, and computing dependency-correct start/stop
// orders for runlevel changes.
//
// All durable state lives under a single root directory as symlinks and
// small files, so any number of processes may observe and mutate it
// concurrently. The RC type is the entry point:
//
//	r, err := rc.New("/var/lib/rc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Mark a service as starting (acquires its transition lock)
//	err = r.MarkService("sshd", rc.StateStarting)
//
//	// Query state
//	if r.ServiceState("sshd", rc.StateStarted) {
//	    fmt.Println("sshd is up")
//	}
//
// # Dependency ordering
//
// Init scripts declare their relationships by emitting lines such as
// "ineed net" when run with the depend verb. The library parses these into
// a Deptree, caches it on disk, and answers ordering queries:
//
//	tree, err := r.LoadDeptree()
//	order, err := r.OrderServices(tree, "default", rc.DepStart|rc.DepTrace)
//
// The returned sequence stops services before it starts any, stops in
// reverse dependency order, and starts a service only after everything it
// needs.
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - The filesystem as the single source of truth (no in-memory caches
//     that can drift between processes)
//   - Atomic state transitions observable from any process
//   - Advisory file locks that cannot outlive a crashed holder
//   - Explicit, name-keyed dependency data that serializes trivially
//
// Drivers (the runlevel-change tool, the init-script interpreter) sit on
// top of this package; they own policy, the library owns mechanism.
package rc
