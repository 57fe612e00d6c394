package rc

// Hook identifies a point at which the host's plugin callback is invoked.
// The numeric values are part of the persistence surface shared with
// existing plugins and must not change.
type Hook int

const (
	// HookRunlevelStopIn fires as a runlevel stop begins
	HookRunlevelStopIn Hook = 1
	// HookRunlevelStopOut fires after a runlevel stop completes
	HookRunlevelStopOut Hook = 4
	// HookRunlevelStartIn fires as a runlevel start begins
	HookRunlevelStartIn Hook = 5
	// HookRunlevelStartOut fires after a runlevel start completes
	HookRunlevelStartOut Hook = 8

	// HookAbort fires when an init script requests an abort
	HookAbort Hook = 99

	// HookServiceStopIn fires when a service stop is requested
	HookServiceStopIn Hook = 101
	// HookServiceStopNow fires when the stop actually begins
	HookServiceStopNow Hook = 102
	// HookServiceStopDone fires when the stop has finished
	HookServiceStopDone Hook = 103
	// HookServiceStopOut fires after stop bookkeeping completes
	HookServiceStopOut Hook = 104
	// HookServiceStartIn fires when a service start is requested
	HookServiceStartIn Hook = 105
	// HookServiceStartNow fires when the start actually begins
	HookServiceStartNow Hook = 106
	// HookServiceStartDone fires when the start has finished
	HookServiceStartDone Hook = 107
	// HookServiceStartOut fires after start bookkeeping completes
	HookServiceStartOut Hook = 108
)

// String returns the hook's conventional name.
func (h Hook) String() string {
	switch h {
	case HookRunlevelStopIn:
		return "runlevel_stop_in"
	case HookRunlevelStopOut:
		return "runlevel_stop_out"
	case HookRunlevelStartIn:
		return "runlevel_start_in"
	case HookRunlevelStartOut:
		return "runlevel_start_out"
	case HookAbort:
		return "abort"
	case HookServiceStopIn:
		return "service_stop_in"
	case HookServiceStopNow:
		return "service_stop_now"
	case HookServiceStopDone:
		return "service_stop_done"
	case HookServiceStopOut:
		return "service_stop_out"
	case HookServiceStartIn:
		return "service_start_in"
	case HookServiceStartNow:
		return "service_start_now"
	case HookServiceStartDone:
		return "service_start_done"
	case HookServiceStartOut:
		return "service_start_out"
	default:
		return "unknown"
	}
}
