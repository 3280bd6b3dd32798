package gesture

import "sync/atomic"

// debugTrace controls whether state transitions are logged.
var debugTrace atomic.Bool

// SetDebugLogging enables/disables verbose gesture transition logs.
func SetDebugLogging(enabled bool) {
	debugTrace.Store(enabled)
}

// debugEnabled reports whether transition logs are enabled.
func debugEnabled() bool {
	return debugTrace.Load()
}
