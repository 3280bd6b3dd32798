package arbiter

import "github.com/frudas24/flashgestures/internal/gesture"

// ProcessZoom forwards ctrl+wheel to the browser so page zoom keeps working
// over a plugin. It reports whether the event was taken.
func ProcessZoom(fwd gesture.Forwarder, ev gesture.Event, target gesture.Window, ctrl bool) bool {
	if !ctrl || ev.Msg != gesture.MsgMouseWheel {
		return false
	}
	fwd.Forward(ev, target)
	return true
}
