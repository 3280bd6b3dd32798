// Package arbiter decides per mouse message whether a gesture consumes it
// and where it is forwarded.
package arbiter

import "github.com/frudas24/flashgestures/internal/gesture"

// Notice reports a gesture milestone observed while arbitrating.
type Notice struct {
	Gesture gesture.Kind
	Result  gesture.Result
	Window  gesture.Window
}

// Option configures an Arbiter.
type Option func(*Arbiter)

// WithNotify registers a callback for trigger, end and replay milestones.
// A cancel is reported only when withheld events went back to the origin.
// The callback runs on the arbitrating thread and must not block.
func WithNotify(fn func(Notice)) Option {
	return func(a *Arbiter) {
		a.notify = fn
	}
}

// Arbiter resolves conflicts between the handlers of a registry.
type Arbiter struct {
	fwd    gesture.Forwarder
	notify func(Notice)
}

// New returns an arbiter that forwards through fwd.
func New(fwd gesture.Forwarder, opts ...Option) *Arbiter {
	a := &Arbiter{fwd: fwd}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ProcessMouse feeds ev to the handlers of reg and reports whether the host
// should swallow it. target is the browser window that owns gestures.
func (a *Arbiter) ProcessMouse(reg *gesture.Registry, ev gesture.Event, target gesture.Window) bool {
	// A triggered gesture owns every message until it ends.
	if h := reg.Triggered(); h != nil {
		if res := h.Handle(ev); res == gesture.GestureEnd {
			reg.ResetAll()
			a.emit(h.Kind(), res, ev.Window)
		}
		a.fwd.Forward(ev, target)
		return true
	}

	shouldForward := ev.Plain()
	shouldSwallow := false
	for _, h := range reg.Handlers() {
		res := h.Handle(ev)
		shouldSwallow = shouldSwallow || h.ShouldSwallow(res)
		if res == gesture.Triggered {
			h.ForwardAllTarget(a.fwd, ev.Window, target)
			a.emit(h.Kind(), res, ev.Window)
			shouldForward = false
			break
		}
		if res == gesture.Canceled && reg.Idle() {
			replayed := h.ForwardAllOrigin(a.fwd, ev.Window)
			reg.ResetAll()
			if replayed {
				a.emit(h.Kind(), res, ev.Window)
			}
		}
	}
	if shouldForward {
		a.fwd.Forward(ev, target)
	}
	return shouldSwallow
}

// emit delivers a notice when a callback is registered.
func (a *Arbiter) emit(kind gesture.Kind, res gesture.Result, window gesture.Window) {
	if a.notify != nil {
		a.notify(Notice{Gesture: kind, Result: res, Window: window})
	}
}
