package gesture

import "log"

// MoveThreshold is the per-axis distance in pixels a press may drift
// before it counts as movement.
const MoveThreshold = 10

// maxPending bounds the replay buffer; further jitter moves are dropped.
const maxPending = 256

// Forwarder redispatches an event to a specific window.
type Forwarder interface {
	Forward(ev Event, target Window)
}

// scratch is the per-handler data a step function reads and rewrites.
type scratch struct {
	state  State
	startX int
	startY int
	left   bool
}

// stepFunc advances one recognizer by a single event.
type stepFunc func(s scratch, ev Event) (scratch, Result)

// policy bundles the behavior that differs between kinds.
type policy struct {
	step         stepFunc
	swallow      func(s scratch, r Result) bool
	replayOrigin func(s scratch) bool
}

var policies = map[Kind]policy{
	Trace:  {step: stepTrace},
	Rocker: {step: stepRocker, swallow: rockerSwallow, replayOrigin: rockerReplayOrigin},
	Wheel:  {step: stepWheel},
}

// Handler runs one recognizer and keeps the events it withheld so they can
// be replayed once the gesture resolves.
type Handler struct {
	kind    Kind
	s       scratch
	pending []Event
}

// NewHandler returns an idle handler for kind.
func NewHandler(kind Kind) *Handler {
	return &Handler{kind: kind}
}

// Kind returns the recognizer this handler runs.
func (h *Handler) Kind() Kind {
	return h.kind
}

// State returns the current lifecycle state.
func (h *Handler) State() State {
	return h.s.state
}

// Left reports the polarity captured at initiation. Only rocker sets it.
func (h *Handler) Left() bool {
	return h.s.left
}

// Pending returns a copy of the withheld events.
func (h *Handler) Pending() []Event {
	out := make([]Event, len(h.pending))
	copy(out, h.pending)
	return out
}

// Handle feeds ev to the recognizer and returns the outcome.
func (h *Handler) Handle(ev Event) Result {
	p, ok := policies[h.kind]
	if !ok {
		return NotHandled
	}
	prev := h.s.state
	next, res := p.step(h.s, ev)
	if res == Initiated {
		h.pending = h.pending[:0]
	}
	h.s = next

	if prev != StateTriggered {
		switch res {
		case Initiated, Triggered, Discarded:
			h.pending = append(h.pending, ev)
		case Swallowed:
			if len(h.pending) < maxPending {
				h.pending = append(h.pending, ev)
			}
		}
	}

	if prev != next.state && debugEnabled() {
		log.Printf("gesture: %s %s -> %s (%s, msg 0x%x)", h.kind, prev, next.state, res, uint32(ev.Msg))
	}
	return res
}

// Reset returns the handler to StateNone and drops its scratch data.
func (h *Handler) Reset() {
	h.s = scratch{}
	h.pending = nil
}

// ShouldSwallow reports whether the event that produced r should be kept
// from its destination.
func (h *Handler) ShouldSwallow(r Result) bool {
	if p := policies[h.kind]; p.swallow != nil {
		return p.swallow(h.s, r)
	}
	return defaultSwallow(r)
}

// ForwardAllTarget replays the withheld events to target on behalf of origin.
func (h *Handler) ForwardAllTarget(f Forwarder, origin, target Window) {
	h.replay(f, origin, target)
}

// ForwardAllOrigin replays the withheld events back to origin. It reports
// false when the kind's policy kept the events from being replayed.
func (h *Handler) ForwardAllOrigin(f Forwarder, origin Window) bool {
	if p := policies[h.kind]; p.replayOrigin != nil && !p.replayOrigin(h.s) {
		h.pending = h.pending[:0]
		return false
	}
	h.replay(f, origin, origin)
	return true
}

// replay sends every pending event to target and empties the buffer.
func (h *Handler) replay(f Forwarder, origin, target Window) {
	for _, ev := range h.pending {
		ev.Window = origin
		f.Forward(ev, target)
	}
	h.pending = h.pending[:0]
}

// defaultSwallow withholds every event a gesture is still consuming.
func defaultSwallow(r Result) bool {
	switch r {
	case Initiated, Triggered, Swallowed, Discarded:
		return true
	default:
		return false
	}
}
