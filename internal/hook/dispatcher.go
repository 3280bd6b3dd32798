// Package hook routes OS input messages through gesture recognition, key
// filtering and zoom forwarding.
package hook

import (
	"sync"

	"github.com/frudas24/flashgestures/internal/arbiter"
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/keyfilter"
	"github.com/frudas24/flashgestures/internal/wininput"
)

// DefaultSearchDepth bounds the parent walk when looking for a plugin window.
const DefaultSearchDepth = 5

// threadState is the per-thread recognition state. Only its owning thread
// touches it.
type threadState struct {
	reg  *gesture.Registry
	keys keyfilter.Forwarder
	busy bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithKinds enables only the given gesture kinds. An empty list disables
// mouse gestures.
func WithKinds(kinds ...gesture.Kind) Option {
	return func(d *Dispatcher) {
		d.kinds = append([]gesture.Kind(nil), kinds...)
	}
}

// WithSearchDepth sets how many parents are walked looking for a plugin.
func WithSearchDepth(depth int) Option {
	return func(d *Dispatcher) {
		if depth > 0 {
			d.depth = depth
		}
	}
}

// WithZoom toggles ctrl+wheel forwarding to the browser.
func WithZoom(on bool) Option {
	return func(d *Dispatcher) {
		d.zoom = on
	}
}

// WithKeys toggles browser shortcut forwarding.
func WithKeys(on bool) Option {
	return func(d *Dispatcher) {
		d.keys = on
	}
}

// WithNotify registers a callback for gesture milestones.
func WithNotify(fn func(arbiter.Notice)) Option {
	return func(d *Dispatcher) {
		d.notify = fn
	}
}

// Dispatcher owns one registry per OS thread and decides, per message,
// whether the host swallows it.
type Dispatcher struct {
	desktop wininput.Desktop
	arb     *arbiter.Arbiter
	depth   int
	zoom    bool
	keys    bool
	notify  func(arbiter.Notice)

	mu      sync.Mutex
	kinds   []gesture.Kind
	threads map[uint32]*threadState
	// anchor is the window an unfinished gesture started in, owned by
	// anchorThread. Zero when every thread is idle.
	anchor       gesture.Window
	anchorThread uint32
}

// NewDispatcher returns a dispatcher operating on desktop.
func NewDispatcher(desktop wininput.Desktop, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		desktop: desktop,
		depth:   DefaultSearchDepth,
		zoom:    true,
		keys:    true,
		kinds:   append([]gesture.Kind(nil), gesture.Priority...),
		threads: make(map[uint32]*threadState),
	}
	for _, opt := range opts {
		opt(d)
	}
	var arbOpts []arbiter.Option
	if d.notify != nil {
		arbOpts = append(arbOpts, arbiter.WithNotify(d.notify))
	}
	d.arb = arbiter.New(desktop, arbOpts...)
	return d
}

// Target picks the window a mouse message at under is attributed to. The
// window an unfinished gesture started in wins so the gesture still sees its
// closing release after the cursor leaves the plugin. Otherwise the window
// holding mouse capture wins over the window under the cursor.
func (d *Dispatcher) Target(under gesture.Window) gesture.Window {
	d.mu.Lock()
	anchor := d.anchor
	d.mu.Unlock()
	if anchor != 0 {
		return anchor
	}
	if c := d.desktop.CaptureWindow(); c != 0 {
		return c
	}
	return under
}

// Dispatch processes ev delivered on thread and reports whether the host
// should swallow it. Messages outside plugin windows always pass.
func (d *Dispatcher) Dispatch(thread uint32, ev gesture.Event) bool {
	if ev.Window == 0 || (!ev.Msg.IsMouse() && !ev.Msg.IsKey()) {
		return false
	}
	plugin, ok := d.desktop.PluginWindow(ev.Window, d.depth)
	if !ok {
		return false
	}
	browser, ok := d.desktop.BrowserWindow(plugin)
	if !ok {
		return false
	}

	ts, kinds := d.state(thread)
	if ts.busy {
		return false
	}
	ts.busy = true
	defer func() { ts.busy = false }()

	if ev.Msg.IsKey() {
		if !d.keys || !keyfilter.Handles(ev.Msg) {
			return false
		}
		return ts.keys.Process(d.desktop, browser, ev, keyModifiers(ev.Keys))
	}

	if len(kinds) > 0 {
		swallow := d.arb.ProcessMouse(ts.reg, ev, browser)
		d.track(thread, ev.Window, ts.reg.Idle())
		if swallow {
			return true
		}
	}
	if d.zoom {
		return arbiter.ProcessZoom(d.desktop, ev, browser, ev.Keys.Has(gesture.KeyControl))
	}
	return false
}

// state returns the thread's state, creating it on first use.
func (d *Dispatcher) state(thread uint32) (*threadState, []gesture.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ts, ok := d.threads[thread]
	if !ok {
		ts = &threadState{reg: gesture.NewRegistry(d.kinds...)}
		if len(d.kinds) == 0 {
			ts.reg = &gesture.Registry{}
		}
		d.threads[thread] = ts
	}
	return ts, d.kinds
}

// track anchors an unfinished gesture to window, or releases the anchor once
// the owning thread is idle again.
func (d *Dispatcher) track(thread uint32, window gesture.Window, idle bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch {
	case !idle:
		d.anchor, d.anchorThread = window, thread
	case d.anchorThread == thread:
		d.anchor, d.anchorThread = 0, 0
	}
}

// Threads returns how many threads currently hold state.
func (d *Dispatcher) Threads() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.threads)
}

// Kinds returns the enabled gesture kinds.
func (d *Dispatcher) Kinds() []gesture.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]gesture.Kind(nil), d.kinds...)
}

// Reset drops every thread's state. Threads start from idle on their next
// message.
func (d *Dispatcher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.threads = make(map[uint32]*threadState)
	d.anchor, d.anchorThread = 0, 0
}

// SetKinds replaces the enabled gesture kinds and drops every thread's state.
func (d *Dispatcher) SetKinds(kinds []gesture.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.kinds = append([]gesture.Kind(nil), kinds...)
	d.threads = make(map[uint32]*threadState)
	d.anchor, d.anchorThread = 0, 0
}
