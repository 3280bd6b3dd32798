package testutil

import (
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/wininput"
)

// Call records a single desktop operation.
type Call struct {
	Name   string
	Target gesture.Window
	Event  gesture.Event
	Msg    gesture.Msg
}

// FakeDesktop implements wininput.Desktop and records calls for tests.
type FakeDesktop struct {
	// Plugins maps a window to the plugin window found above it.
	Plugins map[gesture.Window]gesture.Window
	// Browsers maps a plugin window to its browser window.
	Browsers map[gesture.Window]gesture.Window
	// Threads maps a window to its owning thread.
	Threads map[gesture.Window]uint32
	Focused gesture.Window
	Capture gesture.Window
	Calls   []Call
}

// Ensure FakeDesktop implements the interface.
var _ wininput.Desktop = (*FakeDesktop)(nil)

// NewFakeDesktop returns a desktop with one plugin window inside one browser.
func NewFakeDesktop(plugin, browser gesture.Window) *FakeDesktop {
	return &FakeDesktop{
		Plugins:  map[gesture.Window]gesture.Window{plugin: plugin},
		Browsers: map[gesture.Window]gesture.Window{plugin: browser},
		Threads:  map[gesture.Window]uint32{},
	}
}

// PluginWindow looks up the configured plugin mapping.
func (f *FakeDesktop) PluginWindow(w gesture.Window, maxDepth int) (gesture.Window, bool) {
	_ = maxDepth
	p, ok := f.Plugins[w]
	return p, ok
}

// BrowserWindow looks up the configured browser mapping.
func (f *FakeDesktop) BrowserWindow(plugin gesture.Window) (gesture.Window, bool) {
	b, ok := f.Browsers[plugin]
	return b, ok
}

// WindowThread looks up the configured thread, defaulting to 1.
func (f *FakeDesktop) WindowThread(w gesture.Window) uint32 {
	if id, ok := f.Threads[w]; ok {
		return id
	}
	return 1
}

// Forward records a forwarded event.
func (f *FakeDesktop) Forward(ev gesture.Event, target gesture.Window) {
	f.Calls = append(f.Calls, Call{Name: "Forward", Target: target, Event: ev, Msg: ev.Msg})
}

// Post records a posted message.
func (f *FakeDesktop) Post(target gesture.Window, msg gesture.Msg, wParam, lParam uintptr) {
	f.Calls = append(f.Calls, Call{
		Name:   "Post",
		Target: target,
		Event:  gesture.Event{Msg: msg, WParam: wParam, LParam: lParam},
		Msg:    msg,
	})
}

// Focus records a focus change.
func (f *FakeDesktop) Focus(w gesture.Window) {
	f.Focused = w
	f.Calls = append(f.Calls, Call{Name: "Focus", Target: w})
}

// FocusedWindow returns the recorded focus.
func (f *FakeDesktop) FocusedWindow() gesture.Window {
	return f.Focused
}

// CaptureWindow returns the configured capture window.
func (f *FakeDesktop) CaptureWindow() gesture.Window {
	return f.Capture
}

// Named returns the recorded calls with the given name.
func (f *FakeDesktop) Named(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
