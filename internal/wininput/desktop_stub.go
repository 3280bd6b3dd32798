//go:build !windows

// Package wininput exposes the Windows desktop primitives gesture handling needs.
package wininput

import "github.com/frudas24/flashgestures/internal/gesture"

// NoopDesktop is a placeholder desktop for non-Windows builds.
type NoopDesktop struct{}

// NewDesktop returns a non-functional desktop on non-Windows platforms.
func NewDesktop(pluginClasses []string, browserClass string, cacheSize int) (Desktop, error) {
	_ = pluginClasses
	_ = browserClass
	_ = cacheSize
	return &NoopDesktop{}, ErrUnsupported
}

// PluginWindow never finds a plugin.
func (n *NoopDesktop) PluginWindow(w gesture.Window, maxDepth int) (gesture.Window, bool) {
	_ = w
	_ = maxDepth
	return 0, false
}

// BrowserWindow never finds a browser.
func (n *NoopDesktop) BrowserWindow(plugin gesture.Window) (gesture.Window, bool) {
	_ = plugin
	return 0, false
}

// WindowThread returns 0.
func (n *NoopDesktop) WindowThread(w gesture.Window) uint32 {
	_ = w
	return 0
}

// Forward does nothing.
func (n *NoopDesktop) Forward(ev gesture.Event, target gesture.Window) {
	_ = ev
	_ = target
}

// Post does nothing.
func (n *NoopDesktop) Post(target gesture.Window, msg gesture.Msg, wParam, lParam uintptr) {
	_ = target
	_ = msg
	_ = wParam
	_ = lParam
}

// Focus does nothing.
func (n *NoopDesktop) Focus(w gesture.Window) {
	_ = w
}

// FocusedWindow returns 0.
func (n *NoopDesktop) FocusedWindow() gesture.Window {
	return 0
}

// CaptureWindow returns 0.
func (n *NoopDesktop) CaptureWindow() gesture.Window {
	return 0
}
