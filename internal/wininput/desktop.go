// Package wininput exposes the Windows desktop primitives gesture handling needs.
package wininput

import (
	"errors"

	"github.com/frudas24/flashgestures/internal/gesture"
)

// ErrUnsupported indicates WinAPI window access is not available.
var ErrUnsupported = errors.New("wininput is only supported on Windows")

// Modifiers is the keyboard modifier state held while a key event arrives.
type Modifiers struct {
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Desktop defines the window and message operations used by the hook layer.
type Desktop interface {
	// PluginWindow walks up from w at most maxDepth parents looking for a
	// plugin window class.
	PluginWindow(w gesture.Window, maxDepth int) (gesture.Window, bool)
	// BrowserWindow returns the top-level browser window hosting plugin.
	BrowserWindow(plugin gesture.Window) (gesture.Window, bool)
	WindowThread(w gesture.Window) uint32
	Forward(ev gesture.Event, target gesture.Window)
	Post(target gesture.Window, msg gesture.Msg, wParam, lParam uintptr)
	Focus(w gesture.Window)
	FocusedWindow() gesture.Window
	// CaptureWindow returns the foreground window holding mouse capture, or 0.
	CaptureWindow() gesture.Window
}

// DefaultPluginClasses are the window classes that host plugin content.
var DefaultPluginClasses = []string{"GeckoPluginWindow", "SunAwtFrame", "Edit"}

// DefaultBrowserClass is the class of the browser's top-level window.
const DefaultBrowserClass = "MozillaWindowClass"

// browserSearchLevels bounds the parent walk from a plugin to its top-level window.
const browserSearchLevels = 5
