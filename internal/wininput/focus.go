package wininput

import (
	"sync"

	"github.com/frudas24/flashgestures/internal/gesture"
)

// FocusKeeper remembers a focused window so it can be restored after the
// browser steals focus.
type FocusKeeper struct {
	mu      sync.Mutex
	desktop Desktop
	saved   gesture.Window
}

// NewFocusKeeper returns a keeper backed by desktop.
func NewFocusKeeper(desktop Desktop) *FocusKeeper {
	return &FocusKeeper{desktop: desktop}
}

// Record stores the currently focused window and reports whether one was found.
func (f *FocusKeeper) Record() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = f.desktop.FocusedWindow()
	return f.saved != 0
}

// Restore refocuses the recorded window once and reports whether it did.
func (f *FocusKeeper) Restore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saved == 0 {
		return false
	}
	f.desktop.Focus(f.saved)
	f.saved = 0
	return true
}
