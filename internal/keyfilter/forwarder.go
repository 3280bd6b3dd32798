package keyfilter

import (
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/wininput"
)

// Sender delivers keystrokes to the browser window.
type Sender interface {
	Focus(w gesture.Window)
	Post(target gesture.Window, msg gesture.Msg, wParam, lParam uintptr)
}

// Forwarder routes browser shortcuts out of a plugin. A bare Alt press is
// held back until its release so that Ctrl+Alt (AltGr) text input never
// opens the browser menu. One Forwarder belongs to one thread.
type Forwarder struct {
	pendingAlt *gesture.Event
}

// Handles reports whether msg is one of the keyboard messages considered.
func Handles(msg gesture.Msg) bool {
	return msg == gesture.MsgKeyDown || msg == gesture.MsgSysKeyDown || msg == gesture.MsgSysKeyUp
}

// Pending reports whether an Alt press is being held back.
func (f *Forwarder) Pending() bool {
	return f.pendingAlt != nil
}

// Process forwards ev to browser when it is a browser shortcut and reports
// whether the plugin should not see it.
func (f *Forwarder) Process(s Sender, browser gesture.Window, ev gesture.Event, mods wininput.Modifiers) bool {
	vk := int(ev.WParam)
	alt := mods.Alt

	// Only a press is held back. A release may still report Alt as down.
	if alt && !mods.Ctrl && vk == VKMenu && ev.Msg != gesture.MsgSysKeyUp {
		held := ev
		f.pendingAlt = &held
		return false
	}
	if mods.Ctrl {
		f.pendingAlt = nil
	}

	switch {
	case ev.Msg == gesture.MsgSysKeyUp && vk == VKMenu:
		if f.pendingAlt != nil {
			s.Focus(browser)
			s.Post(browser, f.pendingAlt.Msg, f.pendingAlt.WParam, f.pendingAlt.LParam)
			f.pendingAlt = nil
			alt = true
		}
	case ev.Msg == gesture.MsgSysKeyUp && vk == VKControl:
		// Tail of an AltGr release.
		return false
	}

	if !mods.Ctrl && !alt && !isFunctionKey(vk) {
		return false
	}
	if !Filter(vk, alt, mods.Ctrl, mods.Shift) {
		return false
	}
	s.Focus(browser)
	s.Post(browser, ev.Msg, ev.WParam, ev.LParam)
	return true
}
