package hook

import (
	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/keyfilter"
	"github.com/frudas24/flashgestures/internal/wininput"
)

// Sided modifier codes reported by low-level keyboard hooks.
const (
	vkLShift   = 0xA0
	vkRShift   = 0xA1
	vkLControl = 0xA2
	vkRControl = 0xA3
	vkLMenu    = 0xA4
	vkRMenu    = 0xA5
)

// modifierTracker follows Shift, Ctrl and Alt from the keyboard hook stream.
// GetKeyState only sees the calling thread's queue, and the hook thread
// never receives keyboard input, so the state is rebuilt from the events.
// Only the hook thread touches it.
type modifierTracker struct {
	down map[int]bool
}

// genericVK folds a sided modifier code onto the code window messages carry.
func genericVK(vk int) int {
	switch vk {
	case vkLShift, vkRShift:
		return keyfilter.VKShift
	case vkLControl, vkRControl:
		return keyfilter.VKControl
	case vkLMenu, vkRMenu:
		return keyfilter.VKMenu
	default:
		return vk
	}
}

// observe records a press or release and returns the generic key code.
// The returned state already includes this event, so an Alt release reads
// as Alt up.
func (t *modifierTracker) observe(msg gesture.Msg, vk int) int {
	generic := genericVK(vk)
	switch generic {
	case keyfilter.VKShift, keyfilter.VKControl, keyfilter.VKMenu:
		if t.down == nil {
			t.down = make(map[int]bool)
		}
		t.down[vk] = msg == gesture.MsgKeyDown || msg == gesture.MsgSysKeyDown
	}
	return generic
}

// keys returns the held modifiers as an event mask.
func (t *modifierTracker) keys() gesture.Keys {
	var k gesture.Keys
	if t.down[vkLShift] || t.down[vkRShift] || t.down[keyfilter.VKShift] {
		k |= gesture.KeyShift
	}
	if t.down[vkLControl] || t.down[vkRControl] || t.down[keyfilter.VKControl] {
		k |= gesture.KeyControl
	}
	if t.down[vkLMenu] || t.down[vkRMenu] || t.down[keyfilter.VKMenu] {
		k |= gesture.KeyAlt
	}
	return k
}

// reset forgets every held key.
func (t *modifierTracker) reset() {
	t.down = nil
}

// keyModifiers converts an event mask into the modifiers the key filter reads.
func keyModifiers(k gesture.Keys) wininput.Modifiers {
	return wininput.Modifiers{
		Alt:   k.Has(gesture.KeyAlt),
		Ctrl:  k.Has(gesture.KeyControl),
		Shift: k.Has(gesture.KeyShift),
	}
}
