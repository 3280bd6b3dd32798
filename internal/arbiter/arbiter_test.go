package arbiter

import (
	"testing"

	"github.com/frudas24/flashgestures/internal/gesture"
	"github.com/frudas24/flashgestures/internal/testutil"
)

const (
	plugin  gesture.Window = 10
	browser gesture.Window = 20
)

// mouse builds a mouse event on the plugin window.
func mouse(msg gesture.Msg, x, y int, keys gesture.Keys) gesture.Event {
	return gesture.NewMouseEvent(plugin, msg, uintptr(keys), gesture.PackPoint(x, y))
}

// countTriggered returns how many handlers are triggered.
func countTriggered(reg *gesture.Registry) int {
	n := 0
	for _, h := range reg.Handlers() {
		if h.State() == gesture.StateTriggered {
			n++
		}
	}
	return n
}

// TestProcessMouse_TraceForwardsGesture verifies a trace is replayed to the browser and tracked.
func TestProcessMouse_TraceForwardsGesture(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()

	if !a.ProcessMouse(reg, mouse(gesture.MsgRButtonDown, 50, 50, gesture.KeyRButton), browser) {
		t.Fatalf("expected right press to be swallowed")
	}
	if len(d.Calls) != 0 {
		t.Fatalf("expected nothing forwarded yet, got %#v", d.Calls)
	}

	if !a.ProcessMouse(reg, mouse(gesture.MsgMouseMove, 70, 50, gesture.KeyRButton), browser) {
		t.Fatalf("expected triggering move to be swallowed")
	}
	fwd := d.Named("Forward")
	if len(fwd) != 2 || fwd[0].Msg != gesture.MsgRButtonDown || fwd[1].Msg != gesture.MsgMouseMove {
		t.Fatalf("expected press+move replayed, got %#v", fwd)
	}
	for _, c := range fwd {
		if c.Target != browser || c.Event.Window != plugin {
			t.Fatalf("expected replay to browser from plugin, got %#v", c)
		}
	}
	if reg.Triggered() != reg.Handler(gesture.Trace) {
		t.Fatalf("expected trace to own the gesture")
	}

	if !a.ProcessMouse(reg, mouse(gesture.MsgMouseMove, 120, 80, gesture.KeyRButton), browser) {
		t.Fatalf("expected tracking move to be swallowed")
	}
	if !a.ProcessMouse(reg, mouse(gesture.MsgRButtonUp, 120, 80, 0), browser) {
		t.Fatalf("expected release to be swallowed")
	}
	if n := len(d.Named("Forward")); n != 4 {
		t.Fatalf("expected 4 forwards, got %d", n)
	}
	if !reg.Idle() {
		t.Fatalf("expected registry reset after gesture end")
	}
}

// TestProcessMouse_PlainMoveForwarded verifies unmodified moves reach the browser.
func TestProcessMouse_PlainMoveForwarded(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()

	if a.ProcessMouse(reg, mouse(gesture.MsgMouseMove, 5, 5, 0), browser) {
		t.Fatalf("expected plain move to pass through")
	}
	fwd := d.Named("Forward")
	if len(fwd) != 1 || fwd[0].Target != browser {
		t.Fatalf("expected plain move forwarded to browser, got %#v", fwd)
	}
}

// TestProcessMouse_ModifiedMoveNotForwarded verifies held-key moves are not forwarded.
func TestProcessMouse_ModifiedMoveNotForwarded(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()

	if a.ProcessMouse(reg, mouse(gesture.MsgMouseMove, 5, 5, gesture.KeyShift), browser) {
		t.Fatalf("expected shift move to pass through")
	}
	if len(d.Calls) != 0 {
		t.Fatalf("expected no forward, got %#v", d.Calls)
	}
}

// TestProcessMouse_RightRockerCancelReplaysOnce verifies a canceled right rocker replays to origin.
func TestProcessMouse_RightRockerCancelReplaysOnce(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry(gesture.Rocker)

	if !a.ProcessMouse(reg, mouse(gesture.MsgRButtonDown, 0, 0, gesture.KeyRButton), browser) {
		t.Fatalf("expected right press to be swallowed")
	}
	if a.ProcessMouse(reg, mouse(gesture.MsgRButtonUp, 0, 0, 0), browser) {
		t.Fatalf("expected cancel not to be swallowed")
	}
	fwd := d.Named("Forward")
	if len(fwd) != 1 || fwd[0].Target != plugin || fwd[0].Msg != gesture.MsgRButtonDown {
		t.Fatalf("expected single replay of the press to origin, got %#v", fwd)
	}
	if !reg.Idle() {
		t.Fatalf("expected idle registry")
	}
}

// TestProcessMouse_LeftRockerCancelDoesNotReplay verifies a canceled left rocker replays nothing.
func TestProcessMouse_LeftRockerCancelDoesNotReplay(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()

	if a.ProcessMouse(reg, mouse(gesture.MsgLButtonDown, 0, 0, gesture.KeyLButton), browser) {
		t.Fatalf("expected left press to pass through")
	}
	if a.ProcessMouse(reg, mouse(gesture.MsgLButtonUp, 0, 0, 0), browser) {
		t.Fatalf("expected left release to pass through")
	}
	if len(d.Calls) != 0 {
		t.Fatalf("expected no replay, got %#v", d.Calls)
	}
	if !reg.Idle() {
		t.Fatalf("expected idle registry")
	}
}

// TestProcessMouse_CancelNoticeOnlyOnReplay verifies cancels are reported only when events went back to the origin.
func TestProcessMouse_CancelNoticeOnlyOnReplay(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	var notices []Notice
	a := New(d, WithNotify(func(n Notice) { notices = append(notices, n) }))
	reg := gesture.NewRegistry(gesture.Rocker)

	a.ProcessMouse(reg, mouse(gesture.MsgLButtonDown, 0, 0, gesture.KeyLButton), browser)
	a.ProcessMouse(reg, mouse(gesture.MsgLButtonUp, 0, 0, 0), browser)
	if len(notices) != 0 {
		t.Fatalf("expected no notice for a left rocker cancel, got %#v", notices)
	}

	a.ProcessMouse(reg, mouse(gesture.MsgRButtonDown, 0, 0, gesture.KeyRButton), browser)
	a.ProcessMouse(reg, mouse(gesture.MsgRButtonUp, 0, 0, 0), browser)
	if len(notices) != 1 || notices[0].Gesture != gesture.Rocker || notices[0].Result != gesture.Canceled {
		t.Fatalf("expected one cancel notice for the right rocker, got %#v", notices)
	}
}

// TestProcessMouse_SharedPressReplaysAfterLastCancel verifies replay waits until every handler is idle.
func TestProcessMouse_SharedPressReplaysAfterLastCancel(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()

	a.ProcessMouse(reg, mouse(gesture.MsgRButtonDown, 0, 0, gesture.KeyRButton), browser)
	a.ProcessMouse(reg, mouse(gesture.MsgMouseMove, 2, 2, gesture.KeyRButton), browser)
	if a.ProcessMouse(reg, mouse(gesture.MsgRButtonUp, 2, 2, 0), browser) {
		t.Fatalf("expected release to pass through")
	}
	fwd := d.Named("Forward")
	if len(fwd) != 2 {
		t.Fatalf("expected press+jitter replayed once, got %#v", fwd)
	}
	for _, c := range fwd {
		if c.Target != plugin {
			t.Fatalf("expected replay to origin, got %#v", c)
		}
	}
}

// TestProcessMouse_LeftRockerTriggers verifies the left->right rocker owns subsequent messages.
func TestProcessMouse_LeftRockerTriggers(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	var notices []Notice
	a := New(d, WithNotify(func(n Notice) { notices = append(notices, n) }))
	reg := gesture.NewRegistry()

	a.ProcessMouse(reg, mouse(gesture.MsgLButtonDown, 0, 0, gesture.KeyLButton), browser)
	if !a.ProcessMouse(reg, mouse(gesture.MsgRButtonDown, 0, 0, gesture.KeyLButton|gesture.KeyRButton), browser) {
		t.Fatalf("expected triggering press to be swallowed")
	}
	if reg.Triggered() != reg.Handler(gesture.Rocker) {
		t.Fatalf("expected rocker triggered")
	}
	if !a.ProcessMouse(reg, mouse(gesture.MsgLButtonUp, 0, 0, gesture.KeyRButton), browser) {
		t.Fatalf("expected end message to be swallowed and forwarded")
	}
	if !reg.Idle() {
		t.Fatalf("expected idle registry after rocker end")
	}
	if len(notices) != 2 || notices[0].Result != gesture.Triggered || notices[1].Result != gesture.GestureEnd {
		t.Fatalf("unexpected notices: %#v", notices)
	}
	if notices[0].Gesture != gesture.Rocker {
		t.Fatalf("expected rocker notice, got %s", notices[0].Gesture)
	}
}

// TestProcessMouse_AtMostOneTriggered verifies mutual exclusion over a mixed sequence.
func TestProcessMouse_AtMostOneTriggered(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()
	seq := []gesture.Event{
		mouse(gesture.MsgRButtonDown, 0, 0, gesture.KeyRButton),
		mouse(gesture.MsgMouseWheel, 0, 0, gesture.KeyRButton),
		mouse(gesture.MsgLButtonDown, 0, 0, gesture.KeyRButton|gesture.KeyLButton),
		mouse(gesture.MsgMouseMove, 40, 0, gesture.KeyRButton),
		mouse(gesture.MsgRButtonUp, 40, 0, 0),
		mouse(gesture.MsgRButtonDown, 40, 0, gesture.KeyRButton),
		mouse(gesture.MsgLButtonDown, 40, 0, gesture.KeyRButton|gesture.KeyLButton),
		mouse(gesture.MsgMouseWheel, 40, 0, gesture.KeyRButton),
		mouse(gesture.MsgMouseMove, 90, 0, gesture.KeyRButton),
		mouse(gesture.MsgRButtonUp, 90, 0, 0),
	}
	for i, ev := range seq {
		a.ProcessMouse(reg, ev, browser)
		if n := countTriggered(reg); n > 1 {
			t.Fatalf("step %d: %d handlers triggered", i, n)
		}
	}
}

// TestProcessMouse_WheelTriggersFromRightPress verifies the wheel gesture wins on rotation.
func TestProcessMouse_WheelTriggersFromRightPress(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	a := New(d)
	reg := gesture.NewRegistry()

	a.ProcessMouse(reg, mouse(gesture.MsgRButtonDown, 0, 0, gesture.KeyRButton), browser)
	if !a.ProcessMouse(reg, mouse(gesture.MsgMouseWheel, 0, 0, gesture.KeyRButton), browser) {
		t.Fatalf("expected rotation to be swallowed")
	}
	if reg.Triggered() != reg.Handler(gesture.Wheel) {
		t.Fatalf("expected wheel triggered")
	}
	if reg.Handler(gesture.Trace).State() != gesture.StateNone {
		t.Fatalf("expected trace canceled by the rotation")
	}
}

// TestProcessZoom_CtrlWheel verifies ctrl+wheel is forwarded and other events are not.
func TestProcessZoom_CtrlWheel(t *testing.T) {
	d := testutil.NewFakeDesktop(plugin, browser)
	wheel := mouse(gesture.MsgMouseWheel, 0, 0, gesture.KeyControl)

	if ProcessZoom(d, wheel, browser, false) {
		t.Fatalf("expected wheel without ctrl to pass")
	}
	if ProcessZoom(d, mouse(gesture.MsgMouseMove, 0, 0, 0), browser, true) {
		t.Fatalf("expected move to pass")
	}
	if !ProcessZoom(d, wheel, browser, true) {
		t.Fatalf("expected ctrl+wheel to be taken")
	}
	fwd := d.Named("Forward")
	if len(fwd) != 1 || fwd[0].Target != browser {
		t.Fatalf("expected ctrl+wheel forwarded to browser, got %#v", fwd)
	}
}
