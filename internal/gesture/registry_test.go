package gesture

import "testing"

// TestNewRegistry_DefaultsToPriority verifies the default handler order.
func TestNewRegistry_DefaultsToPriority(t *testing.T) {
	r := NewRegistry()
	kinds := r.Kinds()
	if len(kinds) != 3 || kinds[0] != Trace || kinds[1] != Rocker || kinds[2] != Wheel {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
	if !r.Idle() || r.Triggered() != nil {
		t.Fatalf("expected fresh registry to be idle")
	}
}

// TestNewRegistry_ReordersAndDedupes verifies requested kinds follow priority order.
func TestNewRegistry_ReordersAndDedupes(t *testing.T) {
	r := NewRegistry(Wheel, Trace, Wheel)
	kinds := r.Kinds()
	if len(kinds) != 2 || kinds[0] != Trace || kinds[1] != Wheel {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
	if r.Handler(Rocker) != nil {
		t.Fatalf("expected rocker to be disabled")
	}
}

// TestRegistry_TriggeredAndReset verifies triggered lookup and reset.
func TestRegistry_TriggeredAndReset(t *testing.T) {
	r := NewRegistry()
	wheel := r.Handler(Wheel)
	wheel.Handle(press(MsgRButtonDown, 0, 0, KeyRButton))
	wheel.Handle(press(MsgMouseWheel, 0, 0, KeyRButton))
	if r.Triggered() != wheel {
		t.Fatalf("expected wheel to be the triggered handler")
	}
	if r.Idle() {
		t.Fatalf("expected registry not idle")
	}
	r.ResetAll()
	if !r.Idle() || r.Triggered() != nil {
		t.Fatalf("expected idle registry after reset")
	}
}

// TestParseKind_RoundTrip verifies kind names parse back.
func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range Priority {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("pinch"); err == nil {
		t.Fatalf("expected error for unknown gesture")
	}
}

// TestNewMouseEvent_DecodesPacking verifies lParam/wParam decoding.
func TestNewMouseEvent_DecodesPacking(t *testing.T) {
	ev := NewMouseEvent(3, MsgMouseMove, uintptr(KeyRButton|KeyShift), PackPoint(-4, 300))
	if ev.X != -4 || ev.Y != 300 {
		t.Fatalf("expected (-4,300), got (%d,%d)", ev.X, ev.Y)
	}
	if !ev.Keys.Has(KeyRButton) || !ev.Keys.Has(KeyShift) || ev.Keys.Has(KeyLButton) {
		t.Fatalf("unexpected keys: 0x%x", uint16(ev.Keys))
	}
	if ev.Plain() {
		t.Fatalf("expected modified move not to be plain")
	}

	wheel := NewMouseEvent(3, MsgMouseWheel, uintptr(uint16(0xFF88))<<16|uintptr(KeyRButton), 0)
	if wheel.WheelDelta() != -120 {
		t.Fatalf("expected delta -120, got %d", wheel.WheelDelta())
	}
}
