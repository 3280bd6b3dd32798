package gesture

// Window is an opaque native window handle.
type Window uintptr

// Msg identifies an input message using the Windows message numbering.
type Msg uint32

// Keyboard messages.
const (
	MsgKeyFirst   Msg = 0x0100
	MsgKeyDown    Msg = 0x0100
	MsgKeyUp      Msg = 0x0101
	MsgChar       Msg = 0x0102
	MsgSysKeyDown Msg = 0x0104
	MsgSysKeyUp   Msg = 0x0105
	MsgKeyLast    Msg = 0x0109
)

// Mouse messages.
const (
	MsgMouseFirst    Msg = 0x0200
	MsgMouseMove     Msg = 0x0200
	MsgLButtonDown   Msg = 0x0201
	MsgLButtonUp     Msg = 0x0202
	MsgLButtonDblClk Msg = 0x0203
	MsgRButtonDown   Msg = 0x0204
	MsgRButtonUp     Msg = 0x0205
	MsgRButtonDblClk Msg = 0x0206
	MsgMButtonDown   Msg = 0x0207
	MsgMButtonUp     Msg = 0x0208
	MsgMButtonDblClk Msg = 0x0209
	MsgMouseWheel    Msg = 0x020A
	MsgMouseHWheel   Msg = 0x020E
	MsgMouseLast     Msg = 0x020E
)

// IsMouse reports whether m is in the mouse message range.
func (m Msg) IsMouse() bool {
	return m >= MsgMouseFirst && m <= MsgMouseLast
}

// IsKey reports whether m is in the keyboard message range.
func (m Msg) IsKey() bool {
	return m >= MsgKeyFirst && m <= MsgKeyLast
}

// Keys is the button and modifier mask carried by mouse messages.
type Keys uint16

const (
	KeyLButton Keys = 0x0001
	KeyRButton Keys = 0x0002
	KeyShift   Keys = 0x0004
	KeyControl Keys = 0x0008
	KeyMButton Keys = 0x0010
	// KeyAlt is not part of the OS mask; hosts set it from keyboard state.
	KeyAlt Keys = 0x8000
)

// Has reports whether every bit of k is set.
func (ks Keys) Has(k Keys) bool {
	return ks&k == k
}

// Event is a single input message as delivered by the host.
type Event struct {
	Msg    Msg
	Window Window
	X      int
	Y      int
	Keys   Keys
	WParam uintptr
	LParam uintptr
}

// NewMouseEvent decodes the OS packing of a mouse message.
func NewMouseEvent(window Window, msg Msg, wParam, lParam uintptr) Event {
	return Event{
		Msg:    msg,
		Window: window,
		X:      int(int16(uint16(lParam))),
		Y:      int(int16(uint16(lParam >> 16))),
		Keys:   Keys(uint16(wParam)),
		WParam: wParam,
		LParam: lParam,
	}
}

// PackPoint encodes client coordinates the way mouse messages carry them.
func PackPoint(x, y int) uintptr {
	return uintptr(uint16(int16(x))) | uintptr(uint16(int16(y)))<<16
}

// WheelDelta returns the signed rotation of a wheel message.
func (e Event) WheelDelta() int {
	return int(int16(uint16(e.WParam >> 16)))
}

// Plain reports whether e is a mouse move with no button or modifier held.
func (e Event) Plain() bool {
	return e.Msg == MsgMouseMove && e.Keys == 0
}

// Moved reports whether e lies beyond the move threshold from (x, y) on
// either axis.
func (e Event) Moved(x, y int) bool {
	return abs(e.X-x) > MoveThreshold || abs(e.Y-y) > MoveThreshold
}

// abs returns the absolute value of an integer.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
