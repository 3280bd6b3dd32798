package gesture

// stepRocker recognizes a press of one button while the other is held.
// Movement never triggers a rocker; drifting too far cancels it.
func stepRocker(s scratch, ev Event) (scratch, Result) {
	switch s.state {
	case StateNone:
		if ev.Msg == MsgLButtonDown || ev.Msg == MsgRButtonDown {
			s.startX, s.startY = ev.X, ev.Y
			s.left = ev.Msg == MsgLButtonDown
			s.state = StateInitiated
			return s, Initiated
		}
	case StateInitiated:
		held := initiatingButton(s)
		switch {
		case ev.Msg == MsgMouseMove && ev.Keys.Has(held):
			if ev.Moved(s.startX, s.startY) {
				s.state = StateNone
				return s, Canceled
			}
			return s, Swallowed
		case ev.Msg == oppositeDown(s) && ev.Keys.Has(held):
			s.state = StateTriggered
			return s, Triggered
		case ev.Msg == MsgLButtonDown || ev.Msg == MsgRButtonDown ||
			ev.Msg == MsgLButtonDblClk || ev.Msg == MsgRButtonDblClk:
			return s, Discarded
		default:
			s.state = StateNone
			return s, Canceled
		}
	case StateTriggered:
		if !ev.Keys.Has(initiatingButton(s)) ||
			(ev.Msg != oppositeDown(s) && ev.Msg != oppositeUp(s) && ev.Msg != MsgMouseMove) {
			s.state = StateNone
			return s, GestureEnd
		}
		return s, Swallowed
	}
	return s, NotHandled
}

// initiatingButton returns the key flag of the button that started the rocker.
func initiatingButton(s scratch) Keys {
	if s.left {
		return KeyLButton
	}
	return KeyRButton
}

// oppositeDown returns the press message of the other button.
func oppositeDown(s scratch) Msg {
	if s.left {
		return MsgRButtonDown
	}
	return MsgLButtonDown
}

// oppositeUp returns the release message of the other button.
func oppositeUp(s scratch) Msg {
	if s.left {
		return MsgRButtonUp
	}
	return MsgLButtonUp
}

// rockerSwallow keeps a left-initiated rocker from consuming anything but
// the triggering press.
func rockerSwallow(s scratch, r Result) bool {
	if s.left && r != Triggered {
		return false
	}
	return defaultSwallow(r)
}

// rockerReplayOrigin reports whether withheld events go back to the origin
// window on cancel. A left-initiated rocker never withheld them.
func rockerReplayOrigin(s scratch) bool {
	return !s.left
}
