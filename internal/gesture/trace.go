package gesture

// stepTrace recognizes a right-button drag.
func stepTrace(s scratch, ev Event) (scratch, Result) {
	switch s.state {
	case StateNone:
		if ev.Msg == MsgRButtonDown {
			s.startX, s.startY = ev.X, ev.Y
			s.state = StateInitiated
			return s, Initiated
		}
	case StateInitiated:
		switch {
		case ev.Msg == MsgMouseMove && ev.Keys.Has(KeyRButton):
			if ev.Moved(s.startX, s.startY) {
				s.state = StateTriggered
				return s, Triggered
			}
			return s, Swallowed
		case ev.Msg == MsgRButtonDown || ev.Msg == MsgRButtonDblClk:
			return s, Discarded
		default:
			s.state = StateNone
			return s, Canceled
		}
	case StateTriggered:
		if ev.Msg == MsgMouseMove && ev.Keys.Has(KeyRButton) {
			return s, Swallowed
		}
		s.state = StateNone
		return s, GestureEnd
	}
	return s, NotHandled
}
