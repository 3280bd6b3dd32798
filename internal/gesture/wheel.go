package gesture

// stepWheel recognizes a wheel rotation while the right button is held.
func stepWheel(s scratch, ev Event) (scratch, Result) {
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
				s.state = StateNone
				return s, Canceled
			}
			return s, Swallowed
		case ev.Msg == MsgMouseWheel && ev.Keys.Has(KeyRButton):
			s.state = StateTriggered
			return s, Triggered
		case ev.Msg == MsgRButtonDown || ev.Msg == MsgRButtonDblClk:
			return s, Discarded
		default:
			s.state = StateNone
			return s, Canceled
		}
	case StateTriggered:
		if (ev.Msg == MsgMouseMove || ev.Msg == MsgMouseWheel) && ev.Keys.Has(KeyRButton) {
			return s, Swallowed
		}
		s.state = StateNone
		return s, GestureEnd
	}
	return s, NotHandled
}
