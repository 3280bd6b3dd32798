// Package gesture recognizes trace, rocker and wheel mouse gestures.
package gesture

import "fmt"

// State is the lifecycle position of a single gesture handler.
type State int

const (
	// StateNone means no gesture is in progress.
	StateNone State = iota
	// StateInitiated means a qualifying press was seen.
	StateInitiated
	// StateTriggered means the gesture was recognized.
	StateTriggered
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateInitiated:
		return "initiated"
	case StateTriggered:
		return "triggered"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Result is the outcome of feeding one event to one handler.
type Result int

const (
	// NotHandled leaves the handler untouched.
	NotHandled Result = iota
	// Initiated marks the None -> Initiated transition.
	Initiated
	// Triggered marks the Initiated -> Triggered transition.
	Triggered
	// Swallowed keeps the current state and withholds the event.
	Swallowed
	// Discarded ignores a duplicate press while initiated.
	Discarded
	// Canceled marks the Initiated -> None transition.
	Canceled
	// GestureEnd marks the Triggered -> None transition.
	GestureEnd
)

// String returns the lowercase result name.
func (r Result) String() string {
	switch r {
	case NotHandled:
		return "not_handled"
	case Initiated:
		return "initiated"
	case Triggered:
		return "triggered"
	case Swallowed:
		return "swallowed"
	case Discarded:
		return "discarded"
	case Canceled:
		return "canceled"
	case GestureEnd:
		return "gesture_end"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Kind identifies one of the gesture recognizers.
type Kind int

const (
	// Trace is a right-button drag.
	Trace Kind = iota
	// Rocker is a press of one button while the other is held.
	Rocker
	// Wheel is a wheel rotation while the right button is held.
	Wheel
)

// Priority is the order handlers are consulted in. When two handlers could
// trigger on the same event the earlier one wins.
var Priority = []Kind{Trace, Rocker, Wheel}

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Trace:
		return "trace"
	case Rocker:
		return "rocker"
	case Wheel:
		return "wheel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a kind name back into a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "trace":
		return Trace, nil
	case "rocker":
		return Rocker, nil
	case "wheel":
		return Wheel, nil
	default:
		return 0, fmt.Errorf("unknown gesture %q", name)
	}
}
