package panzoom

// EventKind identifies a kind of input event.
type EventKind uint8

const (
	EventPointerMove EventKind = iota // pointer moved, button state unchanged
	EventPointerDown                  // primary button pressed
	EventPointerUp                    // primary button released
	EventWheel                        // wheel or scroll input
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPointerMove:
		return "move"
	case EventPointerDown:
		return "down"
	case EventPointerUp:
		return "up"
	case EventWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// WheelEncoding selects one of the legacy wheel delta conventions. Hosts
// can deliver the same physical scroll through several encodings at once;
// the viewer locks onto the first one it sees until wheel input goes idle.
type WheelEncoding uint8

const (
	WheelNone       WheelEncoding = iota // no channel locked
	WheelMouseWheel                      // legacy wheelDelta: positive scrolls up
	WheelStandard                        // deltaY: positive scrolls down
	WheelDOMScroll                       // line detail: positive scrolls down
)

// normalize converts a raw delta in this encoding so that positive means
// "scroll up" (zoom in).
func (w WheelEncoding) normalize(v float64) float64 {
	switch w {
	case WheelMouseWheel:
		return v
	case WheelStandard, WheelDOMScroll:
		return -v
	default:
		return 0
	}
}

// Event is one input event delivered by a host adapter. X and Y are screen
// coordinates relative to the surface. Wheel and Delta are only meaningful
// for EventWheel.
type Event struct {
	Kind   EventKind
	Target string
	X, Y   float64
	Wheel  WheelEncoding
	Delta  float64
}

// PointerMove builds a move event.
func PointerMove(target string, x, y float64) Event {
	return Event{Kind: EventPointerMove, Target: target, X: x, Y: y}
}

// PointerDown builds a primary-button press event.
func PointerDown(target string, x, y float64) Event {
	return Event{Kind: EventPointerDown, Target: target, X: x, Y: y}
}

// PointerUp builds a primary-button release event.
func PointerUp(target string, x, y float64) Event {
	return Event{Kind: EventPointerUp, Target: target, X: x, Y: y}
}

// Wheel builds a wheel event carrying a raw delta in the given encoding.
func Wheel(target string, x, y float64, enc WheelEncoding, delta float64) Event {
	return Event{Kind: EventWheel, Target: target, X: x, Y: y, Wheel: enc, Delta: delta}
}
