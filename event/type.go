package event

// Type identifies an input event kind
type Type uint8

const (
	// Scroll carries an offset in Y, absolute or relative
	// Trigger: wheel, arrow keys, page scroll | Payload: Delta set when relative
	Scroll Type = iota + 1

	// PointerMove carries normalized device coordinates in [-1,1], Y up
	// Trigger: mouse motion
	PointerMove

	// PointerLeave clears the pointer
	// Trigger: focus loss, pointer exits the surface
	PointerLeave

	// Resize carries the new surface size in Width/Height
	// Trigger: terminal or window resize
	Resize

	typeCount
)

var typeNames = [typeCount]string{
	Scroll:       "scroll",
	PointerMove:  "pointer-move",
	PointerLeave: "pointer-leave",
	Resize:       "resize",
}

func (t Type) String() string {
	if t > 0 && t < typeCount {
		return typeNames[t]
	}
	return "unknown"
}

// Event is a flat input record, copied by value through the queue
type Event struct {
	Type Type
	// Scroll: absolute offset when Delta is false, relative otherwise
	// PointerMove: normalized X/Y
	X, Y  float64
	Delta bool
	// Resize
	Width, Height int
}

// ScrollTo builds an absolute scroll event
func ScrollTo(offset float64) Event {
	return Event{Type: Scroll, Y: offset}
}

// ScrollBy builds a relative scroll event
func ScrollBy(delta float64) Event {
	return Event{Type: Scroll, Y: delta, Delta: true}
}

// PointerAt builds a pointer move event from normalized coordinates
func PointerAt(x, y float64) Event {
	return Event{Type: PointerMove, X: x, Y: y}
}

// PointerLeft builds a pointer leave event
func PointerLeft() Event {
	return Event{Type: PointerLeave}
}

// Resized builds a resize event
func Resized(width, height int) Event {
	return Event{Type: Resize, Width: width, Height: height}
}
