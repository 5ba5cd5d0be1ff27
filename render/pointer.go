package render

// PointerSink receives normalized pointer positions as soon as they change.
type PointerSink interface {
	PushPointer(x, y float64)
}

// PointerTracker maps raw pointer positions into shader space,
// origin bottom-left, [0, 1] over the surface.
//
// Positions outside the surface map outside [0, 1] unless Clamp is set.
type PointerTracker struct {
	State *AnimationState
	Sink  PointerSink
	Clamp bool
}

func NewPointerTracker(state *AnimationState, sink PointerSink, clamp bool) *PointerTracker {
	return &PointerTracker{
		State: state,
		Sink:  sink,
		Clamp: clamp,
	}
}

func Normalize(clientX, clientY float64, rect Rect) (float64, float64) {
	nx := (clientX - rect.Left) / rect.Width
	ny := 1.0 - (clientY-rect.Top)/rect.Height
	return nx, ny
}

// Move records a pointer move. It reports false and leaves the state
// alone when rect has no area.
func (pt *PointerTracker) Move(clientX, clientY float64, rect Rect) bool {
	if rect.Empty() {
		return false
	}

	nx, ny := Normalize(clientX, clientY, rect)
	if pt.Clamp {
		nx = Clamp(nx, 0, 1)
		ny = Clamp(ny, 0, 1)
	}

	pt.State.PointerX = nx
	pt.State.PointerY = ny

	if pt.Sink != nil {
		pt.Sink.PushPointer(nx, ny)
	}

	return true
}
