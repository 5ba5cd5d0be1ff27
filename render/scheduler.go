package render

// FrameRequester registers fn to run once on the next display refresh.
// Only one registration is pending at a time.
type FrameRequester interface {
	RequestNextFrame(fn func(timestampMs float64))
}

// Drawer issues the draw calls of one frame for the given state.
type Drawer interface {
	DrawFrame(s *AnimationState)
}

type SchedulerState int

const (
	SchedulerIdle SchedulerState = iota
	SchedulerAnimating
)

func (s SchedulerState) String() string {
	if s == SchedulerAnimating {
		return "animating"
	}
	return "idle"
}

// Scheduler advances the animation and draws once per refresh,
// re-registering itself after every tick. It has no stop:
// it runs until the host tears the surface down.
type Scheduler struct {
	animation *AnimationState
	drawer    Drawer
	frames    FrameRequester

	state  SchedulerState
	ticks  uint64
	tickFn func(float64)
}

func NewScheduler(animation *AnimationState, drawer Drawer, frames FrameRequester) *Scheduler {
	s := &Scheduler{
		animation: animation,
		drawer:    drawer,
		frames:    frames,
	}
	s.tickFn = s.Tick
	return s
}

// Start registers the first tick. Calling it again is a no-op.
func (s *Scheduler) Start() {
	if s.state == SchedulerAnimating {
		return
	}
	s.state = SchedulerAnimating
	s.frames.RequestNextFrame(s.tickFn)
}

func (s *Scheduler) Tick(timestampMs float64) {
	if s.state != SchedulerAnimating {
		return
	}

	s.animation.Advance(timestampMs)
	s.drawer.DrawFrame(s.animation)
	s.ticks++

	s.frames.RequestNextFrame(s.tickFn)
}

func (s *Scheduler) State() SchedulerState { return s.state }

func (s *Scheduler) Running() bool { return s.state == SchedulerAnimating }

// Ticks returns how many frames were drawn.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Stepper is a FrameRequester for hosts that own their frame loop.
// The host calls Step once per refresh.
type Stepper struct {
	pending func(float64)
}

func (st *Stepper) RequestNextFrame(fn func(timestampMs float64)) {
	st.pending = fn
}

func (st *Stepper) Pending() bool { return st.pending != nil }

// Step runs the pending callback, if any, and reports whether one ran.
// The callback may register the next one.
func (st *Stepper) Step(timestampMs float64) bool {
	fn := st.pending
	if fn == nil {
		return false
	}
	st.pending = nil
	fn(timestampMs)
	return true
}
