package render

import (
	"fmt"
)

const (
	AngleStep = 0.02

	ScaleStep = 0.01
	ScaleMin  = 0.5
	ScaleMax  = 1.5
)

// AnimationState holds everything that changes from frame to frame.
//
// The frame scheduler owns Angle, ScaleX, ScaleY, Growing and ElapsedTime.
// The pointer tracker owns PointerX and PointerY.
type AnimationState struct {
	Angle   float64
	ScaleX  float64
	ScaleY  float64
	Growing bool

	// seconds
	ElapsedTime float64

	PointerX float64
	PointerY float64
}

func NewAnimationState() *AnimationState {
	return &AnimationState{
		ScaleX:   1,
		ScaleY:   1,
		Growing:  true,
		PointerX: 0.5,
		PointerY: 0.5,
	}
}

// Advance moves the animation one tick forward.
//
// Scale is a triangle wave that reverses on the tick it crosses a bound.
// It never clamps, so it can overshoot a bound by one float rounding.
func (s *AnimationState) Advance(timestampMs float64) {
	s.ElapsedTime = timestampMs * 0.001

	s.Angle -= AngleStep

	if s.Growing {
		s.ScaleX += ScaleStep
		s.ScaleY += ScaleStep
		if s.ScaleX > ScaleMax {
			s.Growing = false
		}
	} else {
		s.ScaleX -= ScaleStep
		s.ScaleY -= ScaleStep
		if s.ScaleX < ScaleMin {
			s.Growing = true
		}
	}
}

func (s *AnimationState) String() string {
	return fmt.Sprintf(
		"angle=%.4f scale=(%.4f, %.4f) growing=%v time=%.3fs pointer=(%.4f, %.4f)",
		s.Angle, s.ScaleX, s.ScaleY, s.Growing, s.ElapsedTime, s.PointerX, s.PointerY,
	)
}
