package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accumulated float error of the 0.01 steps
const scaleEpsilon = 1e-9

func TestNewAnimationState(t *testing.T) {
	s := NewAnimationState()

	assert.Equal(t, 0.0, s.Angle)
	assert.Equal(t, 1.0, s.ScaleX)
	assert.Equal(t, 1.0, s.ScaleY)
	assert.True(t, s.Growing)
	assert.Equal(t, 0.5, s.PointerX)
	assert.Equal(t, 0.5, s.PointerY)
}

func TestPulsationBounds(t *testing.T) {
	s := NewAnimationState()

	prev := s.ScaleX
	prevGrowing := s.Growing

	for n := 1; n <= 5000; n++ {
		s.Advance(float64(n) * 16)

		require.Equal(t, s.ScaleX, s.ScaleY, "tick %d", n)
		require.GreaterOrEqual(t, s.ScaleX, ScaleMin-scaleEpsilon, "tick %d", n)
		require.LessOrEqual(t, s.ScaleX, ScaleMax+scaleEpsilon, "tick %d", n)

		// the step taken on tick n follows the direction held before it
		if prevGrowing {
			require.Greater(t, s.ScaleX, prev, "tick %d", n)
		} else {
			require.Less(t, s.ScaleX, prev, "tick %d", n)
		}

		prev = s.ScaleX
		prevGrowing = s.Growing
	}
}

func TestPulsationAsymmetry(t *testing.T) {
	s := NewAnimationState()

	var flips []int
	for n := 1; n <= 400; n++ {
		before := s.Growing
		s.Advance(0)
		if s.Growing != before {
			flips = append(flips, n)
		}
	}

	require.GreaterOrEqual(t, len(flips), 3)
	assert.Equal(t, 50, flips[0], "ascent from 1.0")
	assert.Equal(t, 100, flips[1]-flips[0], "first descent")
	assert.Equal(t, 100, flips[2]-flips[1], "second ascent")
}

func TestAngleDecreases(t *testing.T) {
	s := NewAnimationState()

	prev := s.Angle
	for n := 1; n <= 1000; n++ {
		s.Advance(0)
		assert.InDelta(t, -AngleStep*float64(n), s.Angle, 1e-9)
		assert.Less(t, s.Angle, prev)
		prev = s.Angle
	}
}

func TestElapsedTimeInSeconds(t *testing.T) {
	s := NewAnimationState()

	s.Advance(1500)
	assert.InDelta(t, 1.5, s.ElapsedTime, 1e-12)

	s.Advance(16)
	assert.InDelta(t, 0.016, s.ElapsedTime, 1e-12)
}
