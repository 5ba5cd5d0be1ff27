package main

import (
	"image/color"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glowquad/misc"
	"glowquad/render"
)

func TestMain(m *testing.M) {
	restore := misc.SilenceLoggers(io.Discard)
	code := m.Run()
	restore()
	os.Exit(code)
}

func TestClipToScreen(t *testing.T) {
	x, y := ClipToScreen(-1, 1, 800, 600)
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	x, y = ClipToScreen(1, -1, 800, 600)
	assert.Equal(t, float32(800), x)
	assert.Equal(t, float32(600), y)

	x, y = ClipToScreen(0, 0, 800, 600)
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)
}

func TestBuildVerticesCoversQuad(t *testing.T) {
	r := &GlowRenderer{}
	s := render.NewAnimationState()
	s.PointerX, s.PointerY = 0, 0

	r.buildVertices(s, 800, 600)

	// identity transform
	for i, v := range r.vertices {
		wantX, wantY := ClipToScreen(render.QuadVertices[i*2], render.QuadVertices[i*2+1], 800, 600)
		assert.InDelta(t, wantX, v.DstX, 1e-3, "vertex %d", i)
		assert.InDelta(t, wantY, v.DstY, 1e-3, "vertex %d", i)
		assert.Equal(t, float32(1), v.ColorA)
	}
}

func TestBuildVerticesFollowsScale(t *testing.T) {
	r := &GlowRenderer{}
	s := render.NewAnimationState()
	s.PointerX, s.PointerY = 0, 0
	s.ScaleX, s.ScaleY = 0.5, 0.5

	r.buildVertices(s, 800, 600)

	assert.InDelta(t, 300, r.vertices[0].DstX, 1e-3)
	assert.InDelta(t, 225, r.vertices[0].DstY, 1e-3)
}

func TestFrameHistoryAverage(t *testing.T) {
	h := NewFrameHistory()
	assert.Equal(t, 0.0, h.AverageFrameMs())

	h.Record(0)
	assert.Equal(t, 0.0, h.AverageFrameMs())

	h.Record(16)
	h.Record(32)
	h.Record(48)
	assert.InDelta(t, 16, h.AverageFrameMs(), 1e-9)
}

func TestFrameHistoryWrapsAround(t *testing.T) {
	h := NewFrameHistory()
	for i := 0; i < FrameHistorySize*3; i++ {
		h.Record(float64(i) * 10)
	}

	require.True(t, h.Timestamps.IsFull())
	assert.Equal(t, float64(FrameHistorySize*2)*10, h.Timestamps.PeekFirst())
	assert.Equal(t, float64(FrameHistorySize*3-1)*10, h.Timestamps.PeekLast())
	assert.InDelta(t, 10, h.AverageFrameMs(), 1e-9)
}

func TestCircularQueue(t *testing.T) {
	q := NewCircularQueue[int](3)
	assert.True(t, q.IsEmpty())

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	q.Enqueue(4)

	assert.Equal(t, 3, q.Length)
	assert.Equal(t, 2, q.At(0))
	assert.Equal(t, 3, q.At(1))
	assert.Equal(t, 4, q.At(2))

	q.Clear()
	assert.True(t, q.IsEmpty())
}

func TestRGBAToColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, RGBAToColor([4]float32{0, 0, 0, 1}))
	assert.Equal(t, color.NRGBA{255, 128, 0, 255}, RGBAToColor([4]float32{1, 0.5, 0, 1}))
	assert.Equal(t, color.NRGBA{255, 0, 0, 0}, RGBAToColor([4]float32{2, -1, 0, 0}))
}

func TestDebugText(t *testing.T) {
	ClearDebugMsgs()
	defer ClearDebugMsgs()

	DebugPrint("FPS", "60.00")
	DebugPrintf("angle", "%.2f", -0.02)
	DebugPrint("FPS", "59.00")

	lines := strings.Split(DebugText(), "\n")
	assert.Equal(t, []string{"FPS: 59.00", "angle: -0.02"}, lines)
}

func TestScreenRect(t *testing.T) {
	s := render.NewAnimationState()
	pt := render.NewPointerTracker(s, nil, false)

	require.True(t, pt.Move(800, 0, ScreenRect(800, 600)))
	assert.InDelta(t, 1, s.PointerX, 1e-9)
	assert.InDelta(t, 1, s.PointerY, 1e-9)

	assert.False(t, pt.Move(10, 10, ScreenRect(0, 600)))
}
