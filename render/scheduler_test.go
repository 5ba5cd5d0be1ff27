package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingDrawer struct {
	frames []AnimationState
}

func (d *countingDrawer) DrawFrame(s *AnimationState) {
	d.frames = append(d.frames, *s)
}

func TestSchedulerIdleUntilStarted(t *testing.T) {
	stepper := &Stepper{}
	drawer := &countingDrawer{}
	s := NewScheduler(NewAnimationState(), drawer, stepper)

	assert.Equal(t, SchedulerIdle, s.State())
	assert.False(t, stepper.Pending())

	s.Tick(16)
	assert.Empty(t, drawer.frames)

	s.Start()
	assert.Equal(t, SchedulerAnimating, s.State())
	assert.True(t, stepper.Pending())

	// a second Start does not register a second tick
	s.Start()
	assert.True(t, stepper.Step(0))
	assert.Len(t, drawer.frames, 1)
}

func TestSchedulerReschedulesEveryTick(t *testing.T) {
	stepper := &Stepper{}
	drawer := &countingDrawer{}
	s := NewScheduler(NewAnimationState(), drawer, stepper)
	s.Start()

	for i := 0; i < 120; i++ {
		require.True(t, stepper.Pending(), "frame %d", i)
		require.True(t, stepper.Step(float64(i)*16.6))
	}

	assert.True(t, stepper.Pending())
	assert.EqualValues(t, 120, s.Ticks())
	assert.Len(t, drawer.frames, 120)
}

func TestStepperWithoutPending(t *testing.T) {
	stepper := &Stepper{}
	assert.False(t, stepper.Step(0))
}

func TestStartScenario(t *testing.T) {
	ctx := newFakeContext()
	stepper := &Stepper{}

	app, err := Start(ctx, stepper, fixedSurface, DefaultOptions())
	require.NoError(t, err)
	require.True(t, app.Renderer.Program.Valid())
	require.True(t, app.Scheduler.Running())
	require.True(t, stepper.Pending())
	assert.Zero(t, ctx.draws)

	var angles, scales []float64
	for _, ms := range []float64{0, 16, 32} {
		angles = append(angles, app.State.Angle)
		scales = append(scales, app.State.ScaleX)
		require.True(t, stepper.Step(ms))
	}

	assert.InDeltaSlice(t, []float64{0, -0.02, -0.04}, angles, 1e-12)
	assert.InDeltaSlice(t, []float64{1.00, 1.01, 1.02}, scales, 1e-12)
	assert.InDelta(t, 0.032, app.State.ElapsedTime, 1e-12)
	assert.Equal(t, 3, ctx.draws)

	// every draw is preceded by a clear to opaque black
	var frameCalls []string
	for _, c := range ctx.calls {
		switch {
		case strings.HasPrefix(c, "clearColor"), c == "clear", strings.HasPrefix(c, "drawTriangles"):
			frameCalls = append(frameCalls, c)
		}
	}
	var expected []string
	for i := 0; i < 3; i++ {
		expected = append(expected, "clearColor(0, 0, 0, 1)", "clear", "drawTriangles(0, 6)")
	}
	assert.Equal(t, expected, frameCalls)

	assert.True(t, stepper.Pending())
}

func TestStartPushesStateBeforeDraw(t *testing.T) {
	ctx := newFakeContext()
	stepper := &Stepper{}

	app, err := Start(ctx, stepper, fixedSurface, DefaultOptions())
	require.NoError(t, err)

	app.Pointer.Move(200, 150, Rect{Width: 800, Height: 600})
	stepper.Step(1000)

	angle, _ := ctx.uniformValue1(UniformAngle)
	assert.InDelta(t, -0.02, angle, 1e-6)

	res, _ := ctx.uniformValue2(UniformResolution)
	assert.Equal(t, [2]float32{800, 600}, res)

	mouse, _ := ctx.uniformValue2(UniformPointer)
	assert.Equal(t, [2]float32{0.25, 0.75}, mouse)

	assert.Contains(t, ctx.calls, "viewport(0, 0, 800, 600)")
}

func TestPointerMovesBetweenFrames(t *testing.T) {
	ctx := newFakeContext()
	stepper := &Stepper{}

	app, err := Start(ctx, stepper, fixedSurface, DefaultOptions())
	require.NoError(t, err)

	rect := Rect{Width: 100, Height: 100}
	app.Pointer.Move(10, 10, rect)
	app.Pointer.Move(20, 20, rect)
	app.Pointer.Move(30, 70, rect)

	// the pointer uniform is written on every move
	rotation, _ := ctx.uniformValue2(UniformPointerRotation)
	assert.Equal(t, [2]float32{0.3, 0.3}, rotation)

	stepper.Step(16)
	stepper.Step(32)

	// no move between these two frames, the stored value is reused
	mouse, _ := ctx.uniformValue2(UniformPointer)
	assert.Equal(t, [2]float32{0.3, 0.3}, mouse)
	assert.Equal(t, 2, ctx.draws)
}

func TestStartCompileFailure(t *testing.T) {
	ctx := newFakeContext()
	stepper := &Stepper{}

	opts := DefaultOptions()
	opts.FragmentSource = "precision mediump float;\nvoid mian() {}\n"

	app, err := Start(ctx, stepper, fixedSurface, opts)
	require.Error(t, err)
	assert.Nil(t, app)

	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, FragmentStage, compileErr.Stage)

	assert.False(t, stepper.Pending())
	assert.False(t, stepper.Step(16))
	assert.Zero(t, ctx.draws)
	assert.Zero(t, ctx.called("createBuffer"))
}

func TestStartLinkFailure(t *testing.T) {
	ctx := newFakeContext()
	ctx.linkLog = "error: vertex and fragment precision mismatch"
	stepper := &Stepper{}

	_, err := Start(ctx, stepper, fixedSurface, DefaultOptions())

	var linkErr *ProgramLinkError
	require.True(t, errors.As(err, &linkErr))
	assert.False(t, stepper.Pending())
	assert.Zero(t, ctx.draws)
}

func TestStartClearColor(t *testing.T) {
	ctx := newFakeContext()
	stepper := &Stepper{}

	opts := DefaultOptions()
	opts.ClearColor = [4]float32{0.5, 0.25, 0, 1}

	_, err := Start(ctx, stepper, fixedSurface, opts)
	require.NoError(t, err)
	stepper.Step(0)

	assert.Contains(t, ctx.calls, "clearColor(0.5, 0.25, 0, 1)")
}
