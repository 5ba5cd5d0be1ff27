package render

import (
	"fmt"

	"glowquad/misc"
)

type Options struct {
	VertexSource   string
	FragmentSource string

	ClearColor [4]float32

	// clamp normalized pointer positions to [0, 1]
	ClampPointer bool
}

func DefaultOptions() Options {
	return Options{
		VertexSource:   VertexShaderSource,
		FragmentSource: FragmentShaderSource,
		ClearColor:     [4]float32{0, 0, 0, 1},
	}
}

// GLRenderer draws the quad with a linked program through a Context.
type GLRenderer struct {
	Context    Context
	Program    Program
	Geometry   *Geometry
	Uniforms   *Uniforms
	Surface    Surface
	ClearColor [4]float32
}

func (r *GLRenderer) DrawFrame(s *AnimationState) {
	ctx := r.Context
	w, h := r.Surface.Size()

	ctx.Viewport(0, 0, w, h)
	ctx.UseProgram(r.Program)

	r.Uniforms.Push(s)
	r.Uniforms.Resolution.Set2f(ctx, float64(w), float64(h))
	r.Uniforms.Translation.Set2f(ctx, 0, 0)

	c := r.ClearColor
	ctx.ClearColor(c[0], c[1], c[2], c[3])
	ctx.Clear()

	ctx.DrawTriangles(0, r.Geometry.VertexCount)
}

// App is a started renderer. Hosts feed pointer moves to Pointer;
// everything else runs off the frame requester.
type App struct {
	State     *AnimationState
	Renderer  *GLRenderer
	Scheduler *Scheduler
	Pointer   *PointerTracker
}

// Start compiles the program, uploads the quad and starts the scheduler.
//
// On a compile or link error nothing is drawn and no frame is requested.
func Start(ctx Context, frames FrameRequester, surface Surface, opts Options) (*App, error) {
	program, err := CompileProgram(ctx, opts.VertexSource, opts.FragmentSource)
	if err != nil {
		misc.ErrLogger.Print("renderer not started")
		return nil, fmt.Errorf("render: %w", err)
	}

	geometry := UploadGeometry(ctx, program, PositionAttrib, QuadVertices[:])

	ctx.UseProgram(program)
	uniforms := ResolveUniforms(ctx, program)

	state := NewAnimationState()

	r := &GLRenderer{
		Context:    ctx,
		Program:    program,
		Geometry:   geometry,
		Uniforms:   uniforms,
		Surface:    surface,
		ClearColor: opts.ClearColor,
	}

	app := &App{
		State:     state,
		Renderer:  r,
		Scheduler: NewScheduler(state, r, frames),
		Pointer:   NewPointerTracker(state, uniforms, opts.ClampPointer),
	}

	app.Scheduler.Start()
	misc.InfoLogger.Print("renderer started")

	return app, nil
}
