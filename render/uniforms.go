package render

import (
	"glowquad/misc"
)

const (
	UniformAngle           = "u_angle"
	UniformScale           = "u_scale"
	UniformTime            = "u_time"
	UniformPointer         = "u_mouse"
	UniformPointerRotation = "u_mouserotation"
	UniformResolution      = "u_resolution"
	UniformTranslation     = "u_translation"
)

// Location is a resolved uniform, or Unbound when the program
// does not know the name. Writes to Unbound are dropped.
type Location struct {
	uniform Uniform
	bound   bool
}

var Unbound = Location{}

func (l Location) Bound() bool { return l.bound }

func (l Location) Set1f(ctx Context, v float64) {
	if !l.bound {
		return
	}
	ctx.Uniform1f(l.uniform, float32(v))
}

func (l Location) Set2f(ctx Context, x, y float64) {
	if !l.bound {
		return
	}
	ctx.Uniform2f(l.uniform, float32(x), float32(y))
}

// ResolveLocation looks name up once. A miss is logged and yields Unbound.
func ResolveLocation(ctx Context, program Program, name string) Location {
	u := ctx.UniformLocation(program, name)
	if u.Value < 0 {
		misc.WarnLogger.Printf("uniform %q is not active in program %d, writes to it are skipped", name, program.Value)
		return Unbound
	}
	return Location{uniform: u, bound: true}
}

// Uniforms is the set of shader parameters pushed every frame.
type Uniforms struct {
	ctx Context

	Angle           Location
	Scale           Location
	Time            Location
	Pointer         Location
	PointerRotation Location
	Resolution      Location
	Translation     Location
}

func ResolveUniforms(ctx Context, program Program) *Uniforms {
	return &Uniforms{
		ctx:             ctx,
		Angle:           ResolveLocation(ctx, program, UniformAngle),
		Scale:           ResolveLocation(ctx, program, UniformScale),
		Time:            ResolveLocation(ctx, program, UniformTime),
		Pointer:         ResolveLocation(ctx, program, UniformPointer),
		PointerRotation: ResolveLocation(ctx, program, UniformPointerRotation),
		Resolution:      ResolveLocation(ctx, program, UniformResolution),
		Translation:     ResolveLocation(ctx, program, UniformTranslation),
	}
}

// Push writes the current state. The program must be in use.
func (u *Uniforms) Push(s *AnimationState) {
	u.Time.Set1f(u.ctx, s.ElapsedTime)
	u.Angle.Set1f(u.ctx, s.Angle)
	u.Scale.Set2f(u.ctx, s.ScaleX, s.ScaleY)
	u.PushPointer(s.PointerX, s.PointerY)
}

// PushPointer writes both pointer uniforms from the same pair.
func (u *Uniforms) PushPointer(x, y float64) {
	u.Pointer.Set2f(u.ctx, x, y)
	u.PointerRotation.Set2f(u.ctx, x, y)
}
