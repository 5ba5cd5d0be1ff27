package main

import (
	_ "embed"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"

	"glowquad/render"
)

//go:embed assets/glow_shader.go
var glowShaderSource []byte

var quadIndices = []uint16{0, 1, 2, 3, 4, 5}

// LoadGlowShader compiles the Kage port of the glow fragment stage.
// Ebiten's vertex stage is fixed, the quad is transformed on the CPU instead.
func LoadGlowShader(src []byte) (*eb.Shader, error) {
	shader, err := eb.NewShader(src)
	if err != nil {
		return nil, &render.ShaderCompileError{
			Stage: render.FragmentStage,
			Log:   err.Error(),
		}
	}

	return shader, nil
}

// GlowRenderer draws one frame into Target, which the host sets
// for the duration of Draw.
type GlowRenderer struct {
	Shader     *eb.Shader
	ClearColor color.Color

	Target *eb.Image

	clip     []float32
	vertices [render.QuadVertexCount]eb.Vertex
	uniforms map[string]any
}

func NewGlowRenderer(shader *eb.Shader, clearColor color.Color) *GlowRenderer {
	return &GlowRenderer{
		Shader:     shader,
		ClearColor: clearColor,
		uniforms:   make(map[string]any),
	}
}

// ClipToScreen maps a clip space position to pixels, origin top-left.
func ClipToScreen(x, y float32, width, height float32) (float32, float32) {
	return (x + 1) * 0.5 * width, (1 - y) * 0.5 * height
}

func (r *GlowRenderer) buildVertices(s *render.AnimationState, width, height float32) {
	r.clip = render.TransformVertices(r.clip[:0], render.QuadVertices[:], s)

	for i := range r.vertices {
		x, y := ClipToScreen(r.clip[i*2], r.clip[i*2+1], width, height)
		r.vertices[i] = eb.Vertex{
			DstX:   x,
			DstY:   y,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
}

func (r *GlowRenderer) DrawFrame(s *render.AnimationState) {
	dst := r.Target
	if dst == nil {
		return
	}

	width := float32(dst.Bounds().Dx())
	height := float32(dst.Bounds().Dy())

	dst.Fill(r.ClearColor)

	r.buildVertices(s, width, height)

	r.uniforms["Time"] = float32(s.ElapsedTime)
	r.uniforms["Mouse"] = []float32{float32(s.PointerX), float32(s.PointerY)}
	r.uniforms["Resolution"] = []float32{width, height}

	DrawTrianglesShader(dst, r.vertices[:], quadIndices, r.Shader, &DrawTrianglesShaderOptions{
		Uniforms: r.uniforms,
	})
}
