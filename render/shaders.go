package render

import (
	_ "embed"
	"math"
)

var (
	//go:embed shaders/quad.vert
	VertexShaderSource string

	//go:embed shaders/quad.frag
	FragmentShaderSource string
)

// TransformVertices applies the vertex stage of quad.vert on the CPU,
// for hosts whose vertex stage is fixed. It appends clip space
// positions for src to dst.
func TransformVertices(dst, src []float32, s *AnimationState) []float32 {
	cosA := math.Cos(s.Angle + s.PointerX)
	sinA := math.Sin(s.Angle + s.PointerY)

	for i := 0; i+1 < len(src); i += ComponentsPerVertex {
		x, y := float64(src[i]), float64(src[i+1])

		rx := x*cosA - y*sinA
		ry := x*sinA + y*cosA

		dst = append(dst, float32(rx*s.ScaleX), float32(ry*s.ScaleY))
	}

	return dst
}
