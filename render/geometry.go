package render

import (
	"glowquad/misc"
)

const (
	PositionAttrib = "a_position"

	ComponentsPerVertex = 2
	QuadVertexCount     = 6
)

// QuadVertices is the quad as two triangles, (x, y) per vertex.
var QuadVertices = [QuadVertexCount * ComponentsPerVertex]float32{
	-0.5, 0.5,
	0.5, 0.5,
	-0.5, -0.5,

	0.5, 0.5,
	0.5, -0.5,
	-0.5, -0.5,
}

// Geometry is a vertex buffer that was uploaded once and bound
// to the position attribute of a program.
type Geometry struct {
	Buffer      Buffer
	Attrib      Attrib
	VertexCount int
}

// UploadGeometry uploads vertices and binds the attribute layout.
// It must run once, after the program is linked and before any draw.
func UploadGeometry(ctx Context, program Program, attribName string, vertices []float32) *Geometry {
	g := &Geometry{
		VertexCount: len(vertices) / ComponentsPerVertex,
	}

	g.Buffer = ctx.CreateBuffer()
	ctx.BindBuffer(g.Buffer)
	ctx.BufferData(vertices)

	g.Attrib = ctx.AttribLocation(program, attribName)
	if g.Attrib.Value < 0 {
		misc.WarnLogger.Printf("attribute %q is not used by program %d", attribName, program.Value)
		return g
	}

	ctx.EnableVertexAttribArray(g.Attrib)
	ctx.VertexAttribPointer(g.Attrib, ComponentsPerVertex)

	return g
}
