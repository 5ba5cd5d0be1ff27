package render

// Stage is a programmable shader stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// Handles handed out by a Context. A zero Value is never a live object.
type (
	Shader  struct{ Value uint32 }
	Program struct{ Value uint32 }
	Buffer  struct{ Value uint32 }
)

// Attrib and Uniform locations are negative when the name is unknown
// to the linked program.
type (
	Attrib  struct{ Value int32 }
	Uniform struct{ Value int32 }
)

func (p Program) Valid() bool { return p.Value != 0 }

// Context is the part of a GL ES 2 / WebGL 1 context the renderer drives.
//
// Buffers are always ARRAY_BUFFER, uploads are always STATIC_DRAW
// and attribute data is always tightly packed float32.
type Context interface {
	CreateShader(stage Stage) Shader
	ShaderSource(s Shader, src string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)

	CreateBuffer() Buffer
	BindBuffer(b Buffer)
	BufferData(data []float32)

	AttribLocation(p Program, name string) Attrib
	EnableVertexAttribArray(a Attrib)
	VertexAttribPointer(a Attrib, size int)

	UniformLocation(p Program, name string) Uniform
	Uniform1f(u Uniform, v float32)
	Uniform2f(u Uniform, x, y float32)

	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear()
	DrawTriangles(first, count int)
}

// Surface reports the drawable size in pixels.
type Surface interface {
	Size() (width, height int)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func() (int, int)

func (f SurfaceFunc) Size() (int, int) { return f() }
