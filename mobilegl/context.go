//go:build darwin || linux || openbsd || windows

// Package mobilegl drives the renderer through a golang.org/x/mobile/gl context.
package mobilegl

import (
	"encoding/binary"

	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/gl"

	"glowquad/render"
)

type Context struct {
	gl gl.Context
}

var _ render.Context = (*Context)(nil)

func New(glctx gl.Context) *Context {
	return &Context{gl: glctx}
}

func shaderType(stage render.Stage) gl.Enum {
	if stage == render.FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func program(p render.Program) gl.Program {
	return gl.Program{Init: true, Value: p.Value}
}

func (c *Context) CreateShader(stage render.Stage) render.Shader {
	return render.Shader{Value: c.gl.CreateShader(shaderType(stage)).Value}
}

func (c *Context) ShaderSource(s render.Shader, src string) {
	c.gl.ShaderSource(gl.Shader{Value: s.Value}, src)
}

func (c *Context) CompileShader(s render.Shader) {
	c.gl.CompileShader(gl.Shader{Value: s.Value})
}

func (c *Context) ShaderCompiled(s render.Shader) bool {
	return c.gl.GetShaderi(gl.Shader{Value: s.Value}, gl.COMPILE_STATUS) != 0
}

func (c *Context) ShaderInfoLog(s render.Shader) string {
	return c.gl.GetShaderInfoLog(gl.Shader{Value: s.Value})
}

func (c *Context) DeleteShader(s render.Shader) {
	c.gl.DeleteShader(gl.Shader{Value: s.Value})
}

func (c *Context) CreateProgram() render.Program {
	return render.Program{Value: c.gl.CreateProgram().Value}
}

func (c *Context) AttachShader(p render.Program, s render.Shader) {
	c.gl.AttachShader(program(p), gl.Shader{Value: s.Value})
}

func (c *Context) LinkProgram(p render.Program) {
	c.gl.LinkProgram(program(p))
}

func (c *Context) ProgramLinked(p render.Program) bool {
	return c.gl.GetProgrami(program(p), gl.LINK_STATUS) != 0
}

func (c *Context) ProgramInfoLog(p render.Program) string {
	return c.gl.GetProgramInfoLog(program(p))
}

func (c *Context) DeleteProgram(p render.Program) {
	c.gl.DeleteProgram(program(p))
}

func (c *Context) UseProgram(p render.Program) {
	c.gl.UseProgram(program(p))
}

func (c *Context) CreateBuffer() render.Buffer {
	return render.Buffer{Value: c.gl.CreateBuffer().Value}
}

func (c *Context) BindBuffer(b render.Buffer) {
	c.gl.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{Value: b.Value})
}

func (c *Context) BufferData(data []float32) {
	c.gl.BufferData(gl.ARRAY_BUFFER, f32.Bytes(binary.LittleEndian, data...), gl.STATIC_DRAW)
}

func (c *Context) AttribLocation(p render.Program, name string) render.Attrib {
	// -1 comes back wrapped in an unsigned value
	a := c.gl.GetAttribLocation(program(p), name)
	return render.Attrib{Value: int32(a.Value)}
}

func (c *Context) EnableVertexAttribArray(a render.Attrib) {
	c.gl.EnableVertexAttribArray(gl.Attrib{Value: uint(a.Value)})
}

func (c *Context) VertexAttribPointer(a render.Attrib, size int) {
	c.gl.VertexAttribPointer(gl.Attrib{Value: uint(a.Value)}, size, gl.FLOAT, false, 0, 0)
}

func (c *Context) UniformLocation(p render.Program, name string) render.Uniform {
	return render.Uniform{Value: c.gl.GetUniformLocation(program(p), name).Value}
}

func (c *Context) Uniform1f(u render.Uniform, v float32) {
	c.gl.Uniform1f(gl.Uniform{Value: u.Value}, v)
}

func (c *Context) Uniform2f(u render.Uniform, x, y float32) {
	c.gl.Uniform2f(gl.Uniform{Value: u.Value}, x, y)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear() {
	c.gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *Context) DrawTriangles(first, count int) {
	c.gl.DrawArrays(gl.TRIANGLES, first, count)
}
