//go:build js && wasm

// Package webgl drives the renderer through a browser WebGL 1 context.
package webgl

import (
	"syscall/js"

	"glowquad/render"
)

type glConsts struct {
	arrayBuffer    int
	staticDraw     int
	floatType      int
	triangles      int
	colorBufferBit int
	compileStatus  int
	linkStatus     int
	vertexShader   int
	fragmentShader int
}

// Context wraps a WebGLRenderingContext. JS objects are kept in a table
// and handed to the renderer as small integer handles.
type Context struct {
	gl     js.Value
	consts glConsts

	objects  map[uint32]js.Value
	nextID   uint32
	uniforms []js.Value
}

var _ render.Context = (*Context)(nil)

func New(gl js.Value) *Context {
	c := &Context{
		gl:      gl,
		objects: make(map[uint32]js.Value),
	}
	c.initConsts()
	return c
}

func (c *Context) initConsts() {
	c.consts = glConsts{
		arrayBuffer:    c.gl.Get("ARRAY_BUFFER").Int(),
		staticDraw:     c.gl.Get("STATIC_DRAW").Int(),
		floatType:      c.gl.Get("FLOAT").Int(),
		triangles:      c.gl.Get("TRIANGLES").Int(),
		colorBufferBit: c.gl.Get("COLOR_BUFFER_BIT").Int(),
		compileStatus:  c.gl.Get("COMPILE_STATUS").Int(),
		linkStatus:     c.gl.Get("LINK_STATUS").Int(),
		vertexShader:   c.gl.Get("VERTEX_SHADER").Int(),
		fragmentShader: c.gl.Get("FRAGMENT_SHADER").Int(),
	}
}

func (c *Context) put(v js.Value) uint32 {
	if !v.Truthy() {
		return 0
	}
	c.nextID++
	c.objects[c.nextID] = v
	return c.nextID
}

func (c *Context) get(id uint32) js.Value {
	if v, ok := c.objects[id]; ok {
		return v
	}
	return js.Null()
}

func (c *Context) drop(id uint32) js.Value {
	v := c.get(id)
	delete(c.objects, id)
	return v
}

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func (c *Context) CreateShader(stage render.Stage) render.Shader {
	ty := c.consts.vertexShader
	if stage == render.FragmentStage {
		ty = c.consts.fragmentShader
	}
	return render.Shader{Value: c.put(c.gl.Call("createShader", ty))}
}

func (c *Context) ShaderSource(s render.Shader, src string) {
	c.gl.Call("shaderSource", c.get(s.Value), src)
}

func (c *Context) CompileShader(s render.Shader) {
	c.gl.Call("compileShader", c.get(s.Value))
}

func (c *Context) ShaderCompiled(s render.Shader) bool {
	return c.gl.Call("getShaderParameter", c.get(s.Value), c.consts.compileStatus).Bool()
}

func (c *Context) ShaderInfoLog(s render.Shader) string {
	return c.gl.Call("getShaderInfoLog", c.get(s.Value)).String()
}

func (c *Context) DeleteShader(s render.Shader) {
	c.gl.Call("deleteShader", c.drop(s.Value))
}

func (c *Context) CreateProgram() render.Program {
	return render.Program{Value: c.put(c.gl.Call("createProgram"))}
}

func (c *Context) AttachShader(p render.Program, s render.Shader) {
	c.gl.Call("attachShader", c.get(p.Value), c.get(s.Value))
}

func (c *Context) LinkProgram(p render.Program) {
	c.gl.Call("linkProgram", c.get(p.Value))
}

func (c *Context) ProgramLinked(p render.Program) bool {
	return c.gl.Call("getProgramParameter", c.get(p.Value), c.consts.linkStatus).Bool()
}

func (c *Context) ProgramInfoLog(p render.Program) string {
	return c.gl.Call("getProgramInfoLog", c.get(p.Value)).String()
}

func (c *Context) DeleteProgram(p render.Program) {
	c.gl.Call("deleteProgram", c.drop(p.Value))
}

func (c *Context) UseProgram(p render.Program) {
	c.gl.Call("useProgram", c.get(p.Value))
}

func (c *Context) CreateBuffer() render.Buffer {
	return render.Buffer{Value: c.put(c.gl.Call("createBuffer"))}
}

func (c *Context) BindBuffer(b render.Buffer) {
	c.gl.Call("bindBuffer", c.consts.arrayBuffer, c.get(b.Value))
}

func (c *Context) BufferData(data []float32) {
	c.gl.Call("bufferData", c.consts.arrayBuffer, float32Array(data), c.consts.staticDraw)
}

func (c *Context) AttribLocation(p render.Program, name string) render.Attrib {
	return render.Attrib{Value: int32(c.gl.Call("getAttribLocation", c.get(p.Value), name).Int())}
}

func (c *Context) EnableVertexAttribArray(a render.Attrib) {
	c.gl.Call("enableVertexAttribArray", a.Value)
}

func (c *Context) VertexAttribPointer(a render.Attrib, size int) {
	c.gl.Call("vertexAttribPointer", a.Value, size, c.consts.floatType, false, 0, 0)
}

func (c *Context) UniformLocation(p render.Program, name string) render.Uniform {
	loc := c.gl.Call("getUniformLocation", c.get(p.Value), name)
	if loc.IsNull() || loc.IsUndefined() {
		return render.Uniform{Value: -1}
	}
	c.uniforms = append(c.uniforms, loc)
	return render.Uniform{Value: int32(len(c.uniforms) - 1)}
}

func (c *Context) uniform(u render.Uniform) js.Value {
	if u.Value < 0 || int(u.Value) >= len(c.uniforms) {
		return js.Null()
	}
	return c.uniforms[u.Value]
}

func (c *Context) Uniform1f(u render.Uniform, v float32) {
	c.gl.Call("uniform1f", c.uniform(u), v)
}

func (c *Context) Uniform2f(u render.Uniform, x, y float32) {
	c.gl.Call("uniform2f", c.uniform(u), x, y)
}

func (c *Context) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear() {
	c.gl.Call("clear", c.consts.colorBufferBit)
}

func (c *Context) DrawTriangles(first, count int) {
	c.gl.Call("drawArrays", c.consts.triangles, first, count)
}
