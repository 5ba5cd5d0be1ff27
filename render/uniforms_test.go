package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkedProgram(t *testing.T, ctx *fakeContext) Program {
	t.Helper()
	program, err := CompileProgram(ctx, VertexShaderSource, FragmentShaderSource)
	require.NoError(t, err)
	ctx.UseProgram(program)
	return program
}

func TestUnboundLocationIsNoop(t *testing.T) {
	ctx := newFakeContext()

	Unbound.Set1f(ctx, 1)
	Unbound.Set2f(ctx, 1, 2)

	assert.False(t, Unbound.Bound())
	assert.Empty(t, ctx.calls)
}

func TestResolveUniforms(t *testing.T) {
	ctx := newFakeContext()
	program := linkedProgram(t, ctx)

	u := ResolveUniforms(ctx, program)

	assert.True(t, u.Angle.Bound())
	assert.True(t, u.Scale.Bound())
	assert.True(t, u.Time.Bound())
	assert.True(t, u.Pointer.Bound())
	assert.True(t, u.PointerRotation.Bound())
	assert.True(t, u.Resolution.Bound())

	// not declared by either stage
	assert.False(t, u.Translation.Bound())
}

func TestUniformsPush(t *testing.T) {
	ctx := newFakeContext()
	program := linkedProgram(t, ctx)
	u := ResolveUniforms(ctx, program)

	s := NewAnimationState()
	s.Angle = -0.5
	s.ScaleX, s.ScaleY = 1.25, 1.25
	s.ElapsedTime = 2
	s.PointerX, s.PointerY = 0.1, 0.9

	u.Push(s)

	angle, ok := ctx.uniformValue1(UniformAngle)
	require.True(t, ok)
	assert.Equal(t, float32(-0.5), angle)

	time, ok := ctx.uniformValue1(UniformTime)
	require.True(t, ok)
	assert.Equal(t, float32(2), time)

	scale, ok := ctx.uniformValue2(UniformScale)
	require.True(t, ok)
	assert.Equal(t, [2]float32{1.25, 1.25}, scale)

	for _, name := range []string{UniformPointer, UniformPointerRotation} {
		p, ok := ctx.uniformValue2(name)
		require.True(t, ok, name)
		assert.Equal(t, [2]float32{0.1, 0.9}, p, name)
	}
}

func TestUploadGeometry(t *testing.T) {
	ctx := newFakeContext()
	program := linkedProgram(t, ctx)

	g := UploadGeometry(ctx, program, PositionAttrib, QuadVertices[:])

	assert.Equal(t, QuadVertexCount, g.VertexCount)
	assert.Equal(t, g.Buffer, ctx.bound)
	require.Len(t, ctx.uploads, 1)
	assert.Equal(t, QuadVertices[:], ctx.uploads[0])
	assert.GreaterOrEqual(t, g.Attrib.Value, int32(0))
	assert.Equal(t, 1, ctx.called("enableVertexAttribArray"))
	assert.Equal(t, 1, ctx.called("vertexAttribPointer"))
	assert.Contains(t, ctx.calls, "vertexAttribPointer(0, 2)")
}

func TestUploadGeometryMissingAttrib(t *testing.T) {
	ctx := newFakeContext()
	program := linkedProgram(t, ctx)

	g := UploadGeometry(ctx, program, "a_missing", QuadVertices[:])

	assert.Equal(t, int32(-1), g.Attrib.Value)
	assert.Len(t, ctx.uploads, 1)
	assert.Zero(t, ctx.called("enableVertexAttribArray"))
}
