package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

var TheGraphicsContext struct {
	Blend     eb.Blend
	AntiAlias bool
}

func init() {
	ctx := &TheGraphicsContext

	ctx.Blend = eb.Blend{}
	ctx.AntiAlias = true
}

type DrawTrianglesShaderOptions struct {
	Uniforms map[string]any

	Images [4]*eb.Image

	FillRule eb.FillRule
}

func DrawTrianglesShader(
	dst *eb.Image,
	vertices []eb.Vertex, indices []uint16,
	shader *eb.Shader,
	options *DrawTrianglesShaderOptions,
) {
	if options == nil {
		options = &DrawTrianglesShaderOptions{}
	}
	op := &eb.DrawTrianglesShaderOptions{}
	op.Blend = TheGraphicsContext.Blend
	op.Uniforms = options.Uniforms
	op.Images = options.Images
	op.FillRule = options.FillRule
	op.AntiAlias = TheGraphicsContext.AntiAlias

	dst.DrawTrianglesShader(vertices, indices, shader, op)
}
