//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Time float
var Mouse vec2
var Resolution vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	pos := dstPos.xy - imageDstOrigin()

	// Mouse has its origin at the bottom left
	uv := vec2(pos.x, Resolution.y-pos.y) / Resolution
	dist := distance(uv, Mouse)

	glow := exp(-10 * dist)

	return vec4(glow, glow*0.5, glow*sin(Time), 1)
}
