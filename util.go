package main

import (
	"image/color"

	"glowquad/render"
)

// ScreenRect is the pointer rect of a window whose client area starts at the origin.
func ScreenRect(width, height float64) render.Rect {
	return render.Rect{Width: width, Height: height}
}

func RGBAToColor(c [4]float32) color.NRGBA {
	return color.NRGBA{
		R: uint8(render.Clamp(c[0], 0, 1)*255 + 0.5),
		G: uint8(render.Clamp(c[1], 0, 1)*255 + 0.5),
		B: uint8(render.Clamp(c[2], 0, 1)*255 + 0.5),
		A: uint8(render.Clamp(c[3], 0, 1)*255 + 0.5),
	}
}
