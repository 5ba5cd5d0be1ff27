package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	CursorX, CursorY         int
	PrevCursorX, PrevCursorY int

	// set once the first position was read
	HasCursor bool

	TouchingBuf []eb.TouchID
}

func UpdateInput() {
	im := &TheInputManager

	im.PrevCursorX, im.PrevCursorY = im.CursorX, im.CursorY

	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])

	// a touch acts as the cursor while it lasts
	if len(im.TouchingBuf) > 0 {
		im.CursorX, im.CursorY = eb.TouchPosition(im.TouchingBuf[0])
	} else {
		im.CursorX, im.CursorY = eb.CursorPosition()
	}

	if !im.HasCursor {
		im.PrevCursorX, im.PrevCursorY = im.CursorX, im.CursorY
		im.HasCursor = true
	}
}

// CursorMoved reports whether the cursor moved since the previous UpdateInput.
func CursorMoved() bool {
	im := &TheInputManager
	return im.CursorX != im.PrevCursorX || im.CursorY != im.PrevCursorY
}

func CursorPosition() (float64, float64) {
	im := &TheInputManager
	return float64(im.CursorX), float64(im.CursorY)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}
