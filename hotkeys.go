package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey eb.Key = eb.KeyF1

	CopyStateKey  eb.Key = eb.KeyC
	ScreenshotKey eb.Key = eb.KeyP
)
