// golang.design/x/clipboard thinks
// crashing is the best solution despite it having a
// Init funciton that returns an error...

//go:build js || (!windows && !cgo)

package main

import (
	"glowquad/misc"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	misc.InfoLogger.Print("initializing clipboard")
	misc.WarnLogger.Print("clipboard is disabled")
}

func ClipboardWriteText(str string) {
}
