//go:build !js && (windows || cgo)

package main

import (
	"golang.design/x/clipboard"

	"glowquad/misc"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	misc.InfoLogger.Print("initializing clipboard")
	err := clipboard.Init()
	if err != nil {
		misc.WarnLogger.Printf("clipboard is disabled: %v", err)
	}
	cm.Initialized = err == nil
}

func ClipboardWriteText(str string) {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
	}
}
