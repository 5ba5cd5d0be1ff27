package main

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager

	for i, msg := range dm.DebugMsgs {
		if msg.Key == key {
			dm.DebugMsgs[i].Value = value
			return
		}
	}

	dm.DebugMsgs = append(dm.DebugMsgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

// DebugText joins the messages one per line, in insertion order.
func DebugText() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	for i, msg := range dm.DebugMsgs {
		// builder doesn't actually errors out
		// no need to check error
		dm.builder.WriteString(msg.Key)
		dm.builder.WriteString(": ")
		dm.builder.WriteString(msg.Value)

		if i != len(dm.DebugMsgs)-1 {
			dm.builder.WriteString("\n")
		}
	}

	return dm.builder.String()
}

func DrawDebugMsgs(dst *eb.Image) {
	const hozMargin = 5
	const vertMargin = 5

	ebitenutil.DebugPrintAt(dst, DebugText(), hozMargin, vertMargin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
