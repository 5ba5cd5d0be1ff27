//go:build darwin || linux

// Command mobile runs glowquad on a native GL ES context through
// golang.org/x/mobile. It builds as a desktop program on Linux and macOS,
// and with gomobile for Android and iOS:
//
//	$ go run ./cmd/mobile
//	$ gomobile build glowquad/cmd/mobile
package main

import (
	"flag"
	"time"

	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/gl"

	"glowquad/config"
	"glowquad/misc"
	"glowquad/mobilegl"
	"glowquad/render"
)

var (
	FlagConfig       string
	FlagClampPointer bool
)

func init() {
	flag.StringVar(&FlagConfig, "config", config.DefaultFilename, "config file")
	flag.BoolVar(&FlagClampPointer, "clamp-pointer", false, "clamp pointer to the surface")
}

type host struct {
	conf   config.Config
	frames render.Stepper
	size   size.Event
	start  time.Time

	// nil until the GL context is up and the program linked
	glow *render.App
}

func (h *host) surfaceSize() (int, int) {
	return h.size.WidthPx, h.size.HeightPx
}

func (h *host) onStart(glctx gl.Context) {
	opts := render.DefaultOptions()
	opts.ClampPointer = h.conf.ClampPointer

	clearColor, err := h.conf.ClearRGBA()
	if err != nil {
		misc.ErrLogger.Fatal(err)
	}
	opts.ClearColor = clearColor

	h.start = time.Now()

	glow, err := render.Start(mobilegl.New(glctx), &h.frames, render.SurfaceFunc(h.surfaceSize), opts)
	if err != nil {
		misc.ErrLogger.Printf("%v", err)
		return
	}
	h.glow = glow
}

func (h *host) onStop() {
	// the GL context is gone, so are the program and buffer
	h.glow = nil
	h.frames = render.Stepper{}
}

func (h *host) onPaint() {
	now := float64(time.Since(h.start).Microseconds()) / 1000
	h.frames.Step(now)
}

func (h *host) onTouch(e touch.Event) {
	if h.glow == nil || e.Type == touch.TypeEnd {
		return
	}

	rect := render.Rect{
		Width:  float64(h.size.WidthPx),
		Height: float64(h.size.HeightPx),
	}
	h.glow.Pointer.Move(float64(e.X), float64(e.Y), rect)
}

func main() {
	flag.Parse()

	conf, err := config.LoadOrDefault(FlagConfig)
	if err != nil {
		misc.ErrLogger.Fatal(err)
	}
	if FlagClampPointer {
		conf.ClampPointer = true
	}

	h := &host{conf: conf}

	app.Main(func(a app.App) {
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ := e.DrawContext.(gl.Context)
					h.onStart(glctx)
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					h.onStop()
				}
			case size.Event:
				h.size = e
			case paint.Event:
				if e.External || !h.frames.Pending() {
					// painting as fast as we can,
					// skip the paint events the system sends
					continue
				}

				h.onPaint()
				a.Publish()
				a.Send(paint.Event{})
			case touch.Event:
				h.onTouch(e)
			case key.Event:
				if e.Code == key.CodeS && e.Direction == key.DirPress {
					misc.InfoLogger.Print(h.glowState())
				}
			}
		}
	})
}

func (h *host) glowState() string {
	if h.glow == nil {
		return "renderer not running"
	}
	return h.glow.State.String()
}
