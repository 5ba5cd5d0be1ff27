//go:build js && wasm

// Command web runs glowquad in the browser on a WebGL canvas.
//
// The page must contain <canvas id="glow-canvas">. Query parameters
// clearColor and clampPointer override the defaults.
package main

import (
	"syscall/js"

	"glowquad/config"
	"glowquad/misc"
	"glowquad/render"
	"glowquad/webgl"
)

const CanvasID = "glow-canvas"

// animationFrames requests frames with window.requestAnimationFrame.
type animationFrames struct {
	window  js.Value
	onFrame js.Func
	pending func(float64)
}

func newAnimationFrames() *animationFrames {
	f := &animationFrames{window: js.Global()}
	f.onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := f.pending
		f.pending = nil
		if fn != nil {
			fn(args[0].Float())
		}
		return nil
	})
	return f
}

func (f *animationFrames) RequestNextFrame(fn func(float64)) {
	if f.pending == nil {
		f.window.Call("requestAnimationFrame", f.onFrame)
	}
	f.pending = fn
}

func configFromQuery() config.Config {
	conf := config.Default()

	params := js.Global().Get("URLSearchParams").New(js.Global().Get("location").Get("search"))
	if params.Call("has", "clearColor").Bool() {
		conf.ClearColor = params.Call("get", "clearColor").String()
	}
	if params.Call("has", "clampPointer").Bool() {
		conf.ClampPointer = params.Call("get", "clampPointer").String() == "true"
	}

	if err := conf.Validate(); err != nil {
		misc.WarnLogger.Printf("ignoring query: %v", err)
		return config.Default()
	}
	return conf
}

func main() {
	conf := configFromQuery()

	canvas := js.Global().Get("document").Call("getElementById", CanvasID)
	if !canvas.Truthy() {
		misc.ErrLogger.Printf("no canvas with id %q", CanvasID)
		return
	}

	glv := canvas.Call("getContext", "webgl")
	if !glv.Truthy() {
		misc.ErrLogger.Print("WebGL is not supported by this browser")
		return
	}

	opts := render.DefaultOptions()
	opts.ClampPointer = conf.ClampPointer
	opts.ClearColor, _ = conf.ClearRGBA()

	surface := render.SurfaceFunc(func() (int, int) {
		return canvas.Get("width").Int(), canvas.Get("height").Int()
	})

	glow, err := render.Start(webgl.New(glv), newAnimationFrames(), surface, opts)
	if err != nil {
		misc.ErrLogger.Print(err)
		return
	}

	onMouseMove := js.FuncOf(func(this js.Value, args []js.Value) any {
		event := args[0]
		bounds := canvas.Call("getBoundingClientRect")

		glow.Pointer.Move(
			event.Get("clientX").Float(),
			event.Get("clientY").Float(),
			render.Rect{
				Left:   bounds.Get("left").Float(),
				Top:    bounds.Get("top").Float(),
				Width:  bounds.Get("width").Float(),
				Height: bounds.Get("height").Float(),
			},
		)
		return nil
	})
	canvas.Call("addEventListener", "mousemove", onMouseMove)

	// callbacks run on this goroutine's event loop
	select {}
}
