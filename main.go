package main

import (
	"flag"
	"fmt"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"glowquad/config"
	"glowquad/misc"
	"glowquad/render"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 600
)

var PprofEnabled bool

var (
	FlagConfig       string
	FlagClampPointer bool
	FlagDebug        bool
)

func init() {
	flag.StringVar(&FlagConfig, "config", config.DefaultFilename, "config file")
	flag.BoolVar(&FlagClampPointer, "clamp-pointer", false, "clamp pointer to the window")
	flag.BoolVar(&FlagDebug, "debug", false, "show debug console")
}

type App struct {
	ShowDebugConsole bool
	WantScreenshot   bool

	// set when the shader failed to compile, nothing animates then
	StartError error

	Clock   FrameClock
	Frames  render.Stepper
	History FrameHistory

	State     *render.AnimationState
	Renderer  *GlowRenderer
	Scheduler *render.Scheduler
	Pointer   *render.PointerTracker
}

func NewApp(conf config.Config) *App {
	a := new(App)
	a.ShowDebugConsole = conf.ShowDebug
	a.History = NewFrameHistory()
	a.State = render.NewAnimationState()

	clearColor, err := conf.ClearRGBA()
	if err != nil {
		a.StartError = err
		return a
	}

	timer := NewProfTimer("compile glow shader")
	shader, err := LoadGlowShader(glowShaderSource)
	timer.Report()
	if err != nil {
		misc.ErrLogger.Print(err)
		a.StartError = err
		return a
	}

	a.Renderer = NewGlowRenderer(shader, RGBAToColor(clearColor))
	a.Scheduler = render.NewScheduler(a.State, a.Renderer, &a.Frames)
	// ebiten pushes uniforms every draw, no sink needed
	a.Pointer = render.NewPointerTracker(a.State, nil, conf.ClampPointer)

	a.Scheduler.Start()

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	UpdateInput()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)

	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if a.StartError != nil {
		return nil
	}

	if CursorMoved() {
		x, y := CursorPosition()
		a.Pointer.Move(x, y, ScreenRect(ScreenWidth, ScreenHeight))
	}

	if IsKeyJustPressed(CopyStateKey) {
		ClipboardWriteText(a.State.String())
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.WantScreenshot = true
	}

	DebugPrint("scheduler", a.Scheduler.State())
	DebugPrint("frames", a.Scheduler.Ticks())
	DebugPrintf("frame ms", "%.2f", a.History.AverageFrameMs())
	DebugPrintf("angle", "%.4f", a.State.Angle)
	DebugPrintf("scale", "%.4f", a.State.ScaleX)
	DebugPrintf("pointer", "%.3f, %.3f", a.State.PointerX, a.State.PointerY)
	if PprofEnabled {
		DebugPrint("pprof", "localhost:6060")
	}

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	if a.StartError != nil {
		ebitenutil.DebugPrint(dst, a.StartError.Error())
		return
	}

	now := a.Clock.NowMs()

	a.Renderer.Target = dst
	if a.Frames.Step(now) {
		a.History.Record(now)
	}
	a.Renderer.Target = nil

	// before the console goes on top
	if a.WantScreenshot {
		a.WantScreenshot = false
		if name, err := TakeScreenshot(dst); err != nil {
			misc.ErrLogger.Printf("failed to take screenshot: %v", err)
		} else {
			misc.InfoLogger.Printf("saved %s", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = float64(outsideWidth)
	ScreenHeight = float64(outsideHeight)

	return outsideWidth, outsideHeight
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
	if FlagDebug {
		conf.ShowDebug = true
	}

	ScreenWidth = float64(conf.Width)
	ScreenHeight = float64(conf.Height)

	InitClipboardManager()

	app := NewApp(conf)

	eb.SetVsyncEnabled(conf.Vsync)
	eb.SetWindowSize(conf.Width, conf.Height)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle(conf.Title)

	if err := eb.RunGame(app); err != nil {
		misc.ErrLogger.Fatal(err)
	}
}
