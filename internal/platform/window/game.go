// Package window runs the starfield in a desktop window through Ebitengine.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/starfield/internal/config"
	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/driver"
	"github.com/vovakirdan/starfield/internal/random"
	"github.com/vovakirdan/starfield/internal/starfield"
)

// Options configures the window host.
type Options struct {
	Config  config.Config
	Preset  config.Preset
	FPS     int                // --fps override kept across reloads, 0 for none
	Runtime core.RuntimeConfig // ScreenW and ScreenH are the initial window size in pixels
	Logger  *log.Logger
	Watcher *config.Watcher // optional live reload
}

var background = color.RGBA{R: 0x0b, G: 0x0d, B: 0x17, A: 0xff}

// Game implements ebiten.Game. One viewport unit is one pixel.
type Game struct {
	opts Options
	log  *log.Logger

	sim    *starfield.Simulator
	drv    *driver.Driver
	canvas *Canvas

	w, h int
	last core.StepResult
}

// NewGame creates the simulation. The canvas is created on the first Layout.
func NewGame(opts Options) (*Game, error) {
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	opts.Runtime = rc
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	params, idx, err := opts.Config.Scene()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	vp := core.NewViewport(0, 0, float64(rc.ScreenW), float64(rc.ScreenH))
	sim := starfield.New(params, vp, random.New(rc.Seed))
	sim.SetIndex(idx)

	return &Game{
		opts: opts,
		log:  logger,
		sim:  sim,
	}, nil
}

// Update polls input and advances the simulation one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.pollConfig()
	if g.drv == nil {
		return nil // Layout has not run yet
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset(g.sim.Viewport())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		p := g.sim.Params()
		p.DrawStars = !p.DrawStars
		g.sim.Tune(p)
	}

	x, y := ebiten.CursorPosition()
	g.drv.MovePointer(float64(x), float64(y))
	g.last = g.drv.Tick()
	return nil
}

// Draw presents the offscreen canvas.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.canvas != nil {
		screen.DrawImage(g.canvas.Image(), nil)
	}
}

// Layout keeps one pixel per viewport unit and rebuilds the scene when the
// window size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	if outsideWidth != g.w || outsideHeight != g.h {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.w, g.h = w, h
	if g.canvas != nil {
		g.canvas.Image().Deallocate()
	}
	g.canvas = NewCanvas(ebiten.NewImage(w, h), 1)
	g.sim.Reset(core.NewViewport(0, 0, float64(w), float64(h)))

	if g.drv == nil {
		g.drv = driver.New(g.sim, g.canvas, nil)
		g.drv.SetMaxDT(g.opts.Config.Timing.MaxDT)
	} else {
		g.drv.Retarget(g.canvas)
	}
	g.log.Debug("resized", "width", w, "height", h, "stars", g.sim.Len())
}

// pollConfig applies a pending reload without blocking the game loop.
func (g *Game) pollConfig() {
	if g.opts.Watcher == nil {
		return
	}
	select {
	case u, ok := <-g.opts.Watcher.Updates:
		if !ok {
			g.opts.Watcher = nil
			return
		}
		g.apply(u)
	default:
	}
}

func (g *Game) apply(u config.Update) {
	if u.Err != nil {
		g.log.Warn("config reload rejected", "err", u.Err)
		return
	}
	cfg := u.Config
	config.ApplyPreset(&cfg, g.opts.Preset)
	config.ApplyTickRate(&cfg, g.opts.FPS)
	params, idx, err := cfg.Scene()
	if err != nil {
		g.log.Warn("config reload rejected", "err", err)
		return
	}
	g.sim.Tune(params)
	g.sim.SetIndex(idx)
	if g.drv != nil {
		g.drv.SetMaxDT(cfg.Timing.MaxDT)
	}
	ebiten.SetTPS(cfg.Timing.TickRate)
	g.opts.Config = cfg
	g.log.Info("config reloaded", "threshold", params.LineThreshold, "tick_rate", cfg.Timing.TickRate)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = opts.Config.Timing.TickRate
	}
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	ebiten.SetWindowTitle("starfield")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g.log.Info("opening window", "width", opts.Runtime.ScreenW, "height", opts.Runtime.ScreenH, "tps", tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
