package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfield/internal/config"
	"github.com/vovakirdan/starfield/internal/core"
	"github.com/vovakirdan/starfield/internal/driver"
	"github.com/vovakirdan/starfield/internal/random"
	"github.com/vovakirdan/starfield/internal/starfield"
	"github.com/vovakirdan/starfield/internal/surface/raster"
)

// minDotAlpha is the pixel coverage needed to light a braille dot.
const minDotAlpha = 40

// ConfigMsg carries a reloaded configuration into the event loop.
type ConfigMsg config.Update

// Options configures the terminal host.
type Options struct {
	Config  config.Config
	Preset  config.Preset
	FPS     int // --fps override kept across reloads, 0 for none
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Watcher *config.Watcher // optional live reload
}

var statusStyle = lipgloss.NewStyle().Faint(true)

// Model is the Bubble Tea model running the starfield.
type Model struct {
	preset config.Preset
	fps    int
	rc     core.RuntimeConfig
	log    *log.Logger

	keys KeyMap
	help help.Model

	sim    *starfield.Simulator
	drv    *driver.Driver
	raster *raster.Raster
	screen *core.Screen

	last     core.StepResult
	paused   bool
	status   bool
	quitting bool
}

// NewModel creates the model and the first scene for the configured size.
func NewModel(opts Options) (Model, error) {
	rc := opts.Runtime
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = opts.Config.Timing.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	params, idx, err := opts.Config.Scene()
	if err != nil {
		return Model{}, fmt.Errorf("failed to build scene: %w", err)
	}

	w, h := viewportSize(rc.ScreenW, rc.ScreenH)
	sim := starfield.New(params, core.NewViewport(0, 0, w, h), random.New(rc.Seed))
	sim.SetIndex(idx)

	m := Model{
		preset: opts.Preset,
		fps:    opts.FPS,
		rc:     rc,
		log:    logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		sim:    sim,
		screen: core.NewScreen(rc.ScreenW, rc.ScreenH),
	}
	m.raster = newRaster(rc.ScreenW, rc.ScreenH)
	m.drv = driver.New(sim, m.raster, nil)
	m.drv.SetMaxDT(opts.Config.Timing.MaxDT)
	return m, nil
}

func newRaster(cols, rows int) *raster.Raster {
	r := raster.New(cols*dotsX, rows*dotsY, pixelScale)
	r.SetMinLineWidth(1)
	return r
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rc.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		p := cellToViewport(msg.X, msg.Y)
		m.drv.MovePointer(p.X, p.Y)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case ConfigMsg:
		return m.handleConfig(config.Update(msg))

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			// Resume without applying the paused time in one step.
			m.drv.Retarget(m.raster)
		}

	case key.Matches(msg, m.keys.Reset):
		m.sim.Reset(m.sim.Viewport())
		m.log.Debug("scene reset", "stars", m.sim.Len())

	case key.Matches(msg, m.keys.ToggleStars):
		p := m.sim.Params()
		p.DrawStars = !p.DrawStars
		m.sim.Tune(p)

	case key.Matches(msg, m.keys.Help):
		m.status = !m.status
	}
	return m, nil
}

// handleResize rebuilds the scene for the new terminal size.
// Note: this resets the stars, like a reload of the page would.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}
	m.rc.ScreenW = msg.Width
	m.rc.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.raster = newRaster(msg.Width, msg.Height)
	m.help.Width = msg.Width

	w, h := viewportSize(msg.Width, msg.Height)
	m.sim.Reset(core.NewViewport(0, 0, w, h))
	m.drv.Retarget(m.raster)

	m.log.Debug("resized", "cols", msg.Width, "rows", msg.Height, "viewport", fmt.Sprintf("%gx%g", w, h))
	return m, nil
}

// handleConfig applies a reloaded config. Existing stars keep their
// positions; the star count applies on the next reset.
func (m Model) handleConfig(u config.Update) (tea.Model, tea.Cmd) {
	if u.Err != nil {
		m.log.Warn("config reload rejected", "err", u.Err)
		return m, nil
	}
	cfg := u.Config
	config.ApplyPreset(&cfg, m.preset)
	config.ApplyTickRate(&cfg, m.fps)
	params, idx, err := cfg.Scene()
	if err != nil {
		m.log.Warn("config reload rejected", "err", err)
		return m, nil
	}

	m.sim.Tune(params)
	m.sim.SetIndex(idx)
	m.drv.SetMaxDT(cfg.Timing.MaxDT)
	m.rc.TickRate = cfg.Timing.TickRate
	m.log.Info("config reloaded", "threshold", params.LineThreshold, "tick_rate", cfg.Timing.TickRate)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		m.last = m.drv.Tick()
		if m.last.Recycled > 0 {
			m.log.Debug("recycled", "count", m.last.Recycled)
		}
	}
	// Continue ticking
	return m, tickCmd(m.rc.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Braille(m.raster.Image(), m.screen, minDotAlpha)
	if !m.status || m.screen.Height() < 2 {
		return RenderScreen(m.screen)
	}
	return renderRows(m.screen, m.screen.Height()-1) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	stats := fmt.Sprintf("%d stars  %d links  dt %.3fs", m.sim.Len(), m.last.Lines, m.last.DT)
	if m.paused {
		stats += "  paused"
	}
	return statusStyle.Render(stats) + "  " + m.help.ShortHelpView(m.keys.ShortHelp())
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Repulsion follows the pointer without a button held
	)

	if opts.Watcher != nil {
		go func() {
			for u := range opts.Watcher.Updates {
				p.Send(ConfigMsg(u))
			}
		}()
	}

	model.log.Info("starting", "cols", opts.Runtime.ScreenW, "rows", opts.Runtime.ScreenH, "stars", model.sim.Len())
	_, err = p.Run()
	return err
}
