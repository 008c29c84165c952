package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/framebuffer"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

// maxFrameDT caps the wall-clock step fed to the game after a stall, so a
// frozen terminal does not teleport the player through a barrier.
const maxFrameDT = 0.1

// noticeTTL is how long a status notice stays on screen.
const noticeTTL = 3 * time.Second

// Screenshot raster size, matching the default world aspect.
const (
	shotW = 512
	shotH = 824
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	fixedSeed  bool
	lastTick   time.Time
	runTicks   int
	runTime    float64 // Simulated seconds this run
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
	notice     string
	noticeAt   time.Time
	watcher    *config.Watcher
	logger     *log.Logger
	shotDir    string
	noShots    bool
}

// Option configures a Model.
type Option func(*Model)

// WithWatcher shows config reload notices from w.
func WithWatcher(w *config.Watcher) Option {
	return func(m *Model) { m.watcher = w }
}

// WithLogger sets the logger for run diagnostics. The default discards
// them, since the terminal belongs to the game.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithScreenshotDir overrides where ctrl+s writes screenshots.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) { m.shotDir = dir }
}

// WithoutScreenshots disables ctrl+s, for sessions that must not write to
// the host filesystem.
func WithoutScreenshots() Option {
	return func(m *Model) { m.noShots = true }
}

// NewModel creates a new Bubble Tea model for the given game.
// The game is reset immediately.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		fixedSeed:  fixed,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			m.shotDir = filepath.Join(home, ".arcade", "screenshots")
		} else {
			m.shotDir = "screenshots"
		}
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()

	return m
}

// Init starts the tick loop and, if configured, the config watch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ReloadMsg:
		return m.handleReload(config.Reload(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if !m.noShots {
			m.saveScreenshot()
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// B leaves a stopped game; it is ignored mid-run.
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world is fixed, so only the projection changes; the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now
	if dt > maxFrameDT {
		dt = maxFrameDT
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	if result.Simulated {
		m.runTicks++
		m.runTime += dt
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// A paused game restarts its clock so the first resumed step is short.
	if m.gameState.Paused {
		m.lastTick = time.Time{}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart starts a new run, with a fresh seed unless one was fixed.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.runTicks = 0
	m.runTime = 0
	m.lastTick = time.Time{}
	m.inputFrame.Clear()
}

// saveRun records the finished run in the history store.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := storage.Run{
		GameID:   m.game.ID(),
		Score:    m.gameState.Score,
		Height:   m.gameState.Height,
		Ticks:    m.runTicks,
		Seed:     m.config.Seed,
		Duration: time.Duration(m.runTime * float64(time.Second)),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "err", err)
		m.setNotice("could not save run: " + err.Error())
	}
}

// handleReload shows the outcome of a config file change.
// New tunables apply on the next restart.
func (m Model) handleReload(r config.Reload) (tea.Model, tea.Cmd) {
	if r.Err != nil {
		m.setNotice("config rejected: " + r.Err.Error())
	} else {
		m.setNotice("config reloaded, applies on restart")
	}
	return m, waitForReload(m.watcher)
}

func (m *Model) setNotice(s string) {
	m.notice = s
	m.noticeAt = time.Now()
}

// saveScreenshot writes the current frame as text and, when the game can
// rasterize itself, as PNG.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.setNotice("screenshot failed: " + err.Error())
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.game.ID(), timestamp))

	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.setNotice("screenshot failed: " + err.Error())
		return
	}

	if d, ok := m.game.(registry.Drawer); ok {
		img := framebuffer.New(shotW, shotH)
		d.Draw(img)
		if err := img.SavePNG(base + ".png"); err != nil {
			m.setNotice("screenshot failed: " + err.Error())
			return
		}
	}

	m.setNotice("screenshot saved: " + base)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.notice != "" && time.Since(m.noticeAt) < noticeTTL {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.notice, core.ColorYellow)
	}

	return RenderScreen(m.screen)
}

// BackToMenu reports whether the player asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
