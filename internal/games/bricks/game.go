// Package bricks implements an endless vertical climber.
// The player jumps left or right through gaps in barrier lines while avoiding
// bricks scattered above them; the camera only ever scrolls upward.
package bricks

import (
	"fmt"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

// Game IDs
const (
	IDNormal = "bricks"
	IDHard   = "bricks_hard"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names clear the preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// TickRecorder receives every simulated tick of a game.
type TickRecorder interface {
	// Begin is called on every Reset with the parameters of the new run.
	Begin(gameID string, seed int64, cfg config.BricksConfig)
	// Record is called once per simulated tick.
	Record(cmd Command, dt float64)
}

// Game adapts the simulation to the platform: it maps input frames to
// commands, owns the pause state and remembers the best score.
type Game struct {
	hard     bool
	sim      *Sim
	runtime  core.RuntimeConfig
	cfg      config.BricksConfig
	cfgErr   error
	paused   bool
	best     int
	recorder TickRecorder
}

// New creates a Bricks game with the normal tunables.
func New() *Game {
	return &Game{}
}

// NewHard creates a Bricks game that always uses the hard preset.
func NewHard() *Game {
	return &Game{hard: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.hard {
		return IDHard
	}
	return IDNormal
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.hard {
		return "Bricks (Hard)"
	}
	return "Bricks"
}

// SetRecorder attaches a recorder; nil detaches it.
// The recorder sees runs starting from the next Reset.
func (g *Game) SetRecorder(r TickRecorder) {
	g.recorder = r
}

// Reset loads the configuration and starts a new run, paused.
// The best score survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBricks(configPath)
	g.cfgErr = err
	if err != nil {
		cfg = config.DefaultBricksConfig()
	}

	preset := difficultyPreset
	if g.hard {
		preset = config.DifficultyHard
	}
	if preset != "" {
		base := cfg
		config.ApplyBricksPreset(&cfg, preset)
		if err := cfg.Validate(); err != nil {
			g.cfgErr = fmt.Errorf("preset %s does not fit the config: %w", preset, err)
			cfg = base
		}
	}
	g.cfg = cfg

	// Same tunables: restart the existing simulation on the new seed.
	if g.sim != nil && g.sim.Config() == cfg {
		g.sim.Reseed(runtime.Seed)
		g.sim.Init()
	} else {
		g.sim = NewSim(cfg, runtime.Seed)
	}
	g.paused = true

	if g.recorder != nil {
		g.recorder.Begin(g.ID(), runtime.Seed, cfg)
	}
}

// ConfigError returns the error from the last config load or preset, if any.
// A bad file falls back to built-in defaults; a preset that does not fit is
// skipped.
func (g *Game) ConfigError() error {
	return g.cfgErr
}

// Config returns the tunables of the current run.
func (g *Game) Config() config.BricksConfig {
	return g.cfg
}

// Sim exposes the running simulation.
func (g *Game) Sim() *Sim {
	return g.sim
}

// CommandFor maps an input frame to a command. JumpLeft wins when both jump
// actions are present.
func CommandFor(in core.InputFrame) Command {
	switch {
	case in.Has(core.ActionJumpLeft):
		return CommandJumpLeft
	case in.Has(core.ActionJumpRight):
		return CommandJumpRight
	default:
		return CommandNone
	}
}

// Step advances the game by dt seconds.
//
// While paused nothing moves; a jump action resumes play on the following
// step. The pause action toggles. Once the run is over, steps are ignored
// until Reset.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.sim == nil || g.sim.Over() {
		return core.StepResult{State: g.State()}
	}

	cmd := CommandFor(in)

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}

	if g.paused {
		if cmd != CommandNone {
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	over := g.sim.Tick(cmd, dt)
	if g.recorder != nil {
		g.recorder.Record(cmd, dt)
	}

	if over && g.sim.Score() > g.best {
		g.best = g.sim.Score()
	}

	return core.StepResult{State: g.State(), Simulated: true}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Best: g.best, Paused: g.paused}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		Best:     g.best,
		Height:   g.sim.Height(),
		GameOver: g.sim.Over(),
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(IDNormal, func() registry.Game {
		return New()
	})
	registry.Register(IDHard, func() registry.Game {
		return NewHard()
	})
}
