package bricks

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// Sim is the climber simulation: one player, the level window, the camera
// height and the score. It does no I/O and keeps no clock; every Tick is
// driven by the caller.
type Sim struct {
	cfg           config.BricksConfig
	seed          int64
	world         cp.Vector
	player        Player
	window        *Window
	height        float64 // Camera bottom in world units, never decreases
	displayHeight float64 // Distance kept between camera bottom and player
	score         int
	ticks         int
	over          bool
}

// NewSim creates a simulation and runs Init.
func NewSim(cfg config.BricksConfig, seed int64) *Sim {
	s := &Sim{cfg: cfg, seed: seed}
	s.Init()
	return s
}

// Init replaces the whole run state: camera, score, segment ids, player,
// level window and random source. Restarting always goes through here.
func (s *Sim) Init() {
	s.world = cp.Vector{X: s.cfg.World.Width, Y: s.cfg.World.Height}
	s.height = 0
	s.score = 0
	s.ticks = 0
	s.over = false
	s.displayHeight = s.world.Y * s.cfg.Camera.DisplayRatio
	s.player = NewPlayer(s.world, s.cfg.Player)

	rng := rand.New(rand.NewSource(s.seed))
	s.window = NewWindow(rng, s.cfg.Level, s.world.X, s.world.Y*s.cfg.Level.BandRatio)
	s.window.Reset(s.world.Y)
}

// Reseed sets the seed used by the next Init.
func (s *Sim) Reseed(seed int64) {
	s.seed = seed
}

// Tick runs one simulation step and reports whether the run is over.
//
// Order: generate/evict segments, move the player, raise the camera, test the
// screen edges, then test every segment for collision (fatal) and pass
// (score). The first fatal condition stops the step; once over, further ticks
// change nothing.
func (s *Sim) Tick(cmd Command, dt float64) bool {
	if s.over {
		return true
	}
	s.ticks++

	s.window.Advance(s.height, s.world.Y)

	s.player.Step(cmd, dt)

	s.height = math.Max(s.height, s.player.Body.Position.Y-s.displayHeight)

	if s.outOfBounds() {
		s.over = true
		return true
	}

	for _, seg := range s.window.Segments() {
		if seg.IsHit(s.player.Body) {
			s.over = true
			return true
		}
		if seg.IsPass(s.player.Body) && seg.ID > s.score {
			s.score = seg.ID
		}
	}

	return false
}

// outOfBounds reports whether the player left the screen sideways or fell
// below the world floor.
func (s *Sim) outOfBounds() bool {
	b := s.player.Body
	return b.Position.X < 0 ||
		b.Position.X+b.Size.X > s.world.X ||
		b.Position.Y < 0
}

// Score returns the highest segment id passed this run.
func (s *Sim) Score() int {
	return s.score
}

// Height returns the camera scroll height.
func (s *Sim) Height() float64 {
	return s.height
}

// DisplayHeight returns the camera offset below the player.
func (s *Sim) DisplayHeight() float64 {
	return s.displayHeight
}

// Player returns a copy of the player state.
func (s *Sim) Player() Player {
	return s.player
}

// Segments returns the live segments, bottom to top.
func (s *Sim) Segments() []Segment {
	return s.window.Segments()
}

// Generated returns how many segments this run has created.
func (s *Sim) Generated() int {
	return s.window.NextID() - 1
}

// World returns the logical screen size.
func (s *Sim) World() cp.Vector {
	return s.world
}

// Ticks returns the number of simulated steps this run.
func (s *Sim) Ticks() int {
	return s.ticks
}

// Over reports whether the run has ended.
func (s *Sim) Over() bool {
	return s.over
}

// Seed returns the seed of the current run.
func (s *Sim) Seed() int64 {
	return s.seed
}

// Config returns the configuration the simulation runs with.
func (s *Sim) Config() config.BricksConfig {
	return s.cfg
}
