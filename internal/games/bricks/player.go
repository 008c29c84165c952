package bricks

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Command is the per-tick player intent. The set is closed.
type Command uint8

const (
	CommandNone Command = iota
	CommandJumpLeft
	CommandJumpRight
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandJumpLeft:
		return "JumpLeft"
	case CommandJumpRight:
		return "JumpRight"
	default:
		return "Unknown"
	}
}

// Player is the climbing square: one body plus its velocity.
type Player struct {
	Body       core.AABB
	Velocity   cp.Vector
	JumpSpeedX float64
	JumpSpeedY float64
	Gravity    cp.Vector
}

// NewPlayer places a resting player at the centre of the world.
func NewPlayer(world cp.Vector, cfg config.PlayerConfig) Player {
	size := core.Vec(cfg.Size, cfg.Size)
	pos := core.Vec((world.X-size.X)*0.5, (world.Y-size.Y)*0.5)
	return Player{
		Body:       core.NewAABB(pos, size),
		JumpSpeedX: cfg.JumpSpeedX,
		JumpSpeedY: cfg.JumpSpeedY,
		Gravity:    core.Vec(0, cfg.Gravity),
	}
}

// Step advances the player by dt seconds.
//
// A jump command replaces the velocity outright; without one the previous
// velocity carries over, horizontal drift included. Gravity then integrates
// with explicit Euler. Large dt values integrate coarsely; callers own the
// frame pacing.
func (p *Player) Step(cmd Command, dt float64) {
	if dt < 0 {
		dt = 0
	}

	switch cmd {
	case CommandNone:
	case CommandJumpLeft:
		p.Velocity = core.Vec(-p.JumpSpeedX, p.JumpSpeedY)
	case CommandJumpRight:
		p.Velocity = core.Vec(p.JumpSpeedX, p.JumpSpeedY)
	}

	p.Velocity = p.Velocity.Add(p.Gravity.Mult(dt))
	p.Body.SetPosition(p.Body.Position.Add(p.Velocity.Mult(dt)))
}
