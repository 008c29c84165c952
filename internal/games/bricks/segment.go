package bricks

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

// Segment is one generated band of the level: a barrier line made of two gates
// flanking a gap, plus a few bricks scattered over the band.
// Segments are never modified after Generate returns.
type Segment struct {
	ID     int
	Bounds core.AABB
	Gates  [2]core.AABB // Left and right of the gap
	Bricks []core.AABB
}

// Generate builds the segment occupying the band at pos with the given size.
//
// Random draws are consumed in a fixed order (gap position, then side, x and y
// for every brick) so the same rng state always yields the same segment.
// The gap always lies within the band; a gap wider than the band spans it.
func Generate(rng *rand.Rand, pos, size cp.Vector, id int, lvl config.LevelConfig) Segment {
	width := size.X
	gapWidth := math.Min(lvl.GapWidth, width)
	padding := width * lvl.GapPadding
	span := width * lvl.GapRange

	gapStart := padding + rng.Float64()*span - gapWidth*0.5
	gapStart = core.ClampF(gapStart, 0, width-gapWidth)

	seg := Segment{
		ID:     id,
		Bounds: core.NewAABB(pos, size),
		Bricks: make([]core.AABB, lvl.BrickCount),
	}

	seg.Gates[0] = core.NewAABB(
		core.Vec(pos.X, pos.Y),
		core.Vec(gapStart, lvl.GateThickness),
	)
	seg.Gates[1] = core.NewAABB(
		core.Vec(pos.X+gapStart+gapWidth, pos.Y),
		core.Vec(width-gapStart-gapWidth, lvl.GateThickness),
	)

	brick := core.Vec(lvl.BrickSize, lvl.BrickSize)
	for i := range seg.Bricks {
		gate := seg.Gates[1]
		if rng.Float64() < 0.5 {
			gate = seg.Gates[0]
		}
		x := gate.Position.X + rng.Float64()*gate.Size.X
		y := pos.Y + rng.Float64()*size.Y
		seg.Bricks[i] = core.NewAABB(core.Vec(x, y), brick)
	}

	return seg
}

// Gap returns the world x where the gap starts and its width.
func (s *Segment) Gap() (start, width float64) {
	return s.Gates[0].Max.X, s.Gates[1].Min.X - s.Gates[0].Max.X
}

// IsHit reports whether body overlaps either gate or any brick.
func (s *Segment) IsHit(body core.AABB) bool {
	if body.Overlaps(s.Gates[0]) || body.Overlaps(s.Gates[1]) {
		return true
	}
	for _, b := range s.Bricks {
		if body.Overlaps(b) {
			return true
		}
	}
	return false
}

// IsPass reports whether body has risen clear above the barrier line.
func (s *Segment) IsPass(body core.AABB) bool {
	return body.Min.Y > s.Gates[0].Max.Y
}
