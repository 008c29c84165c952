package bricks

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
)

func TestGenerateLayout(t *testing.T) {
	cfg := config.DefaultBricksConfig()
	lvl := cfg.Level
	width := cfg.World.Width
	bandH := cfg.World.Height * lvl.BandRatio
	rng := rand.New(rand.NewSource(7))

	for id := 1; id <= 500; id++ {
		y := float64(id) * bandH
		seg := Generate(rng, core.Vec(0, y), core.Vec(width, bandH), id, lvl)

		if seg.ID != id {
			t.Fatalf("segment id = %d, expected %d", seg.ID, id)
		}
		if seg.Bounds.Min.Y != y || seg.Bounds.Max.Y != y+bandH {
			t.Fatalf("segment %d: band = [%v, %v], expected [%v, %v]",
				id, seg.Bounds.Min.Y, seg.Bounds.Max.Y, y, y+bandH)
		}

		start, gap := seg.Gap()
		if start < 0 || start+gap > width+1e-6 {
			t.Fatalf("segment %d: gap [%v, %v] leaves the band", id, start, start+gap)
		}
		if math.Abs(gap-lvl.GapWidth) > 1e-6 {
			t.Fatalf("segment %d: gap width = %v, expected %v", id, gap, lvl.GapWidth)
		}

		for i, gate := range seg.Gates {
			if gate.Position.Y != y || gate.Size.Y != lvl.GateThickness {
				t.Fatalf("segment %d gate %d: y=%v h=%v", id, i, gate.Position.Y, gate.Size.Y)
			}
		}
		if seg.Gates[0].Min.X != 0 || math.Abs(seg.Gates[1].Max.X-width) > 1e-6 {
			t.Fatalf("segment %d: gates should reach both screen edges", id)
		}

		if len(seg.Bricks) != lvl.BrickCount {
			t.Fatalf("segment %d: %d bricks, expected %d", id, len(seg.Bricks), lvl.BrickCount)
		}
		for i, b := range seg.Bricks {
			if b.Position.Y < y || b.Position.Y >= y+bandH {
				t.Errorf("segment %d brick %d: y=%v outside band", id, i, b.Position.Y)
			}
			onLeft := b.Position.X >= seg.Gates[0].Min.X && b.Position.X <= seg.Gates[0].Max.X
			onRight := b.Position.X >= seg.Gates[1].Min.X && b.Position.X <= seg.Gates[1].Max.X
			if !onLeft && !onRight {
				t.Errorf("segment %d brick %d: x=%v not above a gate", id, i, b.Position.X)
			}
			if b.Size.X != lvl.BrickSize || b.Size.Y != lvl.BrickSize {
				t.Errorf("segment %d brick %d: size %v", id, i, b.Size)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	lvl := config.DefaultBricksConfig().Level
	pos, size := core.Vec(0, 824), core.Vec(512, 412)

	a := Generate(rand.New(rand.NewSource(99)), pos, size, 1, lvl)
	b := Generate(rand.New(rand.NewSource(99)), pos, size, 1, lvl)

	if a.Gates != b.Gates {
		t.Error("same seed should give the same gates")
	}
	for i := range a.Bricks {
		if a.Bricks[i] != b.Bricks[i] {
			t.Errorf("brick %d differs: %v vs %v", i, a.Bricks[i], b.Bricks[i])
		}
	}
}

func TestGenerateGapStaysInBand(t *testing.T) {
	tests := []struct {
		name     string
		gapWidth float64
		expected float64
	}{
		{"narrow gap", 100, 100},
		{"gap as wide as the band", 512, 512},
		{"gap wider than the band", 600, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := config.DefaultBricksConfig().Level
			lvl.GapWidth = tt.gapWidth

			for seed := int64(1); seed <= 20; seed++ {
				seg := Generate(rand.New(rand.NewSource(seed)), core.Vec(0, 0), core.Vec(512, 412), 1, lvl)

				start, width := seg.Gap()
				if start < 0 || start+width > 512+1e-9 {
					t.Fatalf("seed %d: gap [%v, %v] leaves the band", seed, start, start+width)
				}
				if math.Abs(width-tt.expected) > 1e-9 {
					t.Fatalf("seed %d: gap width = %v, expected %v", seed, width, tt.expected)
				}
			}
		})
	}
}

func TestSegmentHitAndPass(t *testing.T) {
	seg := Segment{
		ID:     3,
		Bounds: core.NewAABB(core.Vec(0, 100), core.Vec(512, 200)),
		Gates: [2]core.AABB{
			core.NewAABB(core.Vec(0, 100), core.Vec(200, 20)),
			core.NewAABB(core.Vec(300, 100), core.Vec(212, 20)),
		},
		Bricks: []core.AABB{
			core.NewAABB(core.Vec(50, 200), core.Vec(20, 20)),
		},
	}

	tests := []struct {
		name string
		pos  [2]float64
		hit  bool
		pass bool
	}{
		{"inside gap", [2]float64{240, 105}, false, false},
		{"on left gate", [2]float64{190, 105}, true, false},
		{"on right gate", [2]float64{295, 110}, true, false},
		{"touching gap edge", [2]float64{200, 105}, false, false},
		{"resting on gate top", [2]float64{100, 120}, false, false},
		{"just above gate", [2]float64{100, 120.5}, false, true},
		{"on brick", [2]float64{60, 210}, true, true},
		{"below barrier", [2]float64{100, 50}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := core.NewAABB(core.Vec(tt.pos[0], tt.pos[1]), core.Vec(20, 20))
			if got := seg.IsHit(body); got != tt.hit {
				t.Errorf("IsHit = %v, expected %v", got, tt.hit)
			}
			if got := seg.IsPass(body); got != tt.pass {
				t.Errorf("IsPass = %v, expected %v", got, tt.pass)
			}
		})
	}
}
