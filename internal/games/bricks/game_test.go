package bricks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/framebuffer"
	"github.com/vovakirdan/tui-climber/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

type fakeRecorder struct {
	begins []string
	seeds  []int64
	cmds   []Command
}

func (r *fakeRecorder) Begin(gameID string, seed int64, _ config.BricksConfig) {
	r.begins = append(r.begins, gameID)
	r.seeds = append(r.seeds, seed)
	r.cmds = nil
}

func (r *fakeRecorder) Record(cmd Command, _ float64) {
	r.cmds = append(r.cmds, cmd)
}

func TestCommandForPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		in       core.InputFrame
		expected Command
	}{
		{"nothing", frame(), CommandNone},
		{"left", frame(core.ActionJumpLeft), CommandJumpLeft},
		{"right", frame(core.ActionJumpRight), CommandJumpRight},
		{"both held, left wins", frame(core.ActionJumpLeft, core.ActionJumpRight), CommandJumpLeft},
		{"unrelated action", frame(core.ActionConfirm), CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommandFor(tt.in); got != tt.expected {
				t.Errorf("CommandFor = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestGameStartsPaused(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if !g.State().Paused {
		t.Fatal("game should start paused")
	}

	res := g.Step(frame(), frameDT)
	if res.Simulated || g.Sim().Ticks() != 0 {
		t.Error("paused game should not simulate")
	}

	// A jump only resumes; the next step simulates.
	res = g.Step(frame(core.ActionJumpRight), frameDT)
	if res.Simulated || res.State.Paused {
		t.Errorf("jump while paused: simulated=%v paused=%v, expected resume only", res.Simulated, res.State.Paused)
	}

	res = g.Step(frame(), frameDT)
	if !res.Simulated || g.Sim().Ticks() != 1 {
		t.Error("resumed game should simulate")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionJumpLeft), frameDT)

	g.Step(frame(core.ActionPause), frameDT)
	if !g.State().Paused {
		t.Fatal("pause action should pause")
	}
	ticks := g.Sim().Ticks()
	for i := 0; i < 10; i++ {
		g.Step(frame(), frameDT)
	}
	if g.Sim().Ticks() != ticks {
		t.Error("paused game advanced")
	}

	g.Step(frame(core.ActionPause), frameDT)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestGameBestSurvivesReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionJumpRight), frameDT)

	g.sim.score = 5
	g.sim.player.Body.SetPosition(core.Vec(-1, 402))
	res := g.Step(frame(), frameDT)

	if !res.State.GameOver {
		t.Fatal("expected game over")
	}
	if res.State.Best != 5 {
		t.Errorf("best = %d, expected 5", res.State.Best)
	}

	// Steps after game over are ignored.
	if g.Step(frame(core.ActionJumpLeft), frameDT).Simulated {
		t.Error("step after game over should not simulate")
	}

	g.Reset(testRuntime(2))
	st := g.State()
	if st.Score != 0 || st.Best != 5 || st.GameOver || !st.Paused {
		t.Errorf("after reset: %+v", st)
	}
}

func TestGameRecorder(t *testing.T) {
	g := New()
	rec := &fakeRecorder{}
	g.SetRecorder(rec)
	g.Reset(testRuntime(77))

	g.Step(frame(core.ActionJumpLeft), frameDT) // resumes, not recorded
	g.Step(frame(core.ActionJumpLeft), frameDT)
	g.Step(frame(), frameDT)
	g.Step(frame(core.ActionJumpRight), frameDT)

	if len(rec.begins) != 1 || rec.begins[0] != IDNormal || rec.seeds[0] != 77 {
		t.Errorf("Begin calls = %v seeds %v", rec.begins, rec.seeds)
	}
	expected := []Command{CommandJumpLeft, CommandNone, CommandJumpRight}
	if len(rec.cmds) != len(expected) {
		t.Fatalf("recorded %v, expected %v", rec.cmds, expected)
	}
	for i := range expected {
		if rec.cmds[i] != expected[i] {
			t.Errorf("frame %d = %v, expected %v", i, rec.cmds[i], expected[i])
		}
	}
}

func TestHardPreset(t *testing.T) {
	g := NewHard()
	g.Reset(testRuntime(1))

	if g.ID() != IDHard {
		t.Errorf("ID = %q", g.ID())
	}
	if g.Config().Level.BrickCount != 6 {
		t.Errorf("hard brick count = %d, expected 6", g.Config().Level.BrickCount)
	}
	if n := len(g.Sim().Segments()[0].Bricks); n != 6 {
		t.Errorf("seed segment has %d bricks, expected 6", n)
	}
}

func TestGameResetReseedsSim(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	first := g.Sim()
	for i := 0; i < 10; i++ {
		g.Step(frame(core.ActionJumpRight), frameDT)
	}

	g.Reset(testRuntime(9))

	if g.Sim() != first {
		t.Error("unchanged tunables should restart the existing simulation")
	}
	fresh := NewSim(g.Config(), 9)
	got, want := g.Sim().Segments(), fresh.Segments()
	if len(got) != len(want) {
		t.Fatalf("restarted run has %d segments, fresh run %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Gates != want[i].Gates {
			t.Errorf("segment %d gates differ from a fresh run with the same seed", i)
		}
		for j := range want[i].Bricks {
			if got[i].Bricks[j] != want[i].Bricks[j] {
				t.Errorf("segment %d brick %d differs from a fresh run", i, j)
			}
		}
	}
	if g.Sim().Seed() != 9 || g.Sim().Ticks() != 0 || g.Sim().Height() != 0 {
		t.Errorf("restart kept old state: seed=%d ticks=%d height=%v",
			g.Sim().Seed(), g.Sim().Ticks(), g.Sim().Height())
	}
}

func TestPresetThatDoesNotFitIsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 110\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	tests := []struct {
		name      string
		preset    string
		gapWidth  float64
		bricks    int
		wantError bool
	}{
		{"easy gap is wider than the world", "easy", 100, 4, true},
		{"hard gap fits", "hard", 80, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetDifficultyPreset(tt.preset)
			g := New()
			g.Reset(testRuntime(1))

			lvl := g.Config().Level
			if lvl.GapWidth != tt.gapWidth || lvl.BrickCount != tt.bricks {
				t.Errorf("level = gap %v bricks %d, expected gap %v bricks %d",
					lvl.GapWidth, lvl.BrickCount, tt.gapWidth, tt.bricks)
			}
			if (g.ConfigError() != nil) != tt.wantError {
				t.Errorf("ConfigError = %v, want error %v", g.ConfigError(), tt.wantError)
			}
			for _, seg := range g.Sim().Segments() {
				if start, width := seg.Gap(); start < 0 || start+width > 110 {
					t.Errorf("segment %d gap [%v, %v] leaves the world", seg.ID, start, start+width)
				}
			}
		})
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"!!Bricks!!", "Score: 0", "Max Score: 0", "Game is paused"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// The paused box covers the centre; resume to see the player.
	g.Step(frame(core.ActionJumpLeft), frameDT)
	g.Render(screen)
	if strings.Contains(screen.String(), "Game is paused") {
		t.Error("pause box drawn after resume")
	}

	player := 0
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == PlayerChar && c.Color == PlayerColor {
				player++
			}
		}
	}
	if player == 0 {
		t.Error("player not drawn")
	}
}

func TestGameRenderMessageOnSmallScreen(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		corner [2]int
	}{
		{"fits", 80, 24, [2]int{24, 9}},
		{"too narrow", 10, 24, [2]int{0, 9}},
		{"too short", 80, 3, [2]int{24, 0}},
		{"too small", 10, 3, [2]int{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			g.Reset(testRuntime(1))

			screen := core.NewScreen(tt.w, tt.h)
			g.Render(screen)

			if got := screen.Get(tt.corner[0], tt.corner[1]); got != '┌' {
				t.Errorf("box corner at %v = %q, expected '┌'", tt.corner, got)
			}
		})
	}
}

func TestGameRenderGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(frame(core.ActionJumpRight), frameDT)
	g.sim.player.Body.SetPosition(core.Vec(-1, 402))
	g.Step(frame(), frameDT)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("game over box missing")
	}
}

func TestGameDraw(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	img := framebuffer.New(256, 412)
	g.Draw(img)

	// Player centre, scaled by one half and flipped.
	if got := img.At(128, 412-206); got != PlayerColor.RGBA() {
		t.Errorf("pixel at player centre = %v, expected %v", got, PlayerColor.RGBA())
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{IDNormal, IDHard} {
		if !registry.Exists(id) {
			t.Errorf("%q not registered", id)
		}
	}
}
