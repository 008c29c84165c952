package registry

import (
	"testing"

	"github.com/vovakirdan/tui-climber/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state, Simulated: true}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") || Exists("stub_missing") {
		t.Fatal("Exists reports wrong registrations")
	}

	list := List()
	ia, ib := -1, -1
	for i, info := range list {
		switch info.ID {
		case "stub_a":
			ia = i
			if info.Title != "Stub stub_a" {
				t.Errorf("title = %q", info.Title)
			}
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List should include both stubs sorted by id, got %v", list)
	}

	g1, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	g2, _ := Create("stub_a")
	g1.Step(core.NewInputFrame(), 0)
	if g2.State().Score != 0 {
		t.Error("instances from Create should be independent")
	}

	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create should fail for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
