package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game {
		return &stubGame{limit: 1000}
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	store, err := storage.Open(storage.MemoryPath)
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60}
	return NewSessionModel(store, cfg, log.New(io.Discard))
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := newTestSession(t)

	s, _ = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}

	// B is ignored while the run is live.
	s, _ = sessionUpdate(t, s, keyMsg("b"))
	if s.gameModel == nil {
		t.Fatal("back must not leave a running game")
	}

	s, _ = sessionUpdate(t, s, keyMsg("p"))
	s, _ = sessionUpdate(t, s, TickMsg(time.Now()))
	if !s.gameModel.State().Paused {
		t.Fatal("game should be paused")
	}

	s, _ = sessionUpdate(t, s, keyMsg("b"))
	if s.gameModel != nil {
		t.Fatal("back on a paused game should return to the menu")
	}

	// A stale tick from the finished game ends its chain.
	s, cmd := sessionUpdate(t, s, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("menu should drop game ticks")
	}
	if s.View() == "" {
		t.Error("menu should render")
	}
}

func TestSessionScoreboard(t *testing.T) {
	s := newTestSession(t)

	s, _ = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	s, cmd := sessionUpdate(t, s, keyMsg("b"))
	if s.scoreboard != nil {
		t.Fatal("back should close the scoreboard")
	}
	if cmd != nil {
		t.Error("closing the scoreboard must not end the session")
	}
	if s.quitting {
		t.Error("session should still be running")
	}
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession(t)

	s, cmd := sessionUpdate(t, s, keyMsg("q"))
	if cmd == nil || !s.quitting {
		t.Error("q in the menu should quit the session")
	}
	if s.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
