// Package tui provides the Bubble Tea integration for the climber.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ReloadMsg carries a config file change into the update loop.
type ReloadMsg config.Reload

// waitForReload blocks on the watcher's next event. It yields nil once the
// watcher is closed, which ends the chain.
func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-w.Events
		if !ok {
			return nil
		}
		return ReloadMsg(r)
	}
}
