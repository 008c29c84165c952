package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/bricks"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/replay"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagRecord string
	flagWatch  bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

The game starts paused. Press A or D to start jumping.

Controls:
  A/Left     - Jump up and to the left
  D/Right    - Jump up and to the right
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

With --record, the last run is written to the given file on exit and can be
played back with 'climber replay'. With --watch, edits to the --config file
are checked live and apply on the next restart.

Examples:
  climber play bricks
  climber play bricks_hard
  climber play bricks --difficulty easy
  climber play bricks --seed 7 --record run.bricks
  climber play bricks --config ./bricks.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the last run to this replay file on exit")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes on disk")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'climber list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	session, err := openPlaySession(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(session.game, session.store, cfg, session.opts...)
	session.Close()

	if bg, ok := session.game.(*bricks.Game); ok && bg.ConfigError() != nil {
		logger.Warn("config not fully applied", "err", bg.ConfigError())
	}

	if session.recorder != nil {
		saveRecording(session.recorder, flagRecord)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playSession holds what a play run opens from the command line flags.
// Close releases it and must run before the process exits.
type playSession struct {
	game     registry.Game
	recorder *replay.Recorder
	watcher  *config.Watcher
	store    *storage.Store
	opts     []tui.Option
}

// openPlaySession creates the game and attaches the recorder, the config
// watcher and the run history the flags ask for.
func openPlaySession(gameID string) (*playSession, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	s := &playSession{game: game}

	if flagRecord != "" {
		bg, ok := game.(*bricks.Game)
		if !ok {
			return nil, fmt.Errorf("%q does not support recording", gameID)
		}
		s.recorder = replay.NewRecorder()
		bg.SetRecorder(s.recorder)
	}

	if flagWatch {
		if flagConfig == "" {
			return nil, errors.New("--watch needs --config")
		}
		watcher, err := config.Watch(flagConfig, nil) // the game screen shows reload notices
		if err != nil {
			return nil, fmt.Errorf("watching config: %w", err)
		}
		s.watcher = watcher
		s.opts = append(s.opts, tui.WithWatcher(watcher))
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	s.store = store

	return s, nil
}

// Close stops the config watcher and closes the run history.
func (s *playSession) Close() {
	if s.watcher != nil {
		s.watcher.Close()
	}
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// saveRecording writes the recorder's current run to path.
func saveRecording(r *replay.Recorder, path string) {
	rec := r.Recording()
	if rec == nil || len(rec.Frames) == 0 {
		logger.Info("nothing to record, the run never started")
		return
	}
	if err := replay.Save(path, rec); err != nil {
		logger.Error("could not save recording", "path", path, "err", err)
		return
	}
	logger.Info("recording saved", "path", path, "ticks", len(rec.Frames), "seed", rec.Seed)
}
