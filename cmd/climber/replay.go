package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/framebuffer"
	"github.com/vovakirdan/tui-climber/internal/replay"
)

var flagReplayPNG string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded run",
	Long: `Run a recording made with 'climber play --record' through a fresh
simulation and report where it ended. The recording carries its own seed and
tunables, so --seed, --config and --difficulty do not apply.

Examples:
  climber replay run.bricks
  climber replay run.bricks --png final.png`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayPNG, "png", "", "Write the final frame to this PNG file")
}

// Replay raster size, matching the default world aspect.
const (
	replayW = 512
	replayH = 824
)

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	res, err := replay.Play(rec)
	if err != nil {
		return err
	}

	logger.Info("replay finished",
		"game", rec.GameID,
		"seed", rec.Seed,
		"recorded", rec.CreatedAt.Format("2006-01-02 15:04"),
		"frames", len(rec.Frames),
		"ticks", res.Ticks,
		"score", res.Score,
		"height", fmt.Sprintf("%.0f", res.Height),
		"over", res.GameOver,
	)
	if !res.GameOver {
		logger.Warn("recording ends before game over")
	}

	if flagReplayPNG == "" {
		return nil
	}

	img := framebuffer.New(replayW, replayH)
	res.Sim.Draw(img)
	img.Text(4, 14, fmt.Sprintf("Score: %d", res.Score), core.ColorWhite.RGBA())
	if err := img.SavePNG(flagReplayPNG); err != nil {
		return err
	}
	logger.Info("final frame saved", "path", flagReplayPNG)
	return nil
}
