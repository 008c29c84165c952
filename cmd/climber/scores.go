package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best runs for a game",
	Long: `Display the top 10 runs for the specified game.

History is only kept across invocations when --db names a file.

Examples:
  climber scores bricks --db ~/.arcade/runs.db
  climber scores bricks_hard --db ./runs.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse the run history interactively",
	Long: `Open the scoreboard for every game variant.

Examples:
  climber board --db ~/.arcade/runs.db`,
	Run: runBoard,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'climber list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'climber play %s --db <file>' to start a history.\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-8s  %s\n", "Rank", "Score", "Height", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8.0f  %-8s  %s\n",
			i+1, r.Score, r.Height, r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(gameID); err == nil && stats != nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Avg: %.1f  Played: %s\n",
			stats.RunsCount, stats.HighScore, stats.AvgScore, stats.TotalTime.Round(time.Second))
	}
}

func runBoard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := terminalSize()
	if _, err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
