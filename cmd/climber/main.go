// climber is an endless vertical climber for the terminal.
//
// Usage:
//
//	climber list              - List available games
//	climber play <game>       - Play a game
//	climber menu              - Start menu to pick games interactively
//	climber serve             - Start SSH server for remote play
//	climber scores <game>     - Show the best runs for a game
//	climber board             - Browse the run history
//	climber replay <file>     - Play back a recorded run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible levels
//	--db <path>           - Set run history path (default: in memory)
//	--config <path>       - Load Bricks tunables from a YAML file
//	--difficulty <name>   - Apply a preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/games/bricks"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

// logger reports CLI diagnostics on stderr, outside the game screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "climber"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "Bricks - an endless climber in your terminal",
	Long: `Bricks is an endless vertical climber. Jump left or right through the
gaps in each barrier, avoid the bricks, and see how high you get.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View the best runs
  board    - Browse the run history
  replay   - Play back a recorded run

Examples:
  climber play bricks
  climber play bricks --seed 42 --record run.bricks
  climber replay run.bricks --png last.png
  climber menu --db ~/.arcade/runs.db
  climber serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		bricks.SetConfigPath(flagConfig)
		bricks.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom Bricks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(replayCmd)
}
