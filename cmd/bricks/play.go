package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a difficulty",
	Long: `Start playing at the given difficulty. Without --difficulty the
difficulty menu is shown first.

Controls:
  Left/A, Right/D  - Move the paddle (held keys keep it moving)
  Down/S           - Stop the paddle
  Space/P          - Pause/Resume
  R                - Play again (after game over or victory)
  B/Esc            - Leave (when paused or finished)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

The on-screen [← Left] [Pause] [Right →] buttons work with the mouse.

Difficulty options:
  easy    - ball speed 3, paddle 100, single-hit bricks
  medium  - ball speed 5, paddle 80, top two rows take 2 hits
  hard    - ball speed 7, paddle 60, bricks take up to 3 hits

Examples:
  bricks play
  bricks play --difficulty hard
  bricks play --config ./my-bricks.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	rt := runtimeConfig(cfg)

	logger, closeLog := newLogger("bricks", io.Discard)
	defer closeLog()

	var difficulty config.Difficulty
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	} else {
		res, err := tui.RunMenu(cfg, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if res.Quit {
			return
		}
		difficulty, rt = res.Difficulty, res.Runtime
	}

	if _, err := tui.Run(cfg, difficulty, rt, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
