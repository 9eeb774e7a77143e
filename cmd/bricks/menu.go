package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the difficulty menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a difficulty.
Pressing B after a game (or while paused) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Q/Esc        - Quit

Examples:
  bricks menu
  bricks menu --config ./my-bricks.yaml --log-file bricks.log`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	rt := runtimeConfig(cfg)

	logger, closeLog := newLogger("bricks", io.Discard)
	defer closeLog()

	for {
		menuResult, err := tui.RunMenu(cfg, rt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		rt = menuResult.Runtime

		if menuResult.Quit {
			break
		}

		gameResult, err := tui.Run(cfg, menuResult.Difficulty, rt, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
		rt = gameResult.Runtime

		if !gameResult.BackToMenu {
			break
		}
	}
}
