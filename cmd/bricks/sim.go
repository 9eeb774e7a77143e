package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
	"github.com/vovakirdan/tui-bricks/internal/loop"
)

var (
	flagSimDifficulty string
	flagSimTicks      int
	flagSimRealtime   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autopilot",
	Long: `Play one game without a terminal UI. The autopilot steers the paddle
toward the ball; the run ends at game over, victory or the tick limit.

With --realtime the game runs at the configured tick rate instead of as
fast as possible. Use --log-level debug to see every brick hit.

Examples:
  bricks sim
  bricks sim --difficulty hard --ticks 50000
  bricks sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 100000, "Stop after this many ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at the configured tick rate")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	logger, closeLog := newLogger("bricks-sim", os.Stderr)
	defer closeLog()

	difficulty, err := config.ParseDifficulty(flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, err := bricks.NewSession(cfg, difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pilot := bricks.NewAutopilot(session)

	step := func() bool {
		res := pilot.Step(session)
		for _, ev := range res.Events {
			switch ev.Kind {
			case bricks.EventBrickHit, bricks.EventBrickDestroyed:
				logger.Debug(ev.Kind.String(), "tick", session.Ticks(), "row", ev.Row, "col", ev.Col, "score", ev.Score)
			case bricks.EventLifeLost:
				logger.Info("life lost", "tick", session.Ticks(), "lives", ev.Lives)
			}
		}
		return res.Rearm && (flagSimTicks <= 0 || session.Ticks() < flagSimTicks)
	}

	if flagSimRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		runErr := loop.NewRunner(cfg.TickInterval()).Run(ctx, step)
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
	} else {
		for step() {
		}
	}

	outcome := session.Status().String()
	if !session.Status().Terminal() {
		outcome = "stopped"
	}
	logger.Info("simulation finished", "difficulty", difficulty, "outcome", outcome)

	snap := session.Snapshot()
	fmt.Printf("difficulty: %s\n", difficulty.Title())
	fmt.Printf("outcome:    %s\n", outcome)
	fmt.Printf("score:      %d\n", session.Score())
	fmt.Printf("lives:      %d\n", session.Lives())
	fmt.Printf("bricks:     %d left\n", len(session.Bricks()))
	fmt.Printf("ticks:      %d\n", session.Ticks())
	fmt.Printf("state hash: %016x\n", snap.Hash())
}
