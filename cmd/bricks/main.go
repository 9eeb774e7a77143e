// bricks is a brick breaker for the terminal.
//
// Usage:
//
//	bricks play            - Play a difficulty directly
//	bricks menu            - Pick a difficulty from a menu, again after each game
//	bricks serve           - Start SSH server for remote play
//	bricks sim             - Run a headless autopilot game
//	bricks config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Custom YAML configuration
//	--log-file <path>   - Write logs to a file (the TUI owns the terminal)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricks",
	Short: "Bricks - a brick breaker in your terminal",
	Long: `Bricks is a terminal brick breaker: keep the ball in play with the
paddle and clear the field of 50 bricks before your three lives run out.

Available commands:
  play     - Play a difficulty directly
  menu     - Interactive difficulty menu
  serve    - Start SSH server for remote play
  sim      - Run a headless game driven by the autopilot
  config   - Print the effective configuration

Examples:
  bricks play --difficulty hard
  bricks menu
  bricks serve --ssh :2222
  bricks sim --difficulty easy --ticks 20000`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration selected by --config.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level %q\n", flagLogLevel)
		os.Exit(1)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", openErr)
			os.Exit(1)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn
}

// runtimeConfig sizes the front end to the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickInterval = cfg.TickInterval()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}
