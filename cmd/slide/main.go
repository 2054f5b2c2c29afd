// slide is a sliding-tile puzzle for the terminal.
//
// Usage:
//
//	slide list              - List available games
//	slide play              - Play a puzzle
//	slide menu              - Start the menu to pick a board size interactively
//	slide serve             - Start SSH server for remote play
//	slide scores            - Show the best results per board size
//	slide config            - Show or create the puzzle config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible shuffles
//	--db <path>         - Set database path (default: ~/.slide/results.db)
//	--log-level <level> - debug, info, warn or error
//	--config <path>     - Custom puzzle config YAML
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - the sliding tile puzzle in your terminal",
	Long: `Slide is the classic 15-puzzle for the terminal, with 3x3, 4x4 and 5x5 boards.
Slide the numbered tiles into the blank until they read in order.

Available commands:
  list     - Show all available games
  play     - Play a puzzle directly
  menu     - Interactive menu with size picker and scores
  serve    - Start SSH server for remote play
  scores   - View the best results
  config   - Show or create the puzzle config

Examples:
  slide play
  slide play --size 3
  slide menu
  slide serve --ssh :2222
  slide scores --size 4`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slide/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// setupTUILogging routes logs to ~/.slide/slide.log, since stderr would
// corrupt the alternate screen. Returns a function that closes the file.
func setupTUILogging() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".slide")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "slide.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f, "slide")
	if err != nil {
		f.Close()
		return nil, err
	}
	wireLogger(logger)

	return func() {
		wireLogger(nil)
		f.Close()
	}, nil
}

// wireLogger hands the logger to every package that logs.
func wireLogger(logger *log.Logger) {
	slide.SetLogger(logger)
	tui.SetLogger(logger)
}

// loadConfig reads the puzzle config. Errors are reported and defaults are used.
func loadConfig() config.SlideConfig {
	slide.SetConfigPath(flagConfig)

	cfg, err := config.LoadSlide(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// runtimeConfig builds the runtime config from the terminal, flags and puzzle config.
func runtimeConfig(cfg config.SlideConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	if flagFPS > 0 {
		rc.TickRate = flagFPS
	} else if cfg.Clock.TickRate > 0 {
		rc.TickRate = cfg.Clock.TickRate
	}

	rc.Seed = flagSeed
	rc.BoardSize = cfg.Board.Size
	return rc
}
