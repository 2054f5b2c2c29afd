package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/platform/tui"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/registry"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var flagSize int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the sliding puzzle",
	Long: `Start a sliding puzzle game.

Controls:
  Arrows/WASD  - Slide the tile next to the blank into it
  Mouse click  - Slide the clicked tile (must touch the blank)
  R/N          - New game
  3/4/5        - Change board size (after the puzzle is solved)
  H            - Toggle hints for movable tiles
  Ctrl+S       - Save a screenshot to ~/.slide/screenshots
  Esc/B, Q     - Quit

Examples:
  slide play
  slide play --size 3
  slide play --seed 42
  slide play --config ./my-slide.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size 3, 4 or 5 (0 = use config)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagSize != 0 && !puzzle.ValidSize(flagSize) {
		return fmt.Errorf("invalid --size %d: want %d..%d", flagSize, puzzle.MinSize, puzzle.MaxSize)
	}

	closeLog, err := setupTUILogging()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig(loadConfig())
	if flagSize != 0 {
		cfg.BoardSize = flagSize
	}

	game, err := registry.Create(slide.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
