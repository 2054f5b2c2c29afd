package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/puzzle"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best results",
	Long: `Display the best results per board size. Fewer moves rank first,
ties go to the faster time.

Examples:
  slide scores
  slide scores --size 3
  slide scores --limit 20
  slide scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", 0, "Board size to show (0 = all sizes)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results per size")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored results")
}

func runScores(cmd *cobra.Command, _ []string) error {
	if flagScoresSize != 0 && !puzzle.ValidSize(flagScoresSize) {
		return fmt.Errorf("invalid --size %d: want %d..%d", flagScoresSize, puzzle.MinSize, puzzle.MaxSize)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearResults(slide.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "All results deleted.")
		return nil
	}

	sizes := []int{flagScoresSize}
	if flagScoresSize == 0 {
		sizes = sizes[:0]
		for size := puzzle.MinSize; size <= puzzle.MaxSize; size++ {
			sizes = append(sizes, size)
		}
	}

	for i, size := range sizes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printSize(cmd, store, size); err != nil {
			return err
		}
	}
	return nil
}

func printSize(cmd *cobra.Command, store *storage.Store, size int) error {
	out := cmd.OutOrStdout()

	results, err := store.TopResults(slide.GameID, size, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Fprintf(out, "Best results - %dx%d\n", size, size)
	fmt.Fprintln(out)

	if len(results) == 0 {
		fmt.Fprintln(out, "  No puzzles solved yet.")
		fmt.Fprintf(out, "  Play 'slide play --size %d' to set the first record!\n", size)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "------", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "local"
		}
		fmt.Fprintf(out, "  %-4d  %-6d  %-6s  %-12s  %s\n",
			i+1, r.Moves, puzzle.FormatElapsed(r.Seconds), player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(slide.GameID, size)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Solved: %d  Average: %.1f moves  Fastest: %s\n",
			stats.GamesCount, stats.AvgMoves, puzzle.FormatElapsed(stats.BestSeconds))
	}
	return nil
}
