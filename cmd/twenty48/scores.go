package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/twenty48/internal/game"
	"github.com/vovakirdan/twenty48/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode (default: classic).

Examples:
  twenty48 scores
  twenty48 scores endless
  twenty48 scores --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	mode := "classic"
	if len(args) > 0 {
		mode = args[0]
	}

	if !game.ValidMode(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Valid modes are: classic, endless.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(mode, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'twenty48 play --mode %s' to set the first high score!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-9s  %s\n", "Rank", "Score", "Moves", "Max Tile", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-9s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-7d  %-9d  %s\n", i+1, entry.Score, entry.Moves, entry.MaxTile, dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.Stats(mode); statsErr == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestTile)
	}
}
