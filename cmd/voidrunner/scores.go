package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clonkbot/void-runner-60f04d/internal/runner"
	"github.com/clonkbot/void-runner-60f04d/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded high scores",
	Long: `Display the top 10 recorded runs and aggregate stats.

Examples:
  voidrunner scores
  voidrunner scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	game := runner.New()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(game.ID(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'voidrunner play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %s\n", i+1, runner.FormatScore(entry.Score), dateStr)
	}

	fmt.Println()
	if stats, statsErr := store.GetGameStats(game.ID()); statsErr == nil && stats.RunsCount > 0 {
		fmt.Printf("Best: %s   Runs: %d   Avg: %.0f\n",
			runner.FormatScore(stats.HighScore), stats.RunsCount, stats.AvgScore)
	}
}
