package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/towergate/internal/config"
	"github.com/vovakirdan/towergate/internal/storage"
)

var flagScoresDifficulty string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs, optionally filtered by difficulty,
followed by per-difficulty statistics.

Examples:
  towergate scores
  towergate scores --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Filter by difficulty: easy, normal, hard")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagScoresDifficulty != "" && !config.ValidPreset(flagScoresDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagScoresDifficulty)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns("towergate", flagScoresDifficulty, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "High Scores - Towergate"
	if flagScoresDifficulty != "" {
		title += " (" + flagScoresDifficulty + ")"
	}
	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'towergate play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "Rank", "Score", "Difficulty", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-8s  %s\n", "----", "-----", "----------", "------", "----")

	for i, entry := range runs {
		result := "lost"
		if entry.Won {
			result = "escaped"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10s  %-8s  %s\n", i+1, entry.Score, entry.Difficulty, result, dateStr)
	}

	stats, err := store.Stats("towergate")
	if err != nil || len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-6s  %-6s  %s\n", "Difficulty", "Runs", "Wins", "Best", "Avg")
	for _, st := range stats {
		fmt.Printf("  %-10s  %-6d  %-6d  %-6d  %.0f\n",
			st.Difficulty, st.RunsCount, st.Wins, st.HighScore, st.AvgScore)
	}
}
