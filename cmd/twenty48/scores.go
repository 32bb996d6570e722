package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"twenty48/internal/game"
	"twenty48/internal/platform/tui"
	"twenty48/internal/storage"
)

var (
	flagScoresSize  int
	flagScoresLimit int
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores for a board size.

Examples:
  twenty48 scores
  twenty48 scores --size 5
  twenty48 scores --limit 25
  twenty48 scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresSize, "size", game.DefaultSize, "Board size to show scores for")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, flagScoresSize, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	results, err := store.TopResults(flagScoresSize, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %dx%d\n", flagScoresSize, flagScoresSize)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'twenty48 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "Rank", "Score", "Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-4s  %s\n", "----", "-----", "----", "---", "----")

	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-4s  %s\n", i+1, r.Score, r.MaxTile, won, dateStr)
	}

	fmt.Println()
	stats, err := store.GetStats(flagScoresSize)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Avg score: %.0f\n",
			stats.GamesCount, stats.WinsCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}
