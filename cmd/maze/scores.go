package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-explorer/internal/platform/tui"
	"github.com/vovakirdan/maze-explorer/internal/storage"
)

var (
	flagLimit       int
	flagScoreUser   string
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

Examples:
  maze scores
  maze scores --limit 20
  maze scores --player ana
  maze scores --interactive`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of runs to show (default from config)")
	scoresCmd.Flags().StringVar(&flagScoreUser, "player", "", "Only show runs of this player")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
}

func runScores(cmd *cobra.Command, _ []string) error {
	limit := flagLimit
	if limit <= 0 {
		limit = appConfig.Game.TopScores
	}

	// Open score storage
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height, limit)
	}

	var runs []storage.Run
	if flagScoreUser != "" {
		runs, err = store.PlayerRuns(flagScoreUser, limit)
	} else {
		runs, err = store.TopRuns(limit)
	}
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Maze Explorer")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'maze play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-7s  %s\n", "Rank", "Player", "Score", "Level", "Outcome", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-6s  %-5s  %-7s  %s\n", "----", "------", "-----", "-----", "-------", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-12s  %-6d  %-5d  %-7s  %s\n", i+1, r.Player, r.Score, r.Level, r.Outcome, dateStr)
	}

	// Show totals
	fmt.Fprintln(out)
	if stats, err := store.Stats(); err == nil {
		fmt.Fprintf(out, "Best: %d  Runs: %d  Wins: %d  Average: %.1f\n",
			stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore)
	}
	return nil
}
