package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-explorer/internal/maze"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level catalog",
	Long:  `Shows every level with its layout counts and hazard timings.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	levels := maze.Levels()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintln(out, "Levels:")
	fmt.Fprintln(out)

	// Print header
	fmt.Fprintf(out, "  %-5s  %-*s  %5s  %7s  %5s  %-10s  %s\n",
		"Level", maxNameLen, "Name", "Walls", "Enemies", "Coins", "Enemy tick", "Wall tick")
	fmt.Fprintf(out, "  %-5s  %-*s  %5s  %7s  %5s  %-10s  %s\n",
		"-----", maxNameLen, "----", "-----", "-------", "-----", "----------", "---------")

	for _, l := range levels {
		fmt.Fprintf(out, "  %-5d  %-*s  %5d  %7d  %5d  %-10s  %s\n",
			l.Number, maxNameLen, l.Name,
			len(l.Walls), len(l.Enemies), len(l.Coins),
			interval(l.EnemyTick), interval(l.WallTick))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Each coin is worth %d points. Run 'maze play' to start.\n", maze.CoinValue)
}

// interval formats a tick period, with "-" for hazards that never move.
func interval(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.String()
}
