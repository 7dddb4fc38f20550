package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-explorer/internal/core"
	"github.com/vovakirdan/maze-explorer/internal/platform/tui"
	"github.com/vovakirdan/maze-explorer/internal/storage"
)

var (
	flagSeed   int64
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a new run at level 1.

Controls:
  Arrows/WASD/HJKL  - Move
  Y/R               - Restart (after the run ends)
  N                 - Quit (after the run ends)
  Tab               - High scores (after the run ends)
  Q/Ctrl+C          - Quit

Logs are discarded while the game owns the terminal unless log.file is set
in the config.

Examples:
  maze play
  maze play --seed 42
  maze play --player ana`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your runs (default from config)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger("maze", io.Discard)
	if err != nil {
		return err
	}
	defer logger.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := flagPlayer
	if player == "" {
		player = appConfig.Game.Player
	}

	// Open score storage
	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
			Player:  player,
		},
		Store:          store,
		Logger:         logger.Logger,
		WallRetryLimit: appConfig.Game.WallRetryLimit,
		TopScores:      appConfig.Game.TopScores,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
