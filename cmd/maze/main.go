// maze is a terminal maze game: collect coins, dodge enemies and reach the
// goal across three levels.
//
// Usage:
//
//	maze play                - Play in this terminal
//	maze levels              - Show the level catalog
//	maze scores              - Show high scores
//	maze serve               - Start SSH server for remote play
//	maze sim                 - Run a headless simulated game
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.maze/config.yaml, ./configs/maze.yaml)
//	--db <path>         - Set database path (default from config: ~/.maze/scores.db)
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-explorer/internal/config"
	"github.com/vovakirdan/maze-explorer/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string

	// appConfig is loaded before any subcommand runs.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze Explorer - a grid maze game for your terminal",
	Long: `Maze Explorer is a terminal game on a 10x10 grid. Collect coins,
avoid the wandering enemies and reach the goal to advance. Level 2 adds
patrolling enemies and level 3 walls that move.

Available commands:
  play     - Play in this terminal
  levels   - Show the level catalog
  scores   - View high scores
  serve    - Start SSH server for remote play
  sim      - Run a headless simulated game

Examples:
  maze play
  maze play --seed 42
  maze scores --limit 20
  maze serve --ssh :2222
  maze sim --seed 7 --duration 2m`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig resolves the configuration and applies global flag overrides.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	return nil
}

// newLogger builds the command logger. Without a log file, records go to
// fallback.
func newLogger(prefix string, fallback io.Writer) (*logging.Logger, error) {
	logger, err := logging.New(appConfig.Log, prefix, fallback)
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "source", appConfig.Source)
	return logger, nil
}
