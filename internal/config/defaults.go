package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/maze.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no YAML source
// can be read.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Storage: StorageConfig{
			Path: "~/.maze/scores.db",
		},
		Server: ServerConfig{
			Addr:        ":2222",
			HostKey:     "~/.maze/host_key",
			IdleTimeout: 10 * time.Minute,
		},
		Game: GameConfig{
			Player:         "player",
			WallRetryLimit: 100,
			TopScores:      10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
