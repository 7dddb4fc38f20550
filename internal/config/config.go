// Package config provides YAML-based configuration loading for Maze
// Explorer: logging, the score database, the SSH server and game tunables.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the maze binary.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Game    GameConfig    `yaml:"game"`

	// Source is where the configuration was read from.
	Source string `yaml:"-"`
}

// LogConfig defines log level and rotation of the optional log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty logs to stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Addr        string        `yaml:"addr"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// GameConfig defines gameplay tunables.
type GameConfig struct {
	Player         string `yaml:"player"`           // Name recorded with local runs
	WallRetryLimit int    `yaml:"wall_retry_limit"` // Random cells tried per wall tick
	TopScores      int    `yaml:"top_scores"`       // Rows in the scoreboard
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("config: log rotation values must not be negative")
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage path is empty")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: negative idle timeout %s", c.Server.IdleTimeout)
	}
	if c.Game.WallRetryLimit < 1 {
		return fmt.Errorf("config: wall_retry_limit must be at least 1, got %d", c.Game.WallRetryLimit)
	}
	if c.Game.TopScores < 1 {
		return fmt.Errorf("config: top_scores must be at least 1, got %d", c.Game.TopScores)
	}
	return nil
}
