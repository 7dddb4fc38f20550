// Package logging builds the charmbracelet/log loggers used across the
// maze binary, with optional size-based rotation of the log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/natefinch/lumberjack"

	"github.com/vovakirdan/maze-explorer/internal/config"
)

// Logger pairs a logger with the file it writes to, if any.
type Logger struct {
	*log.Logger
	out io.WriteCloser
}

// New builds a logger from cfg.
// When cfg.File is set, records go to a rotating logfmt file. Otherwise they
// go to fallback with the text formatter; pass io.Discard while a TUI owns
// the terminal.
func New(cfg config.LogConfig, prefix string, fallback io.Writer) (*Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", cfg.Level, err)
	}

	opts := log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	}

	if cfg.File == "" {
		return &Logger{Logger: log.NewWithOptions(fallback, opts)}, nil
	}

	path, err := config.ExpandHome(cfg.File)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: cannot create directory for %s: %w", path, err)
	}

	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    max(1, cfg.MaxSizeMB),
		MaxBackups: max(0, cfg.MaxBackups),
		MaxAge:     max(0, cfg.MaxAgeDays),
		Compress:   cfg.Compress,
	}
	opts.Formatter = log.LogfmtFormatter

	return &Logger{Logger: log.NewWithOptions(out, opts), out: out}, nil
}

// Close flushes and closes the log file. It is a no-op without one.
func (l *Logger) Close() error {
	if l.out == nil {
		return nil
	}
	return l.out.Close()
}
