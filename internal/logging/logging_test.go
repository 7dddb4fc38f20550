package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/maze-explorer/internal/config"
)

func TestNewFallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "info"}, "maze", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer logger.Close()

	logger.Debug("hidden")
	logger.Info("started", "level", 1)

	out := buf.String()
	if !strings.Contains(out, "started") || !strings.Contains(out, "maze") {
		t.Errorf("Output = %q, expected message with prefix", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("Debug record should be filtered at info level")
	}
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "maze.log")
	cfg := config.LogConfig{
		Level:      "debug",
		File:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
	}

	logger, err := New(cfg, "maze", io.Discard)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("run saved", "run_id", "abc123", "score", 40)
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	out := string(data)
	for _, want := range []string{"run saved", "run_id=abc123", "score=40"} {
		if !strings.Contains(out, want) {
			t.Errorf("Log file %q missing %q", out, want)
		}
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "chatty"}, "", io.Discard); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestCloseWithoutFile(t *testing.T) {
	logger, err := New(config.LogConfig{Level: "warn"}, "", io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() = %v, expected nil", err)
	}
}
