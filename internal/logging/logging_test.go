package logging

import (
	"os"
	"path/filepath"
	"testing"

	"handouts/internal/config"
)

func TestDisabledLoggingIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Enabled: false}, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("should go nowhere")
}

func TestFileLoggingWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "handouts.log")
	logger, err := New(config.LoggingConfig{Enabled: true, Level: "info", File: path}, false)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("log file empty")
	}
}

func TestInvalidLevelRejected(t *testing.T) {
	if _, err := New(config.LoggingConfig{Enabled: true, Level: "loud"}, false); err == nil {
		t.Fatalf("expected error for bad level")
	}
}
