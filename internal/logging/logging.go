// Package logging builds the zap logger. In interactive mode the terminal
// belongs to the TUI, so logs go to a file under the state directory;
// CLI subcommands log to stderr.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"handouts/internal/config"
)

// New builds a logger per the config. Disabled logging returns zap.NewNop,
// which callers can use unconditionally.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if !cfg.Enabled {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		zcfg.OutputPaths = []string{cfg.File}
		zcfg.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// NewInteractive routes logs to a file so they cannot corrupt the TUI. The
// default location is ~/.handouts/handouts.log.
func NewInteractive(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	if cfg.Enabled && cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			// No home, no file target; stay silent rather than fight
			// the TUI for the terminal.
			return zap.NewNop(), nil
		}
		cfg.File = filepath.Join(home, ".handouts", "handouts.log")
	}
	return New(cfg, verbose)
}
