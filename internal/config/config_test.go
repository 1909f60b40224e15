package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsAreUsable(t *testing.T) {
	cfg := Default()
	if cfg.Insight.Model == "" {
		t.Fatalf("default model missing")
	}
	if cfg.InsightTimeout() != 10*time.Second {
		t.Fatalf("unexpected default insight timeout: %v", cfg.InsightTimeout())
	}
	if cfg.AuthDelay() != 1500*time.Millisecond {
		t.Fatalf("unexpected default auth delay: %v", cfg.AuthDelay())
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Insight.Model != Default().Insight.Model {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadReadsFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
insight:
  model: gemini-test
  timeout: 3s
auth:
  delay: 1ms
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Insight.Model != "gemini-test" {
		t.Fatalf("file value ignored: %+v", cfg.Insight)
	}
	if cfg.InsightTimeout() != 3*time.Second {
		t.Fatalf("timeout not parsed: %v", cfg.InsightTimeout())
	}
	if cfg.AuthDelay() != time.Millisecond {
		t.Fatalf("delay not parsed: %v", cfg.AuthDelay())
	}
	if !cfg.Logging.Enabled {
		t.Fatalf("untouched defaults should survive a partial file")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("insight:\n  timeout: soon\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}

func TestEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-gemini-env")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Insight.APIKey != "from-gemini-env" {
		t.Fatalf("GEMINI_API_KEY not applied: %q", cfg.Insight.APIKey)
	}

	t.Setenv("HANDOUTS_API_KEY", "from-handouts-env")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Insight.APIKey != "from-handouts-env" {
		t.Fatalf("HANDOUTS_API_KEY should win: %q", cfg.Insight.APIKey)
	}
}
