// Package config loads handouts configuration from YAML with environment
// overrides. Everything has a working default: with no file and no API key
// the app runs fully offline on the static insight provider.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all handouts configuration.
type Config struct {
	Insight InsightConfig `yaml:"insight"`
	Geo     GeoConfig     `yaml:"geo"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// InsightConfig configures the generative-text collaborator.
type InsightConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout string `yaml:"timeout"`
}

// GeoConfig configures reverse geocoding.
type GeoConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// AuthConfig configures the stub auth provider.
type AuthConfig struct {
	// Delay is how long the stub pretends to talk to a server.
	Delay string `yaml:"delay"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Insight: InsightConfig{
			Model:   "gemini-2.5-flash",
			Timeout: "10s",
		},
		Geo: GeoConfig{
			Timeout: "10s",
		},
		Auth: AuthConfig{
			Delay: "1500ms",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "",
		},
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".handouts", "config.yaml")
	}
	return "handouts.yaml"
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults only
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv layers environment variables over the file. A local .env is
// loaded first, best effort.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if key := os.Getenv("HANDOUTS_API_KEY"); key != "" {
		c.Insight.APIKey = key
	} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Insight.APIKey = key
	}
	if model := os.Getenv("HANDOUTS_MODEL"); model != "" {
		c.Insight.Model = model
	}
}

func (c *Config) validate() error {
	for name, v := range map[string]string{
		"insight.timeout": c.Insight.Timeout,
		"geo.timeout":     c.Geo.Timeout,
		"auth.delay":      c.Auth.Delay,
	} {
		if v == "" {
			continue
		}
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid duration for %s: %q", name, v)
		}
	}
	return nil
}

// parseDuration returns the parsed value or fallback for empty/bad input.
// validate has already rejected malformed file values; this guards direct
// struct construction.
func parseDuration(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// InsightTimeout returns the per-call insight timeout.
func (c Config) InsightTimeout() time.Duration {
	return parseDuration(c.Insight.Timeout, 10*time.Second)
}

// GeoTimeout returns the geocoding HTTP timeout.
func (c Config) GeoTimeout() time.Duration {
	return parseDuration(c.Geo.Timeout, 10*time.Second)
}

// AuthDelay returns the stub provider's simulated latency.
func (c Config) AuthDelay() time.Duration {
	return parseDuration(c.Auth.Delay, 1500*time.Millisecond)
}
