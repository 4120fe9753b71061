// Package config loads rtree settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the tunables of the rtree command.
type Config struct {
	CacheCapacity   int     `envconfig:"CACHE_CAPACITY" default:"128"`
	CacheShards     int     `envconfig:"CACHE_SHARDS" default:"0"`
	LogLevel        string  `envconfig:"LOG_LEVEL" default:"warn"`
	FontDir         string  `envconfig:"FONT_DIR"`
	StrokeTolerance float64 `envconfig:"STROKE_TOLERANCE" default:"0.25"`
	Workers         int     `envconfig:"WORKERS" default:"0"`
}

// Load reads RTREE_* environment variables over the defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("rtree", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.CacheCapacity <= 0 {
		return nil, fmt.Errorf("config: RTREE_CACHE_CAPACITY must be positive, got %d", cfg.CacheCapacity)
	}
	return &cfg, nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	return ParseLevel(c.LogLevel)
}

// ParseLevel parses a level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("config: log level %q: %w", s, err)
	}
	return level, nil
}
