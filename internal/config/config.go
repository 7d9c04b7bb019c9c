package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/MylesLandais/subsync/internal/subtitle"
)

// envPrefix is the prefix for environment overrides, e.g.
// SUBSYNC_MAX_CHARS_PER_LINE.
const envPrefix = "subsync"

// Config holds the subtitle timing and muxing parameters. Defaults come
// from Default(); a TOML file and environment variables may override
// them.
type Config struct {
	MaxCharsPerLine    int     `toml:"max_chars_per_line" split_words:"true" validate:"gt=0"`
	MaxLinesPerEntry   int     `toml:"max_lines_per_entry" split_words:"true" validate:"gt=0"`
	MinDurationSeconds float64 `toml:"min_duration_seconds" split_words:"true" validate:"gt=0"`
	MaxDurationSeconds float64 `toml:"max_duration_seconds" split_words:"true" validate:"gtefield=MinDurationSeconds"`
	MuxTimeoutSeconds  float64 `toml:"mux_timeout_seconds" split_words:"true" validate:"gt=0"`
	Language           string  `toml:"language" validate:"required"`
	TrackName          string  `toml:"track_name" split_words:"true" validate:"required"`
}

// Default returns the documented default configuration.
func Default() *Config {
	return &Config{
		MaxCharsPerLine:    50,
		MaxLinesPerEntry:   2,
		MinDurationSeconds: 1.0,
		MaxDurationSeconds: 6.0,
		MuxTimeoutSeconds:  300,
		Language:           "eng",
		TrackName:          "English",
	}
}

// Load builds the effective configuration: defaults, then the optional
// TOML file at path, then SUBSYNC_* environment overrides, then
// validation.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// SubtitleOptions converts the configuration into the limits used by
// the subtitle pipeline.
func (c *Config) SubtitleOptions() subtitle.Options {
	return subtitle.Options{
		MaxCharsPerLine:  c.MaxCharsPerLine,
		MaxLinesPerEntry: c.MaxLinesPerEntry,
		MinDuration:      secondsToDuration(c.MinDurationSeconds),
		MaxDuration:      secondsToDuration(c.MaxDurationSeconds),
	}
}

// MuxTimeout returns the wall-clock limit for external mux calls.
func (c *Config) MuxTimeout() time.Duration {
	return secondsToDuration(c.MuxTimeoutSeconds)
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
