package internal

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/docscheck/internal/checker"
	"github.com/starford/docscheck/internal/models"
)

// Config represents the application configuration.
type Config struct {
	App         ApplicationConfig   `yaml:"app"`
	Docs        DocsConfig          `yaml:"docs"`
	LegacyPaths []models.LegacyPath `yaml:"legacy_paths"`
	Watch       WatchConfig         `yaml:"watch"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Docs.Validate(); err != nil {
		return err
	}
	for i := range c.LegacyPaths {
		lp := &c.LegacyPaths[i]
		if err := validation.ValidateStruct(lp,
			validation.Field(&lp.Legacy, validation.Required),
			validation.Field(&lp.Replacement, validation.Required),
		); err != nil {
			return fmt.Errorf("legacy_paths[%d]: %w", i, err)
		}
	}
	return c.Watch.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// DocsConfig selects the documentation to scan.
//
// Patterns are slash-separated globs relative to Root; ** matches any
// number of directories.
type DocsConfig struct {
	Root     string   `yaml:"root"`
	Patterns []string `yaml:"patterns"`
}

// Validate validates the docs configuration.
func (c *DocsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Root, validation.Required),
		validation.Field(&c.Patterns, validation.Required, validation.Each(validation.Required)),
	)
}

// WatchConfig controls re-running the check on file changes.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// Validate validates the watch configuration.
func (c *WatchConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Debounce, validation.Required, validation.Min(10*time.Millisecond)),
	)
}

// NewDefaultConfig returns a new Config with the built-in patterns and legacy table.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Docs: DocsConfig{
			Root:     ".",
			Patterns: slices.Clone(checker.DefaultPatterns),
		},
		LegacyPaths: slices.Clone(checker.DefaultLegacyPaths),
		Watch: WatchConfig{
			Debounce: 300 * time.Millisecond,
		},
	}
}
