// Package config provides configuration loading and management for lv2ttl.
package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/lv2ttl/export"
	"github.com/c360studio/lv2ttl/vocabulary"
)

// Config represents the complete lv2ttl configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`

	// Prefixes adds or overrides namespace prefixes on top of the built-in
	// LV2 vocabularies.
	Prefixes map[string]string `yaml:"prefixes,omitempty"`
}

// RenderConfig configures the Turtle layout
type RenderConfig struct {
	// StartIndentLevel is the indentation level of top-level predicates (default: 1)
	StartIndentLevel int `yaml:"start_indent_level" env:"LV2TTL_START_INDENT_LEVEL"`
	// IndentSize is the number of spaces per level (default: 2)
	IndentSize int `yaml:"indent_size" env:"LV2TTL_INDENT_SIZE"`
	// BlankLineBetweenStatements separates top-level predicates with an empty line (default: true)
	BlankLineBetweenStatements bool `yaml:"blank_line_between_statements" env:"LV2TTL_BLANK_LINES"`
}

// OutputConfig configures where documents are written
type OutputConfig struct {
	// Dir is the output directory (empty = next to each description)
	Dir string `yaml:"dir" env:"LV2TTL_OUT_DIR"`
	// Jobs is the number of descriptions processed in parallel (0 = GOMAXPROCS)
	Jobs int `yaml:"jobs" env:"LV2TTL_JOBS"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Debounce is how long to wait for more changes before regenerating
	Debounce time.Duration `yaml:"debounce" env:"LV2TTL_WATCH_DEBOUNCE"`
	// MetricsAddr serves Prometheus metrics when set (e.g. ":9090")
	MetricsAddr string `yaml:"metrics_addr" env:"LV2TTL_METRICS_ADDR"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	opts := export.DefaultOptions()
	return &Config{
		Render: RenderConfig{
			StartIndentLevel:           opts.StartIndentLevel,
			IndentSize:                 opts.IndentSize,
			BlankLineBetweenStatements: opts.BlankLineBetweenStatements,
		},
		Output: OutputConfig{
			Dir:  "",
			Jobs: 0,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Options returns the layout options for the renderer
func (c *Config) Options() export.Options {
	return export.Options{
		StartIndentLevel:           c.Render.StartIndentLevel,
		IndentSize:                 c.Render.IndentSize,
		BlankLineBetweenStatements: c.Render.BlankLineBetweenStatements,
	}
}

// Registry returns the default prefix registry extended with Prefixes
func (c *Config) Registry() (*vocabulary.Registry, error) {
	if len(c.Prefixes) == 0 {
		return vocabulary.Default(), nil
	}
	return vocabulary.Default().With(c.Prefixes)
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if c.Output.Jobs < 0 {
		return fmt.Errorf("output.jobs must be >= 0")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0")
	}
	if _, err := c.Registry(); err != nil {
		return fmt.Errorf("prefixes: %w", err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()
	if err := config.ApplyFile(path); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyFile overlays the YAML file at path. Only keys present in the file
// change; prefixes are merged with the ones already configured.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return c.apply(data)
}

func (c *Config) apply(data []byte) error {
	next := *c
	next.Prefixes = nil
	if err := yaml.Unmarshal(data, &next); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	prefixes := maps.Clone(c.Prefixes)
	if prefixes == nil {
		prefixes = make(map[string]string, len(next.Prefixes))
	}
	if err := mergo.Merge(&prefixes, next.Prefixes, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge prefixes: %w", err)
	}
	if len(prefixes) == 0 {
		prefixes = nil
	}
	next.Prefixes = prefixes

	*c = next
	return nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
