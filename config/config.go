// Package config provides configuration loading and management for the
// scoring engine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete scoring engine configuration
type Config struct {
	Fetch      FetchConfig      `yaml:"fetch"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Validation ValidationConfig `yaml:"validation"`
	Batch      BatchConfig      `yaml:"batch"`
	NATS       NATSConfig       `yaml:"nats"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// FetchConfig configures network reachability checks
type FetchConfig struct {
	// Enabled toggles network checks; disabled scores reachability as zero
	Enabled bool `yaml:"enabled"`
	// Timeout is the per-request timeout
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent is sent on every reachability request
	UserAgent string `yaml:"user_agent"`
}

// ScoringConfig configures the rubric calculators
type ScoringConfig struct {
	// AccessAggregation combines per-distribution access points: "sum" or "max"
	AccessAggregation string `yaml:"access_aggregation"`
	// InheritLabels lets resources inherit titles and descriptions from
	// their containers during forward chaining
	InheritLabels bool `yaml:"inherit_labels"`
}

// ValidationConfig configures input shape validation
type ValidationConfig struct {
	// Shapes is the path to a Turtle shapes graph (empty = no validation)
	Shapes string `yaml:"shapes"`
}

// BatchConfig configures directory scoring runs
type BatchConfig struct {
	// Pattern is the glob matched against input directories (default: **/*.ttl)
	Pattern string `yaml:"pattern"`
	// ContextDir holds graphs merged into every input before scoring
	ContextDir string `yaml:"context_dir"`
	// OutputDir receives the per-input score files (default: scores/ under the input dir)
	OutputDir string `yaml:"output_dir"`
}

// NATSConfig configures score publishing
type NATSConfig struct {
	// URL is the NATS server URL (empty = publishing disabled)
	URL string `yaml:"url"`
	// Subject is the publish subject for score messages
	Subject string `yaml:"subject"`
}

// MetricsConfig configures the Prometheus endpoint for batch runs
type MetricsConfig struct {
	// Listen is the metrics listen address (empty = metrics disabled)
	Listen string `yaml:"listen"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Fetch: FetchConfig{
			Enabled:   true,
			Timeout:   30 * time.Second,
			UserAgent: "semscore",
		},
		Scoring: ScoringConfig{
			AccessAggregation: "sum",
			InheritLabels:     true,
		},
		Batch: BatchConfig{
			Pattern: "**/*.ttl",
		},
		NATS: NATSConfig{
			Subject: "semscore.scores",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.Scoring.AccessAggregation != "sum" && c.Scoring.AccessAggregation != "max" {
		return fmt.Errorf("scoring.access_aggregation must be %q or %q", "sum", "max")
	}
	if c.Batch.Pattern == "" {
		return fmt.Errorf("batch.pattern is required")
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats.url is set")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
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

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Fetch
	if other.Fetch.Timeout != 0 {
		c.Fetch.Timeout = other.Fetch.Timeout
	}
	if other.Fetch.UserAgent != "" {
		c.Fetch.UserAgent = other.Fetch.UserAgent
	}
	c.Fetch.Enabled = other.Fetch.Enabled

	// Scoring
	if other.Scoring.AccessAggregation != "" {
		c.Scoring.AccessAggregation = other.Scoring.AccessAggregation
	}
	c.Scoring.InheritLabels = other.Scoring.InheritLabels

	// Validation
	if other.Validation.Shapes != "" {
		c.Validation.Shapes = other.Validation.Shapes
	}

	// Batch
	if other.Batch.Pattern != "" {
		c.Batch.Pattern = other.Batch.Pattern
	}
	if other.Batch.ContextDir != "" {
		c.Batch.ContextDir = other.Batch.ContextDir
	}
	if other.Batch.OutputDir != "" {
		c.Batch.OutputDir = other.Batch.OutputDir
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}

	// Metrics
	if other.Metrics.Listen != "" {
		c.Metrics.Listen = other.Metrics.Listen
	}
}
