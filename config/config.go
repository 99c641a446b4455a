package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/xtxerr/tempseries/internal/errors"
)

// Config represents the complete tempseries configuration.
type Config struct {
	// Log configures structured logging.
	Log LogConfig `yaml:"log"`

	// Report configures how statistics are printed.
	Report ReportConfig `yaml:"report"`

	// Shell configures the interactive shell.
	Shell ShellConfig `yaml:"shell"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// JSON switches the output from text to JSON.
	JSON bool `yaml:"json"`
}

// ReportConfig configures how statistics are printed.
type ReportConfig struct {
	// Precision is the number of decimals printed.
	Precision int `yaml:"precision"`

	// Percentiles adds p50/p90/p95/p99 to batch reports.
	Percentiles bool `yaml:"percentiles"`

	// Accuracy is the relative accuracy of percentiles (0.01 = 1% error).
	Accuracy float64 `yaml:"accuracy"`
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	// Prompt is the prefix shown before each command.
	Prompt string `yaml:"prompt"`

	// MaxSuggestions limits completion entries shown at once.
	MaxSuggestions int `yaml:"max_suggestions"`
}

// Load loads configuration from a YAML file. Fields missing from the file
// keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}

// LoadOrDefault loads the config at path, falling back to defaults when the
// file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
			JSON:  DefaultLogJSON,
		},
		Report: ReportConfig{
			Precision:   DefaultPrecision,
			Percentiles: DefaultPercentilesEnabled,
			Accuracy:    DefaultPercentileAccuracy,
		},
		Shell: ShellConfig{
			Prompt:         DefaultPrompt,
			MaxSuggestions: DefaultMaxSuggestions,
		},
	}
}
