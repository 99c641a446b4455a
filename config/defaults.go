// Package config provides configuration defaults and loading for the
// tempseries command.
//
// This package defines all configurable constants with documented defaults.
// Users can override these values via a YAML config file or command flags.
package config

// =============================================================================
// Logging Defaults
// =============================================================================

const (
	// DefaultLogLevel is the minimum level that is logged.
	// Override via config: log.level
	DefaultLogLevel = "info"

	// DefaultLogJSON selects text output unless overridden.
	// Override via config: log.json
	DefaultLogJSON = false
)

// =============================================================================
// Report Defaults
// =============================================================================

const (
	// DefaultPrecision is the number of decimals printed for statistics.
	// Range: 0-15
	// Override via config: report.precision
	DefaultPrecision = 4

	// DefaultPercentilesEnabled adds p50/p90/p95/p99 to batch reports.
	// Override via config: report.percentiles
	DefaultPercentilesEnabled = false

	// DefaultPercentileAccuracy is the DDSketch relative accuracy.
	// 0.01 means every percentile is within 1% of the true value.
	// Range: (0, 1)
	// Override via config: report.accuracy
	DefaultPercentileAccuracy = 0.01

	// MaxPrecision is the largest accepted report.precision.
	MaxPrecision = 15
)

// =============================================================================
// Shell Defaults
// =============================================================================

const (
	// DefaultPrompt is the prefix shown by the interactive shell.
	// Override via config: shell.prompt
	DefaultPrompt = "tempseries> "

	// DefaultMaxSuggestions limits completion entries shown at once.
	// Override via config: shell.max_suggestions
	DefaultMaxSuggestions = 8
)
