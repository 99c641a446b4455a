package config

import (
	"github.com/xtxerr/tempseries/internal/errors"
	"github.com/xtxerr/tempseries/internal/logging"
	"github.com/xtxerr/tempseries/internal/validation"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	errs := errors.NewValidationErrors()

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs.AddField("log.level", err.Error())
	}

	if c.Report.Precision < 0 || c.Report.Precision > MaxPrecision {
		errs.Add(errors.NewInvalidValue("report.precision", c.Report.Precision, "must be between 0 and 15"))
	}
	if err := validation.ValidateAccuracy(c.Report.Accuracy); err != nil {
		errs.Add(errors.NewInvalidValue("report.accuracy", c.Report.Accuracy, "must be within (0, 1)"))
	}

	if c.Shell.Prompt == "" {
		errs.AddMissing("shell.prompt")
	}
	if c.Shell.MaxSuggestions <= 0 {
		errs.Add(errors.NewInvalidValue("shell.max_suggestions", c.Shell.MaxSuggestions, "must be positive"))
	}

	return errs.Err()
}
