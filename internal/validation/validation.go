// Package validation provides centralized input validation for tempseries.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xtxerr/tempseries/internal/errors"
)

// =============================================================================
// Reading Validation
// =============================================================================

// FirstBelow returns the index of the first value strictly below minimum,
// or -1 if there is none. NaN never compares below and is not reported.
func FirstBelow(values []float64, minimum float64) int {
	for i, v := range values {
		if v < minimum {
			return i
		}
	}
	return -1
}

// ValidateReadings checks every value against the lower bound. Only the
// lower bound is enforced.
func ValidateReadings(values []float64, minimum float64) error {
	if i := FirstBelow(values, minimum); i >= 0 {
		return errors.NewInvalidReading(i, values[i], minimum)
	}
	return nil
}

// =============================================================================
// Query Parameter Validation
// =============================================================================

// ValidateQuantile checks that q lies within [0, 1].
func ValidateQuantile(q float64) error {
	if !(q >= 0 && q <= 1) {
		return fmt.Errorf("quantile %g: %w", q, errors.ErrInvalidQuantile)
	}
	return nil
}

// ValidateAccuracy checks that a relative accuracy lies within (0, 1).
func ValidateAccuracy(accuracy float64) error {
	if !(accuracy > 0 && accuracy < 1) {
		return fmt.Errorf("accuracy %g: %w", accuracy, errors.ErrInvalidAccuracy)
	}
	return nil
}

// =============================================================================
// Reading Parsing
// =============================================================================

// ParseReading parses a single textual reading such as "21.5" or "-3".
func ParseReading(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty reading: %w", errors.ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("'%s': %w", s, errors.ErrInvalidNumber)
	}
	return v, nil
}

// ParseReadings parses every field, failing on the first malformed one.
func ParseReadings(fields []string) ([]float64, error) {
	values := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := ParseReading(f)
		if err != nil {
			return nil, errors.Wrapf(err, "field %d", i)
		}
		values = append(values, v)
	}
	return values, nil
}

// IsComment reports whether a line carries no reading: blank lines and
// lines starting with '#'.
func IsComment(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}
