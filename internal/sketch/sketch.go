// Package sketch computes approximate quantiles over temperature readings
// using DDSketch.
package sketch

import (
	"fmt"

	"github.com/DataDog/sketches-go/ddsketch"

	"github.com/xtxerr/tempseries/internal/errors"
	"github.com/xtxerr/tempseries/internal/validation"
)

// Result holds the standard percentiles reported for a series.
type Result struct {
	P50 float64 // 50th percentile (median)
	P90 float64 // 90th percentile
	P95 float64 // 95th percentile
	P99 float64 // 99th percentile

	Accuracy float64 // Relative accuracy of every percentile above
}

var standardQuantiles = []float64{0.50, 0.90, 0.95, 0.99}

// Sketch is a quantile sketch over float64 readings. Negative readings are
// tracked in their own store, so sub-zero temperatures are fine.
//
// A Sketch is not safe for concurrent use.
type Sketch struct {
	accuracy float64
	count    int64
	sketch   *ddsketch.DDSketch
}

// New creates an empty sketch with the given relative accuracy
// (0.01 = 1% error).
func New(accuracy float64) (*Sketch, error) {
	if err := validation.ValidateAccuracy(accuracy); err != nil {
		return nil, err
	}
	dd, err := ddsketch.NewDefaultDDSketch(accuracy)
	if err != nil {
		return nil, errors.Wrap(err, "create sketch")
	}
	return &Sketch{accuracy: accuracy, sketch: dd}, nil
}

// FromValues creates a sketch and adds every value to it.
func FromValues(values []float64, accuracy float64) (*Sketch, error) {
	s, err := New(accuracy)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add adds a value to the sketch. NaN and infinite values are rejected with
// ErrUntrackableValue.
func (s *Sketch) Add(value float64) error {
	if err := s.sketch.Add(value); err != nil {
		return fmt.Errorf("add %g: %w: %w", value, errors.ErrUntrackableValue, err)
	}
	s.count++
	return nil
}

// Quantile returns the approximate value at quantile q.
func (s *Sketch) Quantile(q float64) (float64, error) {
	if s.count == 0 {
		return 0, errors.ErrEmptySeries
	}
	if err := validation.ValidateQuantile(q); err != nil {
		return 0, err
	}
	v, err := s.sketch.GetValueAtQuantile(q)
	if err != nil {
		return 0, errors.Wrapf(err, "quantile %g", q)
	}
	return v, nil
}

// Result returns the standard percentiles.
func (s *Sketch) Result() (Result, error) {
	if s.count == 0 {
		return Result{}, errors.ErrEmptySeries
	}
	values, err := s.sketch.GetValuesAtQuantiles(standardQuantiles)
	if err != nil {
		return Result{}, errors.Wrap(err, "percentiles")
	}
	return Result{
		P50:      values[0],
		P90:      values[1],
		P95:      values[2],
		P99:      values[3],
		Accuracy: s.accuracy,
	}, nil
}
