package sketch

import (
	"math"
	"testing"

	"github.com/DataDog/sketches-go/ddsketch"

	"github.com/xtxerr/tempseries/internal/errors"
)

func TestSketch_Basic(t *testing.T) {
	s, err := New(0.01)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 1; i <= 100; i++ {
		if err := s.Add(float64(i)); err != nil {
			t.Fatalf("Add(%d): %v", i, err)
		}
	}

	result, err := s.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}

	// P50 should be around 50
	if math.Abs(result.P50-50.0) > 2.0 {
		t.Errorf("expected P50 near 50, got %f", result.P50)
	}

	// P95 should be around 95
	if math.Abs(result.P95-95.0) > 2.0 {
		t.Errorf("expected P95 near 95, got %f", result.P95)
	}

	// P99 should be around 99
	if math.Abs(result.P99-99.0) > 2.0 {
		t.Errorf("expected P99 near 99, got %f", result.P99)
	}

	if result.Accuracy != 0.01 {
		t.Errorf("expected accuracy=0.01, got %f", result.Accuracy)
	}
}

func TestSketch_NegativeReadings(t *testing.T) {
	values := make([]float64, 0, 101)
	for i := -50; i <= 50; i++ {
		values = append(values, float64(i))
	}

	s, err := FromValues(values, 0.01)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}

	low, err := s.Quantile(0)
	if err != nil {
		t.Fatalf("Quantile(0): %v", err)
	}
	if math.Abs(low-(-50.0)) > 1.0 {
		t.Errorf("expected minimum near -50, got %f", low)
	}

	median, err := s.Quantile(0.5)
	if err != nil {
		t.Fatalf("Quantile(0.5): %v", err)
	}
	if math.Abs(median) > 1.0 {
		t.Errorf("expected median near 0, got %f", median)
	}
}

func TestSketch_Empty(t *testing.T) {
	s, err := New(0.01)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := s.Quantile(0.5); !errors.Is(err, errors.ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
	if _, err := s.Result(); !errors.Is(err, errors.ErrEmptySeries) {
		t.Errorf("expected ErrEmptySeries, got %v", err)
	}
}

func TestSketch_InvalidParameters(t *testing.T) {
	if _, err := New(0); !errors.Is(err, errors.ErrInvalidAccuracy) {
		t.Errorf("expected ErrInvalidAccuracy, got %v", err)
	}

	s, err := FromValues([]float64{1, 2, 3}, 0.01)
	if err != nil {
		t.Fatalf("FromValues: %v", err)
	}
	if _, err := s.Quantile(1.5); !errors.Is(err, errors.ErrInvalidQuantile) {
		t.Errorf("expected ErrInvalidQuantile, got %v", err)
	}
}

func TestSketch_UntrackableValues(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantLib error
	}{
		{"nan", math.NaN(), ddsketch.ErrUntrackableNaN},
		{"positive infinity", math.Inf(1), ddsketch.ErrUntrackableTooHigh},
		{"negative infinity", math.Inf(-1), ddsketch.ErrUntrackableTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(0.01)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			err = s.Add(tt.value)
			if !errors.Is(err, errors.ErrUntrackableValue) {
				t.Fatalf("expected ErrUntrackableValue, got %v", err)
			}
			if !errors.Is(err, tt.wantLib) {
				t.Errorf("expected %v in chain, got %v", tt.wantLib, err)
			}
			if !errors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}

			// A rejected value is not counted.
			if _, err := s.Result(); !errors.Is(err, errors.ErrEmptySeries) {
				t.Errorf("expected ErrEmptySeries, got %v", err)
			}
		})
	}

	if _, err := FromValues([]float64{10, 20, math.NaN()}, 0.01); !errors.Is(err, errors.ErrUntrackableValue) {
		t.Errorf("expected ErrUntrackableValue from FromValues, got %v", err)
	}
}
