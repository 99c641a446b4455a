package series

import (
	"math"

	"github.com/xtxerr/tempseries/internal/errors"
	"github.com/xtxerr/tempseries/internal/logging"
	"github.com/xtxerr/tempseries/internal/validation"
)

const (
	// MinPossibleTemperature is the lowest accepted reading.
	MinPossibleTemperature = -273.0

	// MaxPossibleTemperature seeds the search behind Max. Readings above it
	// are still accepted.
	MaxPossibleTemperature = 1000.0
)

var (
	// ErrInvalidInput is returned when a reading is below MinPossibleTemperature.
	ErrInvalidInput = errors.ErrInvalidInput

	// ErrEmptySeries is returned by every query on a store with no readings.
	ErrEmptySeries = errors.ErrEmptySeries

	// ErrInvalidQuantile is returned by Quantile for q outside [0, 1].
	ErrInvalidQuantile = errors.ErrInvalidQuantile

	// ErrInvalidAccuracy is returned for a relative accuracy outside (0, 1).
	ErrInvalidAccuracy = errors.ErrInvalidAccuracy

	// ErrUntrackableValue is returned by Percentiles and Quantile when the
	// store holds a NaN or infinite reading.
	ErrUntrackableValue = errors.ErrUntrackableValue
)

// Store holds temperature readings in insertion order.
//
// The buffer grows by doubling; length counts the valid readings and may be
// smaller than the buffer. A Store is not safe for concurrent use.
type Store struct {
	buf    []float64 // len(buf) is the physical capacity
	length int
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// FromValues creates a store holding a copy of values.
func FromValues(values []float64) (*Store, error) {
	if err := validation.ValidateReadings(values, MinPossibleTemperature); err != nil {
		return nil, err
	}
	buf := make([]float64, len(values))
	copy(buf, values)
	return &Store{buf: buf, length: len(values)}, nil
}

// IsAcceptable reports whether every value is at or above
// MinPossibleTemperature.
func IsAcceptable(values []float64) bool {
	return validation.FirstBelow(values, MinPossibleTemperature) < 0
}

// Append adds readings in order. If any reading is rejected, none is added.
func (s *Store) Append(values ...float64) error {
	if err := validation.ValidateReadings(values, MinPossibleTemperature); err != nil {
		return err
	}
	for _, v := range values {
		if s.length == len(s.buf) {
			s.grow()
		}
		s.buf[s.length] = v
		s.length++
	}
	return nil
}

// grow doubles the physical capacity.
func (s *Store) grow() {
	capacity := len(s.buf) * 2
	if capacity == 0 {
		capacity = 1
	}
	buf := make([]float64, capacity)
	copy(buf, s.buf[:s.length])
	s.buf = buf

	logging.Component("series").Debug("buffer grown", "capacity", capacity, "length", s.length)
}

// Len returns the number of readings held.
func (s *Store) Len() int {
	return s.length
}

// Cap returns the physical capacity of the buffer.
func (s *Store) Cap() int {
	return len(s.buf)
}

// Values returns a copy of the readings in insertion order.
func (s *Store) Values() []float64 {
	out := make([]float64, s.length)
	copy(out, s.buf[:s.length])
	return out
}

func (s *Store) readings() []float64 {
	return s.buf[:s.length]
}

// Mean returns the arithmetic mean of the readings.
func (s *Store) Mean() (float64, error) {
	if s.length == 0 {
		return 0, ErrEmptySeries
	}
	sum := 0.0
	for _, v := range s.readings() {
		sum += v
	}
	return sum / float64(s.length), nil
}

// StandardDeviation returns the population standard deviation.
func (s *Store) StandardDeviation() (float64, error) {
	mean, err := s.Mean()
	if err != nil {
		return 0, err
	}
	sumSq := 0.0
	for _, v := range s.readings() {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(s.length)), nil
}

// Min returns the lowest reading.
func (s *Store) Min() (float64, error) {
	return s.ClosestTo(MinPossibleTemperature)
}

// Max returns the highest reading.
func (s *Store) Max() (float64, error) {
	return s.ClosestTo(MaxPossibleTemperature)
}

// ClosestToZero returns the reading closest to zero, preferring the positive
// one on a tie.
func (s *Store) ClosestToZero() (float64, error) {
	return s.ClosestTo(0)
}

// ClosestTo returns the reading nearest to target. When two readings are
// equally near, the larger one wins.
func (s *Store) ClosestTo(target float64) (float64, error) {
	if s.length == 0 {
		return 0, ErrEmptySeries
	}
	best := s.buf[0]
	bestDiff := math.Inf(1)
	for _, v := range s.readings() {
		diff := math.Abs(target - v)
		if diff < bestDiff || (diff == bestDiff && v > best) {
			best = v
			bestDiff = diff
		}
	}
	return best, nil
}

// LessThan returns the readings strictly below threshold, in insertion order.
func (s *Store) LessThan(threshold float64) ([]float64, error) {
	return s.filter(func(v float64) bool { return v < threshold })
}

// GreaterThan returns the readings strictly above threshold, in insertion
// order.
func (s *Store) GreaterThan(threshold float64) ([]float64, error) {
	return s.filter(func(v float64) bool { return v > threshold })
}

func (s *Store) filter(keep func(float64) bool) ([]float64, error) {
	if s.length == 0 {
		return nil, ErrEmptySeries
	}
	out := make([]float64, 0, s.length)
	for _, v := range s.readings() {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out, nil
}
