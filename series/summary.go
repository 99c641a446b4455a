package series

import (
	"github.com/xtxerr/tempseries/internal/sketch"
)

// Summary bundles the basic statistics of a store at one point in time.
type Summary struct {
	Mean              float64
	StandardDeviation float64
	Min               float64
	Max               float64
}

// Percentiles holds approximate percentiles of a store.
type Percentiles struct {
	P50 float64 // 50th percentile (median)
	P90 float64 // 90th percentile
	P95 float64 // 95th percentile
	P99 float64 // 99th percentile

	// Accuracy is the relative error bound of each percentile.
	Accuracy float64
}

// Summary computes mean, standard deviation, min and max.
func (s *Store) Summary() (Summary, error) {
	mean, err := s.Mean()
	if err != nil {
		return Summary{}, err
	}
	std, err := s.StandardDeviation()
	if err != nil {
		return Summary{}, err
	}
	lo, err := s.Min()
	if err != nil {
		return Summary{}, err
	}
	hi, err := s.Max()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Mean:              mean,
		StandardDeviation: std,
		Min:               lo,
		Max:               hi,
	}, nil
}

// Percentiles estimates p50, p90, p95 and p99 within the given relative
// accuracy (0.01 = 1% error).
func (s *Store) Percentiles(accuracy float64) (Percentiles, error) {
	sk, err := s.buildSketch(accuracy)
	if err != nil {
		return Percentiles{}, err
	}
	r, err := sk.Result()
	if err != nil {
		return Percentiles{}, err
	}
	return Percentiles{
		P50:      r.P50,
		P90:      r.P90,
		P95:      r.P95,
		P99:      r.P99,
		Accuracy: r.Accuracy,
	}, nil
}

// Quantile estimates the reading at quantile q within the given relative
// accuracy.
func (s *Store) Quantile(q, accuracy float64) (float64, error) {
	sk, err := s.buildSketch(accuracy)
	if err != nil {
		return 0, err
	}
	return sk.Quantile(q)
}

func (s *Store) buildSketch(accuracy float64) (*sketch.Sketch, error) {
	if s.length == 0 {
		return nil, ErrEmptySeries
	}
	return sketch.FromValues(s.readings(), accuracy)
}
