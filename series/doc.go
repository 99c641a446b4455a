// Package series provides an in-memory container for temperature readings
// and the descriptive statistics computed over it.
//
// # Creating a Store
//
// Create an empty store or one seeded with readings:
//
//	s := series.New()
//	s, err := series.FromValues([]float64{21.5, 19.0, 23.25})
//
// Readings below MinPossibleTemperature are rejected with ErrInvalidInput.
// There is no upper bound on accepted readings; MaxPossibleTemperature only
// seeds the search behind Max.
//
// # Appending
//
//	err := s.Append(18.5, 20.0)
//
// A rejected append leaves the store unchanged.
//
// # Statistics
//
// Every query on an empty store fails with ErrEmptySeries:
//
//	mean, _ := s.Mean()
//	std, _ := s.StandardDeviation()      // population standard deviation
//	lo, _ := s.Min()
//	hi, _ := s.Max()
//	near, _ := s.ClosestTo(20)           // ties go to the larger reading
//	cold, _ := s.LessThan(0)
//	sum, _ := s.Summary()
//
// # Percentiles
//
// Approximate percentiles come from a DDSketch built per call:
//
//	p, _ := s.Percentiles(0.01) // 1% relative accuracy
//	fmt.Println(p.P50, p.P99)
package series
