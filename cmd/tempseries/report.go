package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xtxerr/tempseries/series"
)

// report is the printable result for one input.
type report struct {
	Name        string
	Count       int
	Summary     series.Summary
	Percentiles *series.Percentiles
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatValues(values []float64, precision int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatValue(v, precision)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatSummary(sum series.Summary, precision int) string {
	return fmt.Sprintf("mean=%s std=%s min=%s max=%s",
		formatValue(sum.Mean, precision),
		formatValue(sum.StandardDeviation, precision),
		formatValue(sum.Min, precision),
		formatValue(sum.Max, precision))
}

func formatPercentiles(p series.Percentiles, precision int) string {
	return fmt.Sprintf("p50=%s p90=%s p95=%s p99=%s (±%g%%)",
		formatValue(p.P50, precision),
		formatValue(p.P90, precision),
		formatValue(p.P95, precision),
		formatValue(p.P99, precision),
		p.Accuracy*100)
}

func writeReport(w io.Writer, r report, precision int) error {
	line := fmt.Sprintf("%s: n=%d %s", r.Name, r.Count, formatSummary(r.Summary, precision))
	if r.Percentiles != nil {
		line += " " + formatPercentiles(*r.Percentiles, precision)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
