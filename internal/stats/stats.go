package stats

// Package stats computes the post-run summary (mean, sample standard
// deviation, min, max) of each base metric across all error-free results.

import (
	"math"

	"github.com/stsnsn/ASTUR/internal/compose"
)

// Summary is the four-number summary of one metric across files.
type Summary struct {
	Mean  float64
	Stdev float64
	Min   float64
	Max   float64
}

// MetricNames lists the base metrics in report order.
var MetricNames = []string{"N_ARSC", "C_ARSC", "S_ARSC", "AvgResMW"}

// Summarize reduces one metric's values. Stdev is the sample standard
// deviation and reported as 0 for fewer than two values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}
	s := Summary{Min: values[0], Max: values[0]}
	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))
	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - s.Mean
			sq += d * d
		}
		s.Stdev = math.Sqrt(sq / float64(len(values)-1))
	}
	return s
}

// Report summarizes the four base metrics over error-free results and
// returns the summaries keyed by MetricNames plus the contributing count.
func Report(results []compose.Result) (map[string]Summary, int) {
	var n, c, s, mw []float64
	for _, r := range results {
		if r.Err != "" {
			continue
		}
		n = append(n, r.NARSC)
		c = append(c, r.CARSC)
		s = append(s, r.SARSC)
		mw = append(mw, r.AvgResMW)
	}
	return map[string]Summary{
		"N_ARSC":   Summarize(n),
		"C_ARSC":   Summarize(c),
		"S_ARSC":   Summarize(s),
		"AvgResMW": Summarize(mw),
	}, len(n)
}
