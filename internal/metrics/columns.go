package metrics

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats summarizes the parsed numeric values of one column.
type ColumnStats struct {
	Name   string  `json:"name" yaml:"name"`
	Count  int     `json:"count" yaml:"count"`
	Sum    float64 `json:"sum" yaml:"sum"`
	Avg    float64 `json:"avg" yaml:"avg"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
	StdDev float64 `json:"stdDev" yaml:"stdDev"`
	First  float64 `json:"first" yaml:"first"`
	Last   float64 `json:"last" yaml:"last"`
	Trend  int     `json:"trend" yaml:"trend"`
	// Slope is the least-squares change per observation.
	Slope float64 `json:"slope" yaml:"slope"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Analyze returns statistics for every numeric column of t, in header order.
// Columns with no parseable value are left out.
func Analyze(t *Table, opts Options) []ColumnStats {
	var out []ColumnStats
	for _, h := range t.Headers {
		values := NumericValues(t.Column(h), opts.StrictNumbers)
		if len(values) == 0 {
			continue
		}
		out = append(out, AnalyzeColumn(h, values))
	}
	return out
}

// NumericValues parses cells in order and drops the ones that are not numbers.
func NumericValues(cells []string, strict bool) []float64 {
	var values []float64
	for _, c := range cells {
		if v, ok := parseNumber(c, strict); ok {
			values = append(values, v)
		}
	}
	return values
}

// AnalyzeColumn computes statistics for a non-empty series of values.
func AnalyzeColumn(name string, values []float64) ColumnStats {
	cs := ColumnStats{
		Name:  name,
		Count: len(values),
		Unit:  DetectUnit(name),
	}
	if len(values) == 0 {
		return cs
	}

	// stats only errors on empty input, ruled out above.
	cs.Sum, _ = stats.Sum(values)
	cs.Avg, _ = stats.Mean(values)
	cs.Min, _ = stats.Min(values)
	cs.Max, _ = stats.Max(values)
	cs.Median, _ = stats.Median(values)
	cs.StdDev, _ = stats.StandardDeviation(values)

	cs.First = values[0]
	cs.Last = values[len(values)-1]
	cs.Trend = Trend(values)
	cs.Slope = slope(values)
	return cs
}

// Trend is the rounded percentage change from the first to the last value.
// It is 0 with fewer than two values or when the first value is 0.
func Trend(values []float64) int {
	if len(values) < 2 {
		return 0
	}
	first, last := values[0], values[len(values)-1]
	if first == 0 {
		return 0
	}

	pct := roundHalfUp((last - first) / first * 100)
	switch {
	case math.IsNaN(pct):
		return 0
	case pct > math.MaxInt32:
		return math.MaxInt32
	case pct < math.MinInt32:
		return math.MinInt32
	}
	return int(pct)
}

// roundHalfUp rounds to the nearest integer with halves going toward
// positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func slope(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	xs := make([]float64, len(values))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, beta := stat.LinearRegression(xs, values, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0
	}
	return beta
}
