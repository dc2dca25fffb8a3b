package metrics

import (
	"fmt"
	"regexp"
	"strings"
)

// timeColumnPattern marks headers whose values label time series points.
var timeColumnPattern = regexp.MustCompile(`(?i)date|time`)

// IsTimeColumn reports whether a header names a date or time column.
func IsTimeColumn(header string) bool {
	return timeColumnPattern.MatchString(header)
}

// Extract parses text and builds its dashboard metrics.
func Extract(text string, opts Options) (*DashboardMetrics, error) {
	t, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return ExtractTable(t, opts), nil
}

// ExtractTable builds dashboard metrics from an already parsed table.
func ExtractTable(t *Table, opts Options) *DashboardMetrics {
	columns := Analyze(t, opts)

	top := make([]DataMetric, 0, MaxTopMetrics)
	for _, c := range columns {
		if len(top) == MaxTopMetrics {
			break
		}
		top = append(top, DataMetric{
			Name:  c.Name,
			Value: c.Sum,
			Type:  TypeNumber,
			Unit:  c.Unit,
			Trend: c.Trend,
		})
	}

	dm := &DashboardMetrics{
		TopMetrics: top,
		Summary:    Summarize(top),
		Columns:    columns,
		RowCount:   len(t.Rows),
	}

	timeCol, valueCol := seriesColumns(t, columns, opts)
	if timeCol != "" && valueCol != "" {
		if series := buildTimeSeries(t, timeCol, valueCol, opts); len(series) > 0 {
			dm.TimeSeries = series
			dm.TimeColumn = timeCol
			dm.ValueColumn = valueCol
		}
	}

	return dm
}

// seriesColumns picks the label column (first date/time header) and the
// numeric column plotted against it.
func seriesColumns(t *Table, columns []ColumnStats, opts Options) (timeCol, valueCol string) {
	for _, h := range t.Headers {
		if IsTimeColumn(h) {
			timeCol = h
			break
		}
	}
	if timeCol == "" {
		return "", ""
	}

	if opts.ValueColumn != "" && opts.ValueColumn != timeCol {
		for _, c := range columns {
			if c.Name == opts.ValueColumn {
				return timeCol, c.Name
			}
		}
	}
	for _, c := range columns {
		if !IsTimeColumn(c.Name) {
			return timeCol, c.Name
		}
	}
	return timeCol, ""
}

// buildTimeSeries pairs each row's label with the same row's value. Rows
// with a blank label or a non-numeric value are skipped.
func buildTimeSeries(t *Table, timeCol, valueCol string, opts Options) []TimePoint {
	var series []TimePoint
	for _, row := range t.Rows {
		label := row[timeCol]
		if label == "" {
			continue
		}
		v, ok := parseNumber(row[valueCol], opts.StrictNumbers)
		if !ok {
			continue
		}
		series = append(series, TimePoint{Timestamp: label, Value: v})
	}
	return series
}

// Summarize describes the non-zero trends of the given metrics, e.g.
// "Key trends: Sales ↑ 44%, Churn ↓ 3%".
func Summarize(top []DataMetric) string {
	var fragments []string
	for _, m := range top {
		if m.Trend == 0 {
			continue
		}
		arrow := "↓"
		if m.Trend > 0 {
			arrow = "↑"
		}
		fragments = append(fragments, fmt.Sprintf("%s %s %d%%", m.Name, arrow, abs(m.Trend)))
	}
	if len(fragments) == 0 {
		return "Key trends: none"
	}
	return "Key trends: " + strings.Join(fragments, ", ")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
