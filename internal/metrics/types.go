package metrics

import (
	"encoding/json"
)

// MaxTopMetrics is the most headline metrics a dashboard carries.
const MaxTopMetrics = 4

// MetricType describes how a metric value should be displayed.
type MetricType string

const (
	TypeNumber     MetricType = "number"
	TypePercentage MetricType = "percentage"
	TypeText       MetricType = "text"
	TypeDate       MetricType = "date"
)

// IsNumeric reports whether values of this type are carried in DataMetric.Value.
func (t MetricType) IsNumeric() bool {
	return t == TypeNumber || t == TypePercentage
}

// DataMetric is one headline statistic on the dashboard.
//
// Numeric metrics carry their value in Value; text and date metrics carry it
// in Text. Trend is the signed percentage change between the first and last
// observation of the column.
type DataMetric struct {
	Name  string
	Value float64
	Text  string
	Type  MetricType
	Unit  string
	Trend int
}

// metricWire is the serialized form shared by the JSON and YAML encoders.
type metricWire struct {
	Name  string     `json:"name" yaml:"name"`
	Value any        `json:"value" yaml:"value"`
	Type  MetricType `json:"type" yaml:"type"`
	Unit  string     `json:"unit,omitempty" yaml:"unit,omitempty"`
	Trend int        `json:"trend" yaml:"trend"`
}

func (m DataMetric) wire() metricWire {
	w := metricWire{Name: m.Name, Type: m.Type, Unit: m.Unit, Trend: m.Trend}
	if m.Type.IsNumeric() {
		w.Value = m.Value
	} else {
		w.Value = m.Text
	}
	return w
}

// MarshalJSON encodes value as a number for numeric types and a string otherwise.
func (m DataMetric) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.wire())
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (m DataMetric) MarshalYAML() (any, error) {
	return m.wire(), nil
}

// TimePoint is one observation of the dashboard time series.
type TimePoint struct {
	Timestamp string  `json:"timestamp" yaml:"timestamp"`
	Value     float64 `json:"value" yaml:"value"`
}

// DashboardMetrics is the result of one extraction. It is built once and
// never modified afterwards.
type DashboardMetrics struct {
	TopMetrics []DataMetric  `json:"topMetrics" yaml:"topMetrics"`
	TimeSeries []TimePoint   `json:"timeSeries,omitempty" yaml:"timeSeries,omitempty"`
	Summary    string        `json:"summary" yaml:"summary"`
	Columns    []ColumnStats `json:"columns" yaml:"columns"`
	RowCount   int           `json:"rowCount" yaml:"rowCount"`

	// TimeColumn and ValueColumn name the columns the time series was built
	// from. Both are empty when there is no time series.
	TimeColumn  string `json:"timeColumn,omitempty" yaml:"timeColumn,omitempty"`
	ValueColumn string `json:"valueColumn,omitempty" yaml:"valueColumn,omitempty"`
}

// Options tunes extraction. The zero value is ready to use.
type Options struct {
	// ValueColumn selects the numeric column plotted against the date/time
	// column. Empty, unknown or non-numeric names fall back to the first
	// numeric column that is not itself a date/time column.
	ValueColumn string

	// StrictNumbers requires the whole cell to be a number. By default a
	// cell only has to start with one, so "12.5%" reads as 12.5 and "42 kg"
	// as 42.
	StrictNumbers bool
}
