// Package export renders a stored analysis as a downloadable file.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JonMunkholm/csvdash/internal/core"
)

// ErrUnsupportedFormat is returned for formats other than csv and xlsx.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat reads a format name. Empty means csv.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// FileName derives the download name from the analyzed file's name.
func FileName(a *core.Analysis, f Format) string {
	base := a.FileName
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		base = base[:i]
	}
	if base == "" {
		base = "analysis"
	}
	return base + "-dashboard." + string(f)
}

// Write renders a in format f.
func Write(w io.Writer, a *core.Analysis, f Format) error {
	if a == nil || a.Metrics == nil {
		return errors.New("export: analysis has no metrics")
	}
	switch f {
	case FormatCSV:
		return WriteCSV(w, a)
	case FormatXLSX:
		return WriteXLSX(w, a)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Header rows shared by both formats.
var (
	metricHeader = []string{"Metric", "Value", "Unit", "Trend (%)"}
	columnHeader = []string{
		"Column", "Count", "Sum", "Average", "Min", "Max", "Median",
		"Std Dev", "First", "Last", "Trend (%)", "Slope", "Unit",
	}
)

func seriesHeader(a *core.Analysis) []string {
	value := a.Metrics.ValueColumn
	if value == "" {
		value = "Value"
	}
	return []string{a.Metrics.TimeColumn, value}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeFormula prefixes text that a spreadsheet would evaluate as a formula
// with a single quote. Only text taken from the upload goes through it;
// numbers are written as they are.
func escapeFormula(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
