package templates

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/JonMunkholm/csvdash/internal/metrics"
)

var printer = message.NewPrinter(language.English)

// FormatNumber groups thousands and keeps at most two decimals.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatMetricValue renders a metric with its unit.
func FormatMetricValue(m metrics.DataMetric) string {
	if !m.Type.IsNumeric() {
		return m.Text
	}
	return WithUnit(m.Value, m.Unit)
}

// WithUnit places unit the way it is usually read: "$1,200", "12%", "40 units".
func WithUnit(v float64, unit string) string {
	n := FormatNumber(v)
	switch unit {
	case "":
		return n
	case "$":
		if v < 0 {
			return "-$" + FormatNumber(-v)
		}
		return "$" + n
	case "%":
		return n + "%"
	default:
		return n + " " + unit
	}
}

// TrendLabel renders a trend percentage with a direction arrow.
func TrendLabel(trend int) string {
	switch {
	case trend > 0:
		return "↑ " + strconv.Itoa(trend) + "%"
	case trend < 0:
		return "↓ " + strconv.Itoa(-trend) + "%"
	default:
		return "0%"
	}
}

func trendClass(trend int) markup {
	switch {
	case trend > 0:
		return "trend up"
	case trend < 0:
		return "trend down"
	default:
		return "trend flat"
	}
}

// FormatBytes renders a byte count as B, KB or MB.
func FormatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return FormatNumber(float64(n)/(1<<20)) + " MB"
	case n >= 1<<10:
		return FormatNumber(float64(n)/(1<<10)) + " KB"
	default:
		return strconv.FormatInt(n, 10) + " B"
	}
}

func formatTime(t time.Time) string {
	return t.Format("Jan 2, 2006 15:04 MST")
}

func analysisURL(id string) string {
	return "/analysis/" + url.PathEscape(id)
}

func exportURL(id, format string) string {
	return "/api/history/" + url.PathEscape(id) + "/export?format=" + url.QueryEscape(format)
}
