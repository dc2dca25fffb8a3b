package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/csvdash/internal/metrics"
)

const (
	chartWidth  = 640
	chartHeight = 220
	chartPad    = 24

	// maxChartPoints caps how many points are drawn. Longer series are
	// sampled evenly, keeping the first and last point.
	maxChartPoints = 1000
)

// LineChart draws the time series as an inline SVG polyline.
func LineChart(points []metrics.TimePoint, label string) templ.Component {
	return component(func(h *htmlWriter) {
		if len(points) == 0 {
			return
		}
		points = samplePoints(points, maxChartPoints)
		xy := newChartScale(points)

		h.rawf(`<svg viewBox="0 0 %s %s" width="100%%" role="img" aria-label="`, strconv.Itoa(chartWidth), strconv.Itoa(chartHeight))
		h.text(label)
		h.raw(`">`)
		h.rawf(`<polyline fill="none" stroke="#2563eb" stroke-width="2" points="%s"/>`, polylinePoints(points, xy))
		for i, p := range points {
			x, y := xy.point(i, p.Value)
			h.rawf(`<circle cx="%s" cy="%s" r="3" fill="#2563eb"><title>`, x, y)
			h.text(p.Timestamp + ": " + FormatNumber(p.Value))
			h.raw(`</title></circle>`)
		}
		h.raw(`</svg>`)
	})
}

// samplePoints returns at most limit points spread evenly over points.
func samplePoints(points []metrics.TimePoint, limit int) []metrics.TimePoint {
	n := len(points)
	if n <= limit || limit < 2 {
		return points
	}
	out := make([]metrics.TimePoint, limit)
	for i := range out {
		out[i] = points[i*(n-1)/(limit-1)]
	}
	return out
}

func polylinePoints(points []metrics.TimePoint, xy chartScale) string {
	var b strings.Builder
	for i, p := range points {
		x, y := xy.point(i, p.Value)
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x)
		b.WriteByte(',')
		b.WriteString(y)
	}
	return b.String()
}

// chartScale maps series positions into the padded drawing area.
type chartScale struct {
	n      int
	lo, hi float64
}

func newChartScale(points []metrics.TimePoint) chartScale {
	s := chartScale{n: len(points), lo: points[0].Value, hi: points[0].Value}
	for _, p := range points[1:] {
		s.lo = min(s.lo, p.Value)
		s.hi = max(s.hi, p.Value)
	}
	return s
}

// point places the i-th value. A flat series sits on the vertical middle.
func (s chartScale) point(i int, v float64) (string, string) {
	innerW := float64(chartWidth - 2*chartPad)
	innerH := float64(chartHeight - 2*chartPad)

	x := float64(chartPad) + innerW/2
	if s.n > 1 {
		x = float64(chartPad) + innerW*float64(i)/float64(s.n-1)
	}
	y := float64(chartPad) + innerH/2
	if s.hi > s.lo {
		y = float64(chartPad) + innerH*(1-(v-s.lo)/(s.hi-s.lo))
	}
	return strconv.FormatFloat(x, 'f', 1, 64), strconv.FormatFloat(y, 'f', 1, 64)
}
