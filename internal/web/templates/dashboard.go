package templates

import (
	"github.com/a-h/templ"

	"github.com/JonMunkholm/csvdash/internal/core"
	"github.com/JonMunkholm/csvdash/internal/metrics"
)

// DashboardPage shows a stored analysis as a full page.
func DashboardPage(a *core.Analysis) templ.Component {
	return Layout(a.FileName, Dashboard(a))
}

// Dashboard renders the summary, top metric cards, time series and column
// statistics of an analysis. It is also the htmx fragment returned after an
// upload.
func Dashboard(a *core.Analysis) templ.Component {
	return component(func(h *htmlWriter) {
		dm := a.Metrics
		h.raw(`<section class="card" id="dashboard"><h2>`)
		h.text(a.FileName)
		h.raw(`</h2><p>`)
		h.text(dm.Summary)
		h.raw(`</p><p class="muted">`)
		h.text(FormatNumber(float64(dm.RowCount)) + " rows · " + FormatBytes(a.SizeBytes) + " · " + formatTime(a.CreatedAt))
		h.raw(` · <a href="`)
		h.text(exportURL(a.ID, "csv"))
		h.raw(`">CSV</a> · <a href="`)
		h.text(exportURL(a.ID, "xlsx"))
		h.raw(`">Excel</a></p></section>`)

		if len(dm.TopMetrics) == 0 {
			h.raw(`<section class="card"><p class="muted">No numeric columns found.</p></section>`)
		} else {
			h.raw(`<section class="metrics">`)
			for _, m := range dm.TopMetrics {
				h.render(MetricCard(m))
			}
			h.raw(`</section>`)
		}

		if len(dm.TimeSeries) > 0 {
			h.raw(`<section class="card"><h3>`)
			h.text(dm.ValueColumn + " by " + dm.TimeColumn)
			h.raw(`</h3>`)
			h.render(LineChart(dm.TimeSeries, dm.ValueColumn))
			h.raw(`</section>`)
		}

		if len(dm.Columns) > 0 {
			h.raw(`<section class="card"><h3>Column statistics</h3>`)
			h.render(ColumnTable(dm.Columns))
			h.raw(`</section>`)
		}
	})
}

// MetricCard renders one top metric.
func MetricCard(m metrics.DataMetric) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<div class="card metric"><div class="name">`)
		h.text(m.Name)
		h.raw(`</div><div class="value">`)
		h.text(FormatMetricValue(m))
		h.raw(`</div><div class="`)
		h.raw(trendClass(m.Trend))
		h.raw(`">`)
		h.text(TrendLabel(m.Trend))
		h.raw(`</div></div>`)
	})
}

// ColumnTable lists the statistics of every numeric column.
func ColumnTable(cols []metrics.ColumnStats) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<table><thead><tr><th>Column</th><th>Count</th><th>Sum</th><th>Average</th>`)
		h.raw(`<th>Median</th><th>Min</th><th>Max</th><th>Std Dev</th><th>Trend</th></tr></thead><tbody>`)
		for _, c := range cols {
			h.raw(`<tr><td>`)
			h.text(c.Name)
			for _, v := range []string{
				FormatNumber(float64(c.Count)),
				WithUnit(c.Sum, c.Unit),
				WithUnit(c.Avg, c.Unit),
				WithUnit(c.Median, c.Unit),
				WithUnit(c.Min, c.Unit),
				WithUnit(c.Max, c.Unit),
				FormatNumber(c.StdDev),
			} {
				h.raw(`</td><td>`)
				h.text(v)
			}
			h.raw(`</td><td class="`)
			h.raw(trendClass(c.Trend))
			h.raw(`">`)
			h.text(TrendLabel(c.Trend))
			h.raw(`</td></tr>`)
		}
		h.raw(`</tbody></table>`)
	})
}
