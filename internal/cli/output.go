package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/csvdash/internal/core"
	"github.com/JonMunkholm/csvdash/internal/metrics"
)

var printer = message.NewPrinter(language.English)

func render(w io.Writer, results []*core.Analysis, opts *analyzeOptions) error {
	switch opts.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, a := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			renderAnalysis(w, a, opts.columns)
		}
		return nil
	}
}

func renderAnalysis(w io.Writer, a *core.Analysis, withColumns bool) {
	dm := a.Metrics
	_, _ = fmt.Fprintf(w, "%s (%s rows)\n", a.FileName, formatNumber(float64(dm.RowCount)))

	if len(dm.TopMetrics) == 0 {
		_, _ = fmt.Fprintln(w, "No numeric columns found.")
	} else {
		renderTopMetrics(w, dm.TopMetrics)
	}
	_, _ = fmt.Fprintln(w, dm.Summary)

	if len(dm.TimeSeries) > 0 {
		first, last := dm.TimeSeries[0], dm.TimeSeries[len(dm.TimeSeries)-1]
		_, _ = fmt.Fprintf(w, "Time series: %s by %s, %d points (%s to %s)\n",
			dm.ValueColumn, dm.TimeColumn, len(dm.TimeSeries), first.Timestamp, last.Timestamp)
	}

	if withColumns && len(dm.Columns) > 0 {
		renderColumns(w, dm.Columns)
	}
}

func renderTopMetrics(w io.Writer, top []metrics.DataMetric) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Value", "Unit", "Trend"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, m := range top {
		value := m.Text
		if m.Type.IsNumeric() {
			value = formatNumber(m.Value)
		}
		t.AppendRow(table.Row{m.Name, value, m.Unit, formatTrend(m.Trend)})
	}
	t.Render()
}

func renderColumns(w io.Writer, cols []metrics.ColumnStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Column", "Count", "Sum", "Avg", "Median", "Min", "Max", "Std Dev", "Trend"})
	for _, c := range cols {
		t.AppendRow(table.Row{
			c.Name,
			c.Count,
			formatNumber(c.Sum),
			formatNumber(c.Avg),
			formatNumber(c.Median),
			formatNumber(c.Min),
			formatNumber(c.Max),
			formatNumber(c.StdDev),
			formatTrend(c.Trend),
		})
	}
	t.Render()
}

func formatNumber(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

func formatTrend(trend int) string {
	switch {
	case trend > 0:
		return "↑ " + strconv.Itoa(trend) + "%"
	case trend < 0:
		return "↓ " + strconv.Itoa(-trend) + "%"
	default:
		return "-"
	}
}
