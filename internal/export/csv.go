package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/JonMunkholm/csvdash/internal/core"
)

// WriteCSV writes the analysis as sections separated by blank lines:
// summary, top metrics, column statistics and, when present, the time series.
// Text from the upload is escaped so spreadsheets do not run it as a formula.
func WriteCSV(w io.Writer, a *core.Analysis) error {
	dm := a.Metrics
	cw := csv.NewWriter(w)

	records := [][]string{
		{"File", escapeFormula(a.FileName)},
		{"Analyzed", a.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{"Rows", strconv.Itoa(dm.RowCount)},
		{"Summary", escapeFormula(dm.Summary)},
		{},
		metricHeader,
	}
	for _, m := range dm.TopMetrics {
		records = append(records, []string{escapeFormula(m.Name), formatFloat(m.Value), m.Unit, strconv.Itoa(m.Trend)})
	}

	records = append(records, []string{}, columnHeader)
	for _, c := range dm.Columns {
		records = append(records, []string{
			escapeFormula(c.Name),
			strconv.Itoa(c.Count),
			formatFloat(c.Sum),
			formatFloat(c.Avg),
			formatFloat(c.Min),
			formatFloat(c.Max),
			formatFloat(c.Median),
			formatFloat(c.StdDev),
			formatFloat(c.First),
			formatFloat(c.Last),
			strconv.Itoa(c.Trend),
			formatFloat(c.Slope),
			c.Unit,
		})
	}

	if len(dm.TimeSeries) > 0 {
		header := seriesHeader(a)
		records = append(records, []string{}, []string{escapeFormula(header[0]), escapeFormula(header[1])})
		for _, p := range dm.TimeSeries {
			records = append(records, []string{escapeFormula(p.Timestamp), formatFloat(p.Value)})
		}
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("write csv export: %w", err)
	}
	return nil
}
