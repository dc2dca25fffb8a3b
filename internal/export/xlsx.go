package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/JonMunkholm/csvdash/internal/core"
)

const (
	sheetSummary = "Summary"
	sheetColumns = "Columns"
	sheetSeries  = "Time Series"
)

// WriteXLSX writes a workbook with a Summary sheet, a Columns sheet and,
// when the analysis has one, a Time Series sheet.
func WriteXLSX(w io.Writer, a *core.Analysis) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	xw := &workbook{f: f, bold: bold}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := xw.writeSummary(a); err != nil {
		return err
	}
	if err := xw.writeColumns(a); err != nil {
		return err
	}
	if len(a.Metrics.TimeSeries) > 0 {
		if err := xw.writeSeries(a); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx export: %w", err)
	}
	return nil
}

type workbook struct {
	f    *excelize.File
	bold int
}

func (x *workbook) row(sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := x.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, n, err)
	}
	return nil
}

func (x *workbook) header(sheet string, n int, names []string) error {
	values := make([]any, len(names))
	for i, name := range names {
		values[i] = name
	}
	if err := x.row(sheet, n, values); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, n)
	last, _ := excelize.CoordinatesToCellName(len(names), n)
	return x.f.SetCellStyle(sheet, first, last, x.bold)
}

func (x *workbook) writeSummary(a *core.Analysis) error {
	dm := a.Metrics
	info := [][]any{
		{"File", a.FileName},
		{"Analyzed", a.CreatedAt.Format("2006-01-02 15:04:05 MST")},
		{"Rows", dm.RowCount},
		{"Summary", dm.Summary},
	}
	n := 1
	for _, r := range info {
		if err := x.row(sheetSummary, n, r); err != nil {
			return err
		}
		n++
	}

	n++
	if err := x.header(sheetSummary, n, metricHeader); err != nil {
		return err
	}
	for _, m := range dm.TopMetrics {
		n++
		if err := x.row(sheetSummary, n, []any{m.Name, m.Value, m.Unit, m.Trend}); err != nil {
			return err
		}
	}
	return x.f.SetColWidth(sheetSummary, "A", "B", 18)
}

func (x *workbook) writeColumns(a *core.Analysis) error {
	if _, err := x.f.NewSheet(sheetColumns); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := x.header(sheetColumns, 1, columnHeader); err != nil {
		return err
	}
	for i, c := range a.Metrics.Columns {
		values := []any{
			c.Name, c.Count, c.Sum, c.Avg, c.Min, c.Max, c.Median,
			c.StdDev, c.First, c.Last, c.Trend, c.Slope, c.Unit,
		}
		if err := x.row(sheetColumns, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func (x *workbook) writeSeries(a *core.Analysis) error {
	if _, err := x.f.NewSheet(sheetSeries); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	if err := x.header(sheetSeries, 1, seriesHeader(a)); err != nil {
		return err
	}
	for i, p := range a.Metrics.TimeSeries {
		if err := x.row(sheetSeries, i+2, []any{p.Timestamp, p.Value}); err != nil {
			return err
		}
	}
	return nil
}
