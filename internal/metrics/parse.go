package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEmptyInput is returned when the input has no header row.
var ErrEmptyInput = errors.New("empty file: no header row to analyze")

// Row maps header names to trimmed cell text. Headers past the end of a short
// row are absent from the map.
type Row map[string]string

// Value returns the cell for header and whether the row had one.
func (r Row) Value(header string) (string, bool) {
	v, ok := r[header]
	return v, ok
}

// Table is parsed CSV: the header row plus every data row in input order.
type Table struct {
	Headers []string
	Rows    []Row
}

// Column returns the cells of one column in row order. Missing cells are
// returned as empty strings.
func (t *Table) Column(header string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[header]
	}
	return values
}

// Parse splits CSV text into headers and rows.
//
// The first line is the header row. Fields are comma separated; quoted fields
// may contain commas and newlines. Every header and cell is trimmed, blank
// lines are skipped, and fields beyond the header count are ignored.
func Parse(text string) (*Table, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("parse csv: %w", ErrEmptyInput)
	}

	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	record, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse csv: %w", ErrEmptyInput)
		}
		return nil, fmt.Errorf("parse csv header: %w", err)
	}

	headers := make([]string, len(record))
	for i, h := range record {
		headers[i] = strings.TrimSpace(h)
	}

	t := &Table{Headers: headers}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv row %d: %w", len(t.Rows)+1, err)
		}

		row := make(Row, len(headers))
		for i, h := range headers {
			if i >= len(record) {
				break
			}
			row[h] = strings.TrimSpace(record[i])
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}
