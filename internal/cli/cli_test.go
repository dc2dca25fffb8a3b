package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/JonMunkholm/csvdash/internal/core"
)

const salesCSV = `Month,Sales,Units,Profit
Jan,5000,100,1000
Feb,5500,120,1200
Mar,5800,150,1400
Apr,7200,180,2100`

const visitsCSV = `Date,Sessions,Bounce Rate
2026-01-01,120,40
2026-01-02,150,35
2026-01-03,180,30`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeTable(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sales.csv", salesCSV)

	out, err := run(t, "analyze", path)
	require.NoError(t, err)

	assert.Contains(t, out, "sales.csv (4 rows)")
	assert.Contains(t, out, "23,500")
	assert.Contains(t, out, "↑ 44%")
	assert.Contains(t, out, "Key trends: Sales ↑ 44%, Units ↑ 80%, Profit ↑ 110%")
	assert.NotContains(t, out, "Time series")
}

func TestAnalyzeTableWithColumnsAndSeries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "visits.csv", visitsCSV)

	out, err := run(t, "analyze", "--columns", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Time series: Sessions by Date, 3 points (2026-01-01 to 2026-01-03)")
	assert.Contains(t, out, "Std Dev")
	assert.Contains(t, out, "↓ 25%")
}

func TestAnalyzeJSONKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "visits.csv", visitsCSV)
	b := writeFile(t, dir, "sales.csv", salesCSV)

	out, err := run(t, "analyze", "-o", "json", a, b)
	require.NoError(t, err)

	var results []core.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "visits.csv", results[0].FileName)
	assert.Equal(t, "sales.csv", results[1].FileName)
	assert.Equal(t, "Date", results[0].Metrics.TimeColumn)
}

func TestAnalyzeYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sales.csv", salesCSV)

	out, err := run(t, "analyze", "--output", "yaml", path)
	require.NoError(t, err)

	var results []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)

	dm := results[0]["metrics"].(map[string]any)
	top := dm["topMetrics"].([]any)
	first := top[0].(map[string]any)
	assert.Equal(t, "Sales", first["name"])
	assert.EqualValues(t, 23500, first["value"])
	assert.Equal(t, "number", first["type"])
}

func TestAnalyzeValueColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "visits.csv", visitsCSV)

	out, err := run(t, "analyze", "-o", "json", "--value-column", "Bounce Rate", path)
	require.NoError(t, err)

	var results []core.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Equal(t, "Bounce Rate", results[0].Metrics.ValueColumn)
	assert.Equal(t, 40.0, results[0].Metrics.TimeSeries[0].Value)
}

func TestAnalyzeStrict(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "rates.csv", "Rate\n10%\n20%")

	out, err := run(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "↑ 100%")

	out, err = run(t, "analyze", "--strict", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No numeric columns found.")
}

func TestAnalyzeErrors(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "notes.txt", salesCSV)
	empty := writeFile(t, dir, "empty.csv", "")

	_, err := run(t, "analyze", txt)
	assert.ErrorIs(t, err, core.ErrNotCSV)

	_, err = run(t, "analyze", empty)
	require.Error(t, err)
	assert.Equal(t, "FILE005", core.MapError(err).Code)
	assert.Contains(t, err.Error(), "empty.csv")

	_, err = run(t, "analyze", filepath.Join(dir, "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = run(t, "analyze", "-o", "xml", empty)
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "analyze")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, core.ErrNotCSV)
	assert.Contains(t, buf.String(), "Code: FILE002")

	buf.Reset()
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
