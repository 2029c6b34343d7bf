package printers_test

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/callmeBron/generics/printers"
	"github.com/callmeBron/generics/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return records
}

func TestNewCSVPrinter_FileNames(t *testing.T) {
	dir := t.TempDir()

	p, err := printers.NewCSVPrinter(filepath.Join(dir, "walkthrough"),
		printers.WithOutput[*printers.CSVPrinter](io.Discard))
	require.NoError(t, err)
	require.NoError(t, p.Done())

	assert.FileExists(t, filepath.Join(dir, "walkthrough.csv"))
	assert.FileExists(t, filepath.Join(dir, "walkthrough_summary.csv"))
}

func TestNewCSVPrinter_BadPath(t *testing.T) {
	_, err := printers.NewCSVPrinter(filepath.Join(t.TempDir(), "missing", "walkthrough.csv"))
	assert.Error(t, err)
}

func TestCSVPrinter_Entries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkthrough.csv")

	p, err := printers.NewCSVPrinter(path, printers.WithOutput[*printers.CSVPrinter](io.Discard))
	require.NoError(t, err)

	p.PrintEntry(report.Entry{Name: "text", Type: "string", Stage: report.StageInitial, Present: true, Value: "Hello, Developer!"})
	p.PrintEntry(report.Entry{Name: "text", Type: "string", Stage: report.StageCleared})
	require.NoError(t, p.Done())

	want := [][]string{
		{"Stage", "Name", "Type", "Present", "Value"},
		{"initial", "text", "string", "true", "Hello, Developer!"},
		{"cleared", "text", "string", "false", ""},
	}
	assert.Equal(t, want, readCSV(t, path))
}

func TestCSVPrinter_EntriesWithTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walkthrough.csv")

	p, err := printers.NewCSVPrinter(path,
		printers.WithTimestamp[*printers.CSVPrinter](),
		printers.WithOutput[*printers.CSVPrinter](io.Discard))
	require.NoError(t, err)

	p.PrintEntry(report.Entry{Name: "flag", Type: "bool", Stage: report.StageInitial, Present: true, Value: "true"})
	require.NoError(t, p.Done())

	records := readCSV(t, path)
	require.Len(t, records, 2)
	assert.Equal(t, "Timestamp", records[0][0])
	assert.NotEmpty(t, records[1][0])
	assert.Equal(t, "flag", records[1][2])
}

func TestCSVPrinter_Summary(t *testing.T) {
	dir := t.TempDir()

	p, err := printers.NewCSVPrinter(filepath.Join(dir, "walkthrough.csv"),
		printers.WithOutput[*printers.CSVPrinter](io.Discard))
	require.NoError(t, err)

	p.PrintSummary(&report.Summary{Title: "generics", Containers: 3, PresentBefore: 3, ItemsBefore: 4, Views: 3})
	require.NoError(t, p.Done())

	records := readCSV(t, filepath.Join(dir, "walkthrough_summary.csv"))
	assert.Equal(t, []string{"Metric", "Value"}, records[0])
	assert.Contains(t, records, []string{"Containers", "3"})
	assert.Contains(t, records, []string{"Present After", "0"})
	assert.Contains(t, records, []string{"Items Before", "4"})
}
