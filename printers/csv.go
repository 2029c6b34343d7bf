package printers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/callmeBron/generics/option"
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
)

const (
	colTimestamp string = "Timestamp"
	colStage     string = "Stage"
	colName      string = "Name"
	colType      string = "Type"
	colPresent   string = "Present"
	colValue     string = "Value"
)

const (
	filePermission os.FileMode = 0644
	fileFlag       int         = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
)

// CSVPrinter writes container snapshots to one CSV file and the summary to another.
// Views and items are echoed to stdout since they have no tabular form.
type CSVPrinter struct {
	EntryWriter   *csv.Writer
	SummaryWriter *csv.Writer
	EntryFile     *os.File
	SummaryFile   *os.File
	headerDone    bool
	opt           options
}

type CSVPrinterOption = option.Option[CSVPrinter]

func (p *CSVPrinter) options() *options {
	return &p.opt
}

// NewCSVPrinter initializes a CSVPrinter instance with the given file path.
func NewCSVPrinter(filePath string, opts ...CSVPrinterOption) (*CSVPrinter, error) {
	entryFilename := addCSVExtension(filePath, false)

	entryFile, err := os.OpenFile(entryFilename, fileFlag, filePermission)
	if err != nil {
		return nil, fmt.Errorf("create entry CSV file %s: %w", entryFilename, err)
	}

	summaryFilename := addCSVExtension(filePath, true)

	summaryFile, err := os.OpenFile(summaryFilename, fileFlag, filePermission)
	if err != nil {
		entryFile.Close()
		return nil, fmt.Errorf("create summary CSV file %s: %w", summaryFilename, err)
	}

	p := &CSVPrinter{
		EntryWriter:   csv.NewWriter(entryFile),
		SummaryWriter: csv.NewWriter(summaryFile),
		EntryFile:     entryFile,
		SummaryFile:   summaryFile,
	}

	option.Apply(p, opts...)

	return p, nil
}

func addCSVExtension(filename string, withSummaryExt bool) string {
	if withSummaryExt {
		base := strings.TrimSuffix(filename, ".csv")
		return base + "_summary.csv"
	}

	if strings.HasSuffix(filename, ".csv") {
		return filename
	}

	return filename + ".csv"
}

func (p *CSVPrinter) writeHeader() error {
	headers := []string{colStage, colName, colType, colPresent, colValue}

	if p.opt.ShowTimestamp {
		headers = append([]string{colTimestamp}, headers...)
	}

	if err := p.EntryWriter.Write(headers); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}

	p.headerDone = true
	return nil
}

// PrintStart prints where the output is being saved.
func (p *CSVPrinter) PrintStart(title string) {
	fmt.Fprintf(p.opt.writer(), "Walking through %s - saving entries to: %s\n", title, p.EntryFile.Name())
}

// PrintEntry writes one container snapshot as a CSV row.
func (p *CSVPrinter) PrintEntry(e report.Entry) {
	if !p.headerDone {
		if err := p.writeHeader(); err != nil {
			p.PrintError("%v", err)
			return
		}
	}

	record := []string{
		string(e.Stage),
		e.Name,
		e.Type,
		strconv.FormatBool(e.Present),
		e.Value,
	}

	if p.opt.ShowTimestamp {
		record = append([]string{time.Now().Format(TimeFormat)}, record...)
	}

	if err := p.EntryWriter.Write(record); err != nil {
		p.PrintError("write entry: %v", err)
		return
	}

	p.EntryWriter.Flush()
}

// PrintItems prints the item list to stdout.
func (p *CSVPrinter) PrintItems(stage report.Stage, items []string) {
	fmt.Fprintln(p.opt.writer(), itemsLine(stage, items))
}

// PrintView prints the rendered view to stdout.
func (p *CSVPrinter) PrintView(n render.Node) {
	fmt.Fprintln(p.opt.writer(), n.String())
}

// PrintSummary writes the totals as key/value rows to the summary file.
func (p *CSVPrinter) PrintSummary(s *report.Summary) {
	rows := [][]string{
		{"Metric", "Value"},
		{"Title", s.Title},
		{"Containers", strconv.Itoa(s.Containers)},
		{"Present Before", strconv.Itoa(s.PresentBefore)},
		{"Present After", strconv.Itoa(s.PresentAfter)},
		{"Items Before", strconv.Itoa(s.ItemsBefore)},
		{"Items After", strconv.Itoa(s.ItemsAfter)},
		{"Views", strconv.Itoa(s.Views)},
		{"Start Time", s.StartTime.Format(TimeFormat)},
		{"End Time", s.EndTime.Format(TimeFormat)},
		{"Duration", s.Duration().String()},
	}

	if err := p.SummaryWriter.WriteAll(rows); err != nil {
		p.PrintError("write summary: %v", err)
	}
}

// PrintError prints an error message to stderr.
func (p *CSVPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// Done flushes the writers and closes both files.
func (p *CSVPrinter) Done() error {
	var errs []error

	if p.EntryWriter != nil {
		p.EntryWriter.Flush()
		errs = append(errs, p.EntryWriter.Error())
	}

	if p.EntryFile != nil {
		errs = append(errs, p.EntryFile.Close())
	}

	if p.SummaryWriter != nil {
		p.SummaryWriter.Flush()
		errs = append(errs, p.SummaryWriter.Error())
	}

	if p.SummaryFile != nil {
		errs = append(errs, p.SummaryFile.Close())
	}

	return errors.Join(errs...)
}
