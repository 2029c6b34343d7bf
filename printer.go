package generics

import (
	"fmt"

	"github.com/callmeBron/generics/printers"
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
)

var (
	_ Printer = (*printers.ColorPrinter)(nil)
	_ Printer = (*printers.JSONPrinter)(nil)
	_ Printer = (*printers.CSVPrinter)(nil)
	_ Printer = (*printers.DatabasePrinter)(nil)
	_ Printer = (*printers.PlainPrinter)(nil)
)

// Printer defines a set of methods that any printer implementation must provide.
// Printers are responsible for outputting information, but should not modify data or perform calculations.
type Printer interface {
	// PrintStart prints the first message of a walkthrough.
	// This message is printed only once, at the very beginning.
	PrintStart(title string)

	// PrintEntry prints a snapshot of one container.
	PrintEntry(e report.Entry)

	// PrintItems prints the item list at the given stage.
	PrintItems(stage report.Stage, items []string)

	// PrintView prints a rendered view.
	PrintView(n render.Node)

	// PrintSummary prints the totals gathered during the walkthrough.
	PrintSummary(s *report.Summary)

	// PrintError should print an error message.
	// Printer should also apply \n to the given string, if needed.
	PrintError(format string, args ...any)

	// Done flushes and releases whatever the printer holds open.
	Done() error
}

// NewPrinter creates and returns an appropriate printer based on configuration
func NewPrinter(cfg PrinterConfig) (Printer, error) {
	if cfg.PrettyJSON && !cfg.OutputJSON {
		return nil, fmt.Errorf("--pretty has no effect without the -j flag")
	}

	switch {
	case cfg.OutputJSON:
		opts := []printers.JSONPrinterOption{printers.WithPrettyJSON(cfg.PrettyJSON)}
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.JSONPrinter]())
		}
		return printers.NewJSONPrinter(opts...), nil

	case cfg.OutputDBPath != "":
		p, err := printers.NewDatabasePrinter(cfg.Title, cfg.OutputDBPath)
		if err != nil {
			return nil, err
		}
		return p, nil

	case cfg.OutputCSVPath != "":
		var opts []printers.CSVPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.CSVPrinter]())
		}
		p, err := printers.NewCSVPrinter(cfg.OutputCSVPath, opts...)
		if err != nil {
			return nil, err
		}
		return p, nil

	case cfg.NoColor:
		var opts []printers.PlainPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.PlainPrinter]())
		}
		return printers.NewPlainPrinter(opts...), nil

	default:
		var opts []printers.ColorPrinterOption
		if cfg.WithTimestamp {
			opts = append(opts, printers.WithTimestamp[*printers.ColorPrinter]())
		}
		return printers.NewColorPrinter(opts...), nil
	}
}

// PrinterConfig holds all configuration options for Printer creation
type PrinterConfig struct {
	OutputJSON    bool
	PrettyJSON    bool
	NoColor       bool
	WithTimestamp bool
	OutputDBPath  string
	OutputCSVPath string
	Title         string
}
