package generics

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/callmeBron/generics/option"
	"github.com/callmeBron/generics/printers"
	"github.com/callmeBron/generics/report"
)

// DefaultTitle names a walkthrough when no title is configured.
const DefaultTitle = "generics"

// Walkthrough steps through a ViewModel. It prints the initial state and the
// views built from it, then clears every container and prints the result.
type Walkthrough struct {
	model   *ViewModel
	printer Printer
	logger  *slog.Logger
	Title   string
	Summary report.Summary
}

type WalkthroughOption = option.Option[Walkthrough]

// WithPrinter configures the printer for walkthrough output.
func WithPrinter(printer Printer) WalkthroughOption {
	return func(w *Walkthrough) {
		w.printer = printer
	}
}

// WithLogger configures the logger used for diagnostics.
func WithLogger(logger *slog.Logger) WalkthroughOption {
	return func(w *Walkthrough) {
		w.logger = logger
	}
}

// WithTitle configures the title shown at the start and in the summary.
func WithTitle(title string) WalkthroughOption {
	return func(w *Walkthrough) {
		w.Title = title
	}
}

// NewWalkthrough creates a walkthrough over vm.
func NewWalkthrough(vm *ViewModel, opts ...WalkthroughOption) *Walkthrough {
	w := Walkthrough{
		model:   vm,
		printer: printers.NewColorPrinter(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})),
		Title:   DefaultTitle,
	}

	option.Apply(&w, opts...)

	w.Summary.Title = w.Title
	return &w
}

// Run prints every step and returns the summary.
// The context is checked between steps; a cancelled walkthrough returns the
// summary gathered so far together with the context error.
func (w *Walkthrough) Run(ctx context.Context) (report.Summary, error) {
	w.Summary.StartTime = time.Now()
	w.printer.PrintStart(w.Title)

	steps := []struct {
		name string
		run  func()
	}{
		{"initial state", w.printInitial},
		{"views", w.printViews},
		{"clear", w.clear},
		{"cleared state", w.printCleared},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			w.Summary.EndTime = time.Now()
			return w.Summary, fmt.Errorf("walkthrough stopped before %s: %w", step.name, err)
		}

		w.logger.Debug("running step", "step", step.name)
		step.run()
	}

	w.Summary.EndTime = time.Now()
	w.printer.PrintSummary(&w.Summary)

	return w.Summary, nil
}

func (w *Walkthrough) printInitial() {
	w.Summary.ItemsBefore = len(w.model.Items)
	w.printer.PrintItems(report.StageInitial, w.model.Items)

	for _, e := range w.model.Entries(report.StageInitial) {
		w.Summary.Record(e)
		w.printer.PrintEntry(e)
	}
}

func (w *Walkthrough) clear() {
	w.model.RemoveItems()
	w.model.ClearAll()
	w.logger.Debug("cleared view model", "items", len(w.model.Items))
}

func (w *Walkthrough) printCleared() {
	w.Summary.ItemsAfter = len(w.model.Items)
	w.printer.PrintItems(report.StageCleared, w.model.Items)

	for _, e := range w.model.Entries(report.StageCleared) {
		w.Summary.Record(e)
		w.printer.PrintEntry(e)
	}
}

func (w *Walkthrough) printViews() {
	for _, view := range w.model.Views() {
		w.Summary.Views++
		w.printer.PrintView(view)
	}
}
