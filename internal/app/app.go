// Package app wires user input, printers and the walkthrough into the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/callmeBron/generics"
	"github.com/callmeBron/generics/internal/seed"
	"golang.org/x/term"
)

// Run executes the generics application and returns an exit code
func Run() int {
	return run(context.Background(), os.Args[1:], isTerminal(os.Stdout))
}

func run(ctx context.Context, args []string, colorCapable bool) int {
	config, err := ProcessUserInput(args)
	if err != nil {
		return handleError(ctx, err, nil)
	}

	logger := newLogger(config.Verbose)

	if !colorCapable {
		config.PrinterConfig.NoColor = true
	}

	vm, err := buildViewModel(config.SeedPath)
	if err != nil {
		return handleError(ctx, err, nil)
	}

	printer, err := generics.NewPrinter(config.PrinterConfig)
	if err != nil {
		return handleError(ctx, err, nil)
	}

	walkthrough := generics.NewWalkthrough(vm,
		generics.WithPrinter(printer),
		generics.WithLogger(logger),
		generics.WithTitle(config.Title),
	)

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, runErr := walkthrough.Run(runCtx)
	logger.Info("walkthrough finished",
		"containers", summary.Containers,
		"views", summary.Views,
		"duration", summary.Duration())

	if err := printer.Done(); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("close printer: %w", err))
	}

	return handleError(ctx, runErr, printer)
}

// isTerminal reports whether f is attached to a terminal, so colors make sense.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newLogger(verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})).WithGroup("generics")
}

func buildViewModel(seedPath string) (*generics.ViewModel, error) {
	if seedPath == "" {
		return generics.NewViewModel(), nil
	}

	s, err := seed.Load(seedPath)
	if err != nil {
		return nil, err
	}

	return s.ViewModel(), nil
}

func handleError(ctx context.Context, err error, printer generics.Printer) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, ErrUsageRequested) {
		PrintUsage(os.Stdout)
		return 1
	}

	if errors.Is(err, ErrVersionRequested) {
		PrintVersion(os.Stdout)
		return 0
	}

	if errors.Is(err, ErrUpdateCheckRequested) {
		msg, checkErr := CheckForUpdates(ctx, nil)
		if checkErr != nil {
			printError(checkErr, printer)
			return 1
		}
		fmt.Println(msg)
		return 0
	}

	printError(err, printer)
	return 1
}

func printError(err error, printer generics.Printer) {
	if printer != nil {
		printer.PrintError("%v", err)
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}
