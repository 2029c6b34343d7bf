package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"github.com/callmeBron/generics"
)

var (
	// ErrUsageRequested indicates usage help was requested
	ErrUsageRequested = errors.New("usage requested")

	// ErrVersionRequested indicates version display was requested
	ErrVersionRequested = errors.New("version requested")

	// ErrUpdateCheckRequested indicates update check was requested
	ErrUpdateCheckRequested = errors.New("update check requested")
)

// Config contains all configuration needed to run a walkthrough.
type Config struct {
	// Title names the walkthrough, taken from the optional positional argument
	Title string

	// SeedPath points to a YAML file overriding the initial payloads
	SeedPath string

	// Verbose enables debug logging to stderr
	Verbose bool

	// Output options
	PrinterConfig generics.PrinterConfig
}

// flagsWithValue lists the flags that consume the following argument.
var flagsWithValue = []string{"csv", "db", "seed"}

// permuteArgs moves flags in front of positional arguments, because flag
// parsing stops just before the first non-flag argument.
// see: https://pkg.go.dev/flag
func permuteArgs(args []string) error {
	var flagArgs []string
	var nonFlagArgs []string

	for i := 0; i < len(args); i++ {
		v := args[i]
		if len(v) < 2 || v[0] != '-' {
			nonFlagArgs = append(nonFlagArgs, v)
			continue
		}

		optionName := v[1:]
		if optionName[0] == '-' {
			optionName = optionName[1:]
		}

		if !slices.Contains(flagsWithValue, optionName) {
			flagArgs = append(flagArgs, v)
			continue
		}

		// out of index
		if len(args) <= i+1 {
			return ErrUsageRequested
		}

		// the next flag has come
		optionVal := args[i+1]
		if optionVal != "" && optionVal[0] == '-' {
			return ErrUsageRequested
		}

		flagArgs = append(flagArgs, args[i:i+2]...)
		i++
	}

	// replace args in place
	copy(args, slices.Concat(flagArgs, nonFlagArgs))

	return nil
}

type options struct {
	showTimestamp *bool
	outputJSON    *bool
	prettyJSON    *bool
	noColor       *bool
	saveToCSV     *string
	saveToDB      *string
	seedPath      *string
	verbose       *bool
	showVer       *bool
	checkUpdates  *bool
	showHelp      *bool
}

// newFlagSet declares every flag the CLI accepts.
func newFlagSet() (*flag.FlagSet, options) {
	fs := flag.NewFlagSet("generics", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	opts := options{
		showTimestamp: fs.Bool("D", false, "show timestamp for each line in the output."),
		outputJSON:    fs.Bool("j", false, "output in JSON format."),
		prettyJSON: fs.Bool("pretty",
			false,
			"use indentation when using json output format. No effect without the '-j' flag."),
		noColor: fs.Bool("no-color", false, "do not colorize output."),
		saveToCSV: fs.String("csv",
			"",
			"path and file name to store entries to a CSV file. The summary will be saved with the same name and `_summary` suffix."),
		saveToDB: fs.String("db", "", "path and file name to store output to a sqlite3 database."),
		seedPath: fs.String("seed",
			"",
			"path to a YAML file overriding the initial payloads (keys: items, text, flag, number)."),
		verbose:      fs.Bool("verbose", false, "log every step to stderr."),
		showVer:      fs.Bool("v", false, "show version and exit."),
		checkUpdates: fs.Bool("u", false, "check for updates and exit."),
		showHelp:     fs.Bool("h", false, "show this help message."),
	}

	return fs, opts
}

// ProcessUserInput parses command-line arguments. Returns ErrUsageRequested,
// ErrVersionRequested, or ErrUpdateCheckRequested for special control flow.
func ProcessUserInput(args []string) (Config, error) {
	args = slices.Clone(args)
	if err := permuteArgs(args); err != nil {
		return Config{}, err
	}

	fs, opts := newFlagSet()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, ErrUsageRequested
		}
		return Config{}, fmt.Errorf("%w: %v", ErrUsageRequested, err)
	}

	if *opts.showHelp {
		return Config{}, ErrUsageRequested
	}

	if *opts.showVer {
		return Config{}, ErrVersionRequested
	}

	if *opts.checkUpdates {
		return Config{}, ErrUpdateCheckRequested
	}

	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("%w: unexpected arguments: %v", ErrUsageRequested, fs.Args()[1:])
	}

	title := generics.DefaultTitle
	if fs.NArg() == 1 {
		title = fs.Arg(0)
	}

	if title == "" {
		return Config{}, fmt.Errorf("%w: title must not be empty", ErrUsageRequested)
	}

	config := Config{
		Title:    title,
		SeedPath: *opts.seedPath,
		Verbose:  *opts.verbose,
		PrinterConfig: generics.PrinterConfig{
			OutputJSON:    *opts.outputJSON,
			PrettyJSON:    *opts.prettyJSON,
			NoColor:       *opts.noColor,
			WithTimestamp: *opts.showTimestamp,
			OutputDBPath:  *opts.saveToDB,
			OutputCSVPath: *opts.saveToCSV,
			Title:         title,
		},
	}

	return config, nil
}
