package printers

import (
	"io"
	"os"
	"time"
)

// TimeFormat is the layout used for timestamps in every printer.
const TimeFormat = "2006-01-02 15:04:05"

// options contains common display options shared by all printers
type options struct {
	ShowTimestamp bool
	Output        io.Writer
}

type hasOptions interface {
	options() *options
}

// WithTimestamp enables timestamp display in printer output
func WithTimestamp[T hasOptions]() func(T) {
	return func(p T) {
		p.options().ShowTimestamp = true
	}
}

// WithOutput redirects printer output to w instead of stdout
func WithOutput[T hasOptions](w io.Writer) func(T) {
	return func(p T) {
		p.options().Output = w
	}
}

func (o *options) writer() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}

	return o.Output
}

// timestamp returns the current time followed by a space, or nothing
// when timestamps are disabled.
func (o *options) timestamp() string {
	if !o.ShowTimestamp {
		return ""
	}

	return time.Now().Format(TimeFormat) + " "
}
