package printers

import (
	"fmt"

	"github.com/callmeBron/generics/option"
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
	"github.com/gookit/color"
)

// Color functions used when printing information
var (
	ColorLightCyan   = color.LightCyan.Sprintf
	ColorGreen       = color.Green.Sprintf
	ColorYellow      = color.Yellow.Sprintf
	ColorLightYellow = color.LightYellow.Sprintf
	ColorRed         = color.Red.Sprintf
	ColorLightBlue   = color.FgLightBlue.Sprintf
)

// ColorPrinter provides functionality for printing messages with color support.
// It optionally includes a timestamp in the output if ShowTimestamp is enabled.
type ColorPrinter struct {
	opt options
}

type ColorPrinterOption = option.Option[ColorPrinter]

func (p *ColorPrinter) options() *options {
	return &p.opt
}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter(opts ...ColorPrinterOption) *ColorPrinter {
	p := &ColorPrinter{}
	option.Apply(p, opts...)
	return p
}

func (p *ColorPrinter) println(s string) {
	fmt.Fprintln(p.opt.writer(), p.opt.timestamp()+s)
}

// PrintStart prints the walkthrough title in light cyan.
func (p *ColorPrinter) PrintStart(title string) {
	p.println(ColorLightCyan("Walking through %s", title))
}

// PrintEntry prints present payloads in green and absent ones in yellow.
func (p *ColorPrinter) PrintEntry(e report.Entry) {
	if e.Present {
		p.println(ColorGreen("%s", entryLine(e)))
		return
	}

	p.println(ColorYellow("%s", entryLine(e)))
}

// PrintItems prints the item list, in light yellow once it is empty.
func (p *ColorPrinter) PrintItems(stage report.Stage, items []string) {
	if len(items) == 0 {
		p.println(ColorLightYellow("%s", itemsLine(stage, items)))
		return
	}

	p.println(ColorGreen("%s", itemsLine(stage, items)))
}

// PrintView prints every line of a rendered view in light blue.
func (p *ColorPrinter) PrintView(n render.Node) {
	for _, line := range n.Lines() {
		p.println(ColorLightBlue("| %s", line))
	}
}

// PrintSummary prints the walkthrough totals in yellow.
func (p *ColorPrinter) PrintSummary(s *report.Summary) {
	w := p.opt.writer()

	fmt.Fprintf(w, "\n%s\n", ColorYellow("%s", summaryHeader(s)))
	for _, line := range summaryLines(s) {
		fmt.Fprintln(w, ColorYellow("%s", line))
	}
}

// PrintError prints an error message in red.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	fmt.Fprintln(p.opt.writer(), ColorRed(format, args...))
}

// Done satisfies the Printer interface; there is nothing to release.
func (p *ColorPrinter) Done() error {
	return nil
}
