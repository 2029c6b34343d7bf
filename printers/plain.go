package printers

import (
	"fmt"

	"github.com/callmeBron/generics/option"
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
)

// PlainPrinter prints walkthrough output without any colors.
type PlainPrinter struct {
	opt options
}

type PlainPrinterOption = option.Option[PlainPrinter]

func (p *PlainPrinter) options() *options {
	return &p.opt
}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter(opts ...PlainPrinterOption) *PlainPrinter {
	p := &PlainPrinter{}
	option.Apply(p, opts...)
	return p
}

func (p *PlainPrinter) printf(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), "%s"+format+"\n", append([]any{p.opt.timestamp()}, args...)...)
}

// PrintStart prints the walkthrough title.
func (p *PlainPrinter) PrintStart(title string) {
	p.printf("Walking through %s", title)
}

// PrintEntry prints one container snapshot.
func (p *PlainPrinter) PrintEntry(e report.Entry) {
	p.printf("%s", entryLine(e))
}

// PrintItems prints the item list.
func (p *PlainPrinter) PrintItems(stage report.Stage, items []string) {
	p.printf("%s", itemsLine(stage, items))
}

// PrintView prints every line of a rendered view.
func (p *PlainPrinter) PrintView(n render.Node) {
	for _, line := range n.Lines() {
		p.printf("| %s", line)
	}
}

// PrintSummary prints the walkthrough totals.
func (p *PlainPrinter) PrintSummary(s *report.Summary) {
	fmt.Fprintf(p.opt.writer(), "\n%s\n", summaryHeader(s))
	for _, line := range summaryLines(s) {
		fmt.Fprintln(p.opt.writer(), line)
	}
}

// PrintError prints an error message.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(p.opt.writer(), format+"\n", args...)
}

// Done satisfies the Printer interface; there is nothing to release.
func (p *PlainPrinter) Done() error {
	return nil
}
