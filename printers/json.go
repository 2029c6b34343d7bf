package printers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/callmeBron/generics/option"
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
)

// JSONEventType is a special type for each method
// in the printer interface so that automatic tools
// can understand what kind of an event they've received.
type JSONEventType string

const (
	startEvent   JSONEventType = "start"   // Event type for `PrintStart` method.
	entryEvent   JSONEventType = "entry"   // Event type for `PrintEntry` method.
	itemsEvent   JSONEventType = "items"   // Event type for `PrintItems` method.
	viewEvent    JSONEventType = "view"    // Event type for `PrintView` method.
	summaryEvent JSONEventType = "summary" // Event type for `PrintSummary` method.
	errorEvent   JSONEventType = "error"   // Event type for `PrintError` method.
)

// JSONData contains all possible fields for JSON output.
// Because one event usually contains only a subset of fields,
// other fields will be omitted in the output.
type JSONData struct {
	Type      JSONEventType `json:"type"`
	Message   string        `json:"message"` // Message matches what the plain printer would print.
	Timestamp string        `json:"timestamp,omitempty"`

	Entry *report.Entry `json:"entry,omitempty"`
	Stage report.Stage  `json:"stage,omitempty"`
	// Items is a pointer so that an empty list is still printed for items events.
	Items *[]string    `json:"items,omitempty"`
	View  *render.Node `json:"view,omitempty"`

	Containers    int    `json:"containers,omitempty"`
	PresentBefore *int   `json:"presentBefore,omitempty"`
	PresentAfter  *int   `json:"presentAfter,omitempty"`
	ItemsBefore   *int   `json:"itemsBefore,omitempty"`
	ItemsAfter    *int   `json:"itemsAfter,omitempty"`
	Views         int    `json:"views,omitempty"`
	Duration      string `json:"duration,omitempty"`
}

// JSONPrinter is a struct that holds a JSON encoder to print structured JSON output.
type JSONPrinter struct {
	pretty bool
	opt    options
}

type JSONPrinterOption = option.Option[JSONPrinter]

func (p *JSONPrinter) options() *options {
	return &p.opt
}

// WithPrettyJSON enables indentation of the JSON output.
func WithPrettyJSON(pretty bool) JSONPrinterOption {
	return func(p *JSONPrinter) {
		p.pretty = pretty
	}
}

// NewJSONPrinter creates a new JSONPrinter instance.
func NewJSONPrinter(opts ...JSONPrinterOption) *JSONPrinter {
	p := &JSONPrinter{}
	option.Apply(p, opts...)
	return p
}

func (p *JSONPrinter) encode(data JSONData) {
	if p.opt.ShowTimestamp {
		data.Timestamp = time.Now().Format(TimeFormat)
	}

	encoder := json.NewEncoder(p.opt.writer())
	if p.pretty {
		encoder.SetIndent("", "\t")
	}

	_ = encoder.Encode(data)
}

// PrintStart prints the initial message of a walkthrough.
func (p *JSONPrinter) PrintStart(title string) {
	p.encode(JSONData{
		Type:    startEvent,
		Message: fmt.Sprintf("Walking through %s", title),
	})
}

// PrintEntry prints one container snapshot.
func (p *JSONPrinter) PrintEntry(e report.Entry) {
	p.encode(JSONData{
		Type:    entryEvent,
		Message: entryLine(e),
		Entry:   &e,
	})
}

// PrintItems prints the item list.
func (p *JSONPrinter) PrintItems(stage report.Stage, items []string) {
	list := append([]string{}, items...)

	p.encode(JSONData{
		Type:    itemsEvent,
		Message: itemsLine(stage, items),
		Stage:   stage,
		Items:   &list,
	})
}

// PrintView prints the render tree of a view.
func (p *JSONPrinter) PrintView(n render.Node) {
	p.encode(JSONData{
		Type:    viewEvent,
		Message: n.String(),
		View:    &n,
	})
}

// PrintSummary prints the walkthrough totals.
func (p *JSONPrinter) PrintSummary(s *report.Summary) {
	p.encode(JSONData{
		Type:          summaryEvent,
		Message:       summaryHeader(s),
		Containers:    s.Containers,
		PresentBefore: &s.PresentBefore,
		PresentAfter:  &s.PresentAfter,
		ItemsBefore:   &s.ItemsBefore,
		ItemsAfter:    &s.ItemsAfter,
		Views:         s.Views,
		Duration:      s.Duration().String(),
	})
}

// PrintError prints an error event.
func (p *JSONPrinter) PrintError(format string, args ...any) {
	p.encode(JSONData{
		Type:    errorEvent,
		Message: fmt.Sprintf(format, args...),
	})
}

// Done satisfies the Printer interface; there is nothing to release.
func (p *JSONPrinter) Done() error {
	return nil
}
