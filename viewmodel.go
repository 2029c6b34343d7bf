package generics

import (
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
)

// Default payloads used when no seed overrides them.
var (
	DefaultItems  = []string{"one", "Two", "Three", "Four"}
	DefaultText   = "Defined as string now"
	DefaultFlag   = true
	DefaultNumber = 23
)

// DefaultViewLabel is the label shared by the views a ViewModel builds.
const DefaultViewLabel = "Generic view"

// RemoveAll returns s with every element removed, keeping its backing array.
// It works for any slice type, which is the point of making it generic.
func RemoveAll[S ~[]E, E any](s S) S {
	clear(s)
	return s[:0]
}

// ViewModel holds the state the tutorial's screens display.
type ViewModel struct {
	Items  []string
	Text   Container[string]
	Flag   Container[bool]
	Number Container[int]
}

// NewViewModel returns a view model seeded with the default payloads.
func NewViewModel() *ViewModel {
	return &ViewModel{
		Items:  append([]string(nil), DefaultItems...),
		Text:   New(DefaultText),
		Flag:   New(DefaultFlag),
		Number: New(DefaultNumber),
	}
}

// RemoveItems empties the item list.
func (vm *ViewModel) RemoveItems() {
	vm.Items = RemoveAll(vm.Items)
}

// ClearAll replaces every container with its cleared value.
func (vm *ViewModel) ClearAll() {
	vm.Text = vm.Text.Cleared()
	vm.Flag = vm.Flag.Cleared()
	vm.Number = vm.Number.Cleared()
}

// Entries snapshots the containers in a fixed order: text, flag, number.
func (vm *ViewModel) Entries(stage report.Stage) []report.Entry {
	return []report.Entry{
		Describe("text", stage, vm.Text),
		Describe("flag", stage, vm.Flag),
		Describe("number", stage, vm.Number),
	}
}

// Views renders the views built from the current state: a bare label,
// the text payload wrapped in a constrained view, and a nested view.
func (vm *ViewModel) Views() []render.Node {
	content := Text(vm.Text.Payload().OrElse(""))
	labelled := NewView(DefaultViewLabel, content)

	return []render.Node{
		Text(DefaultViewLabel).Render(),
		labelled.Render(),
		NewView("Nested "+DefaultViewLabel, labelled).Render(),
	}
}
