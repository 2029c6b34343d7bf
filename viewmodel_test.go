package generics_test

import (
	"testing"

	"github.com/callmeBron/generics"
	"github.com/callmeBron/generics/optional"
	"github.com/callmeBron/generics/render"
	"github.com/callmeBron/generics/report"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRemoveAll(t *testing.T) {
	words := []string{"one", "Two"}
	assert.Empty(t, generics.RemoveAll(words))
	assert.Equal(t, []string{"", ""}, words, "removed elements are zeroed")

	numbers := []int{1, 2, 3}
	assert.Empty(t, generics.RemoveAll(numbers))

	assert.Empty(t, generics.RemoveAll[[]bool](nil))
}

func TestNewViewModel(t *testing.T) {
	vm := generics.NewViewModel()

	assert.Equal(t, []string{"one", "Two", "Three", "Four"}, vm.Items)
	assert.Equal(t, optional.Some("Defined as string now"), vm.Text.Payload())
	assert.Equal(t, optional.Some(true), vm.Flag.Payload())
	assert.Equal(t, optional.Some(23), vm.Number.Payload())
}

func TestNewViewModel_DoesNotShareDefaults(t *testing.T) {
	vm := generics.NewViewModel()
	vm.Items[0] = "changed"

	assert.Equal(t, "one", generics.DefaultItems[0])
}

func TestViewModel_RemoveItems(t *testing.T) {
	vm := generics.NewViewModel()
	vm.RemoveItems()

	assert.Empty(t, vm.Items)
}

func TestViewModel_ClearAll(t *testing.T) {
	vm := generics.NewViewModel()
	before := *vm

	vm.ClearAll()

	assert.False(t, vm.Text.Payload().IsPresent())
	assert.False(t, vm.Flag.Payload().IsPresent())
	assert.False(t, vm.Number.Payload().IsPresent())
	assert.Equal(t, optional.Some(23), before.Number.Payload(), "copies taken before clearing keep their payload")
}

func TestViewModel_Entries(t *testing.T) {
	vm := generics.NewViewModel()

	want := []report.Entry{
		{Name: "text", Type: "string", Stage: report.StageInitial, Present: true, Value: "Defined as string now"},
		{Name: "flag", Type: "bool", Stage: report.StageInitial, Present: true, Value: "true"},
		{Name: "number", Type: "int", Stage: report.StageInitial, Present: true, Value: "23"},
	}
	if diff := cmp.Diff(want, vm.Entries(report.StageInitial)); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	vm.ClearAll()
	for _, e := range vm.Entries(report.StageCleared) {
		assert.False(t, e.Present, e.Name)
		assert.Empty(t, e.Value, e.Name)
	}
}

func TestViewModel_Views(t *testing.T) {
	vm := generics.NewViewModel()

	views := vm.Views()
	want := []render.Node{
		render.Text("Generic view"),
		render.Stack(render.Text("Generic view"), render.Text("Defined as string now")),
		render.Stack(
			render.Text("Nested Generic view"),
			render.Stack(render.Text("Generic view"), render.Text("Defined as string now")),
		),
	}
	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("Views() mismatch (-want +got):\n%s", diff)
	}
}
