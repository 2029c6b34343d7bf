package generics

import "github.com/callmeBron/generics/render"

var (
	// List of compile time checks for the displayable types in this package
	_ Displayable = Text("")
	_ Displayable = View[Text]{}
)

// Displayable is implemented by anything that can be placed in a render tree.
type Displayable interface {
	Render() render.Node
}

// Text adapts a plain string to Displayable.
type Text string

// Render returns the text as a single node.
func (t Text) Render() render.Node {
	return render.Text(string(t))
}

// View is a labelled container whose content must be Displayable.
// Building a View with content that has no Render method fails to compile.
type View[T Displayable] struct {
	Label   string
	Content T
}

// NewView returns a view presenting label followed by content.
func NewView[T Displayable](label string, content T) View[T] {
	return View[T]{Label: label, Content: content}
}

// Render presents the label, then the content's own rendering.
func (v View[T]) Render() render.Node {
	return render.Stack(render.Text(v.Label), v.Content.Render())
}
