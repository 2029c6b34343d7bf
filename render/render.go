// Package render holds the output tree that displayable values produce.
package render

import "strings"

// Kind identifies the type of a Node.
type Kind string

const (
	KindText  Kind = "text"  // a single line of text
	KindStack Kind = "stack" // an ordered list of child nodes
)

const indent = "  "

// Node is one element of a render tree.
type Node struct {
	Kind     Kind   `json:"kind"`
	Text     string `json:"text,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// Text returns a text node.
func Text(s string) Node {
	return Node{Kind: KindText, Text: s}
}

// Stack returns a node that lays its children out one after another.
func Stack(children ...Node) Node {
	return Node{Kind: KindStack, Children: children}
}

// Lines flattens the tree into printable lines.
// Stacks nested inside another stack are indented one level deeper.
func (n Node) Lines() []string {
	var lines []string
	n.appendLines(&lines, 0)
	return lines
}

func (n Node) appendLines(lines *[]string, depth int) {
	switch n.Kind {
	case KindText:
		*lines = append(*lines, strings.Repeat(indent, depth)+n.Text)
	case KindStack:
		for _, child := range n.Children {
			childDepth := depth
			if child.Kind == KindStack {
				childDepth++
			}
			child.appendLines(lines, childDepth)
		}
	}
}

func (n Node) String() string {
	return strings.Join(n.Lines(), "\n")
}
