// Package generics shows how a single generic container replaces a family of
// per-type containers, and how a type constraint restricts what can be displayed.
package generics

import (
	"reflect"

	"github.com/callmeBron/generics/optional"
	"github.com/callmeBron/generics/report"
)

// Container holds an optional payload of type T.
// Containers are values: no method mutates the receiver.
type Container[T any] struct {
	payload optional.Optional[T]
}

// Make returns a container holding exactly the given payload.
func Make[T any](payload optional.Optional[T]) Container[T] {
	return Container[T]{payload: payload}
}

// New returns a container whose payload is present and equal to v.
func New[T any](v T) Container[T] {
	return Make(optional.Some(v))
}

// Empty returns a container of type T with no payload.
func Empty[T any]() Container[T] {
	return Make(optional.None[T]())
}

// Payload returns the container's payload.
func (c Container[T]) Payload() optional.Optional[T] {
	return c.payload
}

// Cleared returns a new container of the same type with the payload absent.
// It never looks at the current payload, so it is valid for every T.
func (c Container[T]) Cleared() Container[T] {
	return Empty[T]()
}

// Describe snapshots c for printers that don't know T.
func Describe[T any](name string, stage report.Stage, c Container[T]) report.Entry {
	e := report.Entry{
		Name:    name,
		Type:    reflect.TypeFor[T]().String(),
		Stage:   stage,
		Present: c.payload.IsPresent(),
	}

	if e.Present {
		e.Value = c.payload.String()
	}

	return e
}
