// Package seed loads the initial payloads of a view model from a YAML file.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/callmeBron/generics"
	"github.com/callmeBron/generics/optional"
	"gopkg.in/yaml.v3"
)

// Field is one seeded payload. A key missing from the document leaves Set false;
// an explicit null sets it with an absent payload.
type Field[T any] struct {
	Set     bool
	Payload optional.Optional[T]
}

// Seed lists the initial payloads that override the view model defaults.
type Seed struct {
	Items  *[]string
	Text   Field[string]
	Flag   Field[bool]
	Number Field[int]
}

// document mirrors the file layout. Payloads are kept as nodes so that a
// null value can be told apart from a missing key.
type document struct {
	Items  *[]string `yaml:"items"`
	Text   yaml.Node `yaml:"text"`
	Flag   yaml.Node `yaml:"flag"`
	Number yaml.Node `yaml:"number"`
}

func decodeField[T any](name string, node yaml.Node) (Field[T], error) {
	if node.Kind == 0 {
		return Field[T]{}, nil
	}

	if node.ShortTag() == "!!null" {
		return Field[T]{Set: true}, nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return Field[T]{}, fmt.Errorf("decode %s at line %d: %w", name, node.Line, err)
	}

	return Field[T]{Set: true, Payload: optional.Some(v)}, nil
}

// Parse decodes a seed document. Unknown keys are rejected; an empty document
// is a seed that overrides nothing.
func Parse(r io.Reader) (Seed, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}

	s := Seed{Items: doc.Items}

	var err error
	if s.Text, err = decodeField[string]("text", doc.Text); err != nil {
		return Seed{}, err
	}

	if s.Flag, err = decodeField[bool]("flag", doc.Flag); err != nil {
		return Seed{}, err
	}

	if s.Number, err = decodeField[int]("number", doc.Number); err != nil {
		return Seed{}, err
	}

	return s, nil
}

// Load reads and parses the seed file at path.
func Load(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed %s: %w", path, err)
	}

	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Seed{}, fmt.Errorf("parse seed %s: %w", path, err)
	}

	return s, nil
}

// ViewModel returns a view model with the defaults overridden by the seed.
func (s Seed) ViewModel() *generics.ViewModel {
	vm := generics.NewViewModel()

	if s.Items != nil {
		vm.Items = append([]string{}, (*s.Items)...)
	}

	if s.Text.Set {
		vm.Text = generics.Make(s.Text.Payload)
	}

	if s.Flag.Set {
		vm.Flag = generics.Make(s.Flag.Payload)
	}

	if s.Number.Set {
		vm.Number = generics.Make(s.Number.Payload)
	}

	return vm
}
