package field

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/spinweighted/pkg/vector"
)

// encoded is the decoded form of a Field. Spin is a pointer so that a file
// without one is rejected instead of read as spin 0.
type encoded struct {
	Spin *int                     `json:"spin" yaml:"spin"`
	Data vector.ComplexDataVector `json:"data" yaml:"data"`
}

func (e encoded) field() (Field, error) {
	if e.Spin == nil {
		return Field{}, ErrMissingSpin
	}
	return Field{Spin: *e.Spin, Data: e.Data}, nil
}

// UnmarshalJSON implements json.Unmarshaler. Unknown keys and a missing
// spin are errors.
func (f *Field) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var e encoded
	if err := decoder.Decode(&e); err != nil {
		return fmt.Errorf("invalid field json: %w", err)
	}
	out, err := e.field()
	if err != nil {
		return err
	}
	*f = out
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Unknown keys and a missing
// spin are errors.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			switch key := node.Content[i].Value; key {
			case "spin", "data":
			default:
				return fmt.Errorf("invalid field yaml: line %d: unknown field %q", node.Content[i].Line, key)
			}
		}
	}

	var e encoded
	if err := node.Decode(&e); err != nil {
		return fmt.Errorf("invalid field yaml: %w", err)
	}
	out, err := e.field()
	if err != nil {
		return err
	}
	*f = out
	return nil
}
