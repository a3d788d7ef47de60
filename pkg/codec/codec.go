// Package codec encodes spin-weighted values to bytes and back.
//
// A Serializer handles one format. Values carry their own encoding hooks
// (json.Marshaler, yaml.Marshaler and their decoders), so the serializers
// only choose the format and its layout.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat reports a file extension or format name without a serializer.
var ErrUnknownFormat = errors.New("unknown format")

// Serializer defines how to write and read one format.
type Serializer interface {
	// Format returns the format name, e.g. "json".
	Format() string
	// Marshal converts v to bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into the value pointed to by v.
	Unmarshal(data []byte, v any) error
}

// DefaultSerializers returns the standard set of serializers keyed by file
// extension.
func DefaultSerializers() map[string]Serializer {
	yamlSerializer := NewYAMLSerializer()
	return map[string]Serializer{
		".json": NewJSONSerializer(true),
		".yaml": yamlSerializer,
		".yml":  yamlSerializer,
	}
}

// ForPath returns the serializer registered for the extension of path.
func ForPath(serializers map[string]Serializer, path string) (Serializer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if s, ok := serializers[ext]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownFormat, ext, strings.Join(Extensions(serializers), ", "))
}

// ForFormat returns the serializer whose Format matches name.
func ForFormat(serializers map[string]Serializer, name string) (Serializer, error) {
	for _, ext := range Extensions(serializers) {
		if s := serializers[ext]; s.Format() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Extensions returns the registered extensions in sorted order.
func Extensions(serializers map[string]Serializer) []string {
	exts := make([]string, 0, len(serializers))
	for ext := range serializers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// RoundTrip serializes v and decodes the result into a new value of the
// same type.
func RoundTrip[V any](s Serializer, v V) (V, error) {
	var out V
	data, err := s.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("%s marshal failed: %w", s.Format(), err)
	}
	if err := s.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%s unmarshal failed: %w", s.Format(), err)
	}
	return out, nil
}

// --- JSON Serializer ---

// JSONSerializer reads and writes JSON.
type JSONSerializer struct {
	// Indent enables two-space indented output.
	Indent bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(indent bool) *JSONSerializer {
	return &JSONSerializer{Indent: indent}
}

func (s *JSONSerializer) Format() string { return "json" }

func (s *JSONSerializer) Marshal(v any) ([]byte, error) {
	if !s.Indent {
		return json.Marshal(v)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (s *JSONSerializer) Unmarshal(data []byte, v any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// --- YAML Serializer ---

// YAMLSerializer reads and writes YAML.
type YAMLSerializer struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// NewYAMLSerializer creates a new YAML serializer with two-space indentation.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{Indent: 2}
}

func (s *YAMLSerializer) Format() string { return "yaml" }

func (s *YAMLSerializer) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(s.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *YAMLSerializer) Unmarshal(data []byte, v any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}
