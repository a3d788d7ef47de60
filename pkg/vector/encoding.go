package vector

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidComplex reports an encoded complex number that is neither a
// number nor a [re, im] pair.
var ErrInvalidComplex = errors.New("invalid complex value")

// ErrNonFinite reports an Inf or NaN element. JSON has no encoding for
// either, so such vectors cannot be written.
var ErrNonFinite = errors.New("non-finite value")

func finite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// pair is the encoded form of a complex number: [re, im]. A plain number
// decodes as a real value.
type pair complex128

func (p pair) MarshalJSON() ([]byte, error) {
	if !finite(real(p)) || !finite(imag(p)) {
		return nil, fmt.Errorf("%w: %v", ErrNonFinite, complex128(p))
	}
	return json.Marshal([2]float64{real(p), imag(p)})
}

func (p *pair) UnmarshalJSON(data []byte) error {
	var x float64
	if err := json.Unmarshal(data, &x); err == nil {
		*p = pair(complex(x, 0))
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidComplex, data)
	}
	return p.set(parts)
}

func (p pair) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{}
	if err := node.Encode([]float64{real(p), imag(p)}); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

func (p *pair) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var x float64
		if err := node.Decode(&x); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidComplex, node.Value)
		}
		*p = pair(complex(x, 0))
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := node.Decode(&parts); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidComplex, err)
		}
		return p.set(parts)
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidComplex, node.Line)
	}
}

func (p *pair) set(parts []float64) error {
	if len(parts) != 2 {
		return fmt.Errorf("%w: want 2 parts, got %d", ErrInvalidComplex, len(parts))
	}
	*p = pair(complex(parts[0], parts[1]))
	return nil
}

// encoded returns the value handed to the JSON and YAML encoders.
func (v Vector[E]) encoded() any {
	switch data := any(v.data).(type) {
	case []float64:
		if data == nil {
			return []float64{}
		}
		return data
	case []complex128:
		out := make([]pair, len(data))
		for i, z := range data {
			out[i] = pair(z)
		}
		return out
	}
	panic("unreachable")
}

// checkFinite returns ErrNonFinite naming the first Inf or NaN element.
func (v Vector[E]) checkFinite() error {
	for i, x := range v.data {
		switch z := any(x).(type) {
		case float64:
			if !finite(z) {
				return fmt.Errorf("%w: element %d is %v", ErrNonFinite, i, z)
			}
		case complex128:
			if !finite(real(z)) || !finite(imag(z)) {
				return fmt.Errorf("%w: element %d is %v", ErrNonFinite, i, z)
			}
		}
	}
	return nil
}

func pairsToComplex(pairs []pair) []complex128 {
	out := make([]complex128, len(pairs))
	for i, p := range pairs {
		out[i] = complex128(p)
	}
	return out
}

// MarshalJSON encodes reals as numbers and complex elements as [re, im].
// Inf and NaN elements are rejected with ErrNonFinite.
func (v Vector[E]) MarshalJSON() ([]byte, error) {
	if err := v.checkFinite(); err != nil {
		return nil, err
	}
	return json.Marshal(v.encoded())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector[E]) UnmarshalJSON(data []byte) error {
	switch dst := any(&v.data).(type) {
	case *[]float64:
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("invalid real vector: %w", err)
		}
	case *[]complex128:
		var pairs []pair
		if err := json.Unmarshal(data, &pairs); err != nil {
			return fmt.Errorf("invalid complex vector: %w", err)
		}
		*dst = pairsToComplex(pairs)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Vector[E]) MarshalYAML() (interface{}, error) {
	return v.encoded(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Vector[E]) UnmarshalYAML(node *yaml.Node) error {
	switch dst := any(&v.data).(type) {
	case *[]float64:
		if err := node.Decode(dst); err != nil {
			return fmt.Errorf("invalid real vector: %w", err)
		}
	case *[]complex128:
		var pairs []pair
		if err := node.Decode(&pairs); err != nil {
			return fmt.Errorf("invalid complex vector: %w", err)
		}
		*dst = pairsToComplex(pairs)
	}
	return nil
}

// MarshalJSON encodes c as [re, im].
func (c Complex) MarshalJSON() ([]byte, error) {
	return pair(c).MarshalJSON()
}

// UnmarshalJSON accepts [re, im] or a plain number.
func (c *Complex) UnmarshalJSON(data []byte) error {
	var p pair
	if err := p.UnmarshalJSON(data); err != nil {
		return err
	}
	*c = Complex(p)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Complex) MarshalYAML() (interface{}, error) {
	return pair(c).MarshalYAML()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Complex) UnmarshalYAML(node *yaml.Node) error {
	var p pair
	if err := p.UnmarshalYAML(node); err != nil {
		return err
	}
	*c = Complex(p)
	return nil
}
