package spin

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// envelope is the encoded form of a SpinWeighted value. The spin is written
// out so that a decoder can refuse data of a different spin.
type envelope[T any] struct {
	Spin *int `json:"spin" yaml:"spin"`
	Data T    `json:"data" yaml:"data"`
}

var errMissingSpin = errors.New("missing spin")

func (w SpinWeighted[T, S]) envelope() envelope[T] {
	s := w.Spin()
	return envelope[T]{Spin: &s, Data: w.data}
}

func (w *SpinWeighted[T, S]) fromEnvelope(env envelope[T]) error {
	if env.Spin == nil {
		return errMissingSpin
	}
	if want := WeightOf[S](); *env.Spin != want {
		return fmt.Errorf("%w: decoded spin %d, expected %d", ErrSpinMismatch, *env.Spin, want)
	}
	w.data = env.Data
	return nil
}

// MarshalJSON implements json.Marshaler.
func (w SpinWeighted[T, S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.envelope())
}

// UnmarshalJSON implements json.Unmarshaler. Data encoded with another spin
// is rejected with ErrSpinMismatch.
func (w *SpinWeighted[T, S]) UnmarshalJSON(data []byte) error {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("invalid spin-weighted json: %w", err)
	}
	return w.fromEnvelope(env)
}

// MarshalYAML implements yaml.Marshaler.
func (w SpinWeighted[T, S]) MarshalYAML() (interface{}, error) {
	return w.envelope(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (w *SpinWeighted[T, S]) UnmarshalYAML(node *yaml.Node) error {
	var env envelope[T]
	if err := node.Decode(&env); err != nil {
		return fmt.Errorf("invalid spin-weighted yaml: %w", err)
	}
	return w.fromEnvelope(env)
}
