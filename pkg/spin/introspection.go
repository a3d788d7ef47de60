package spin

import "reflect"

// State describes a SpinWeighted value for observability.
type State struct {
	Spin    int    `json:"spin"`
	Size    int    `json:"size"`
	Storage string `json:"storage"`
}

// State implements introspection.Introspectable.
func (w SpinWeighted[T, S]) State() any {
	return State{
		Spin:    w.Spin(),
		Size:    w.Size(),
		Storage: reflect.TypeFor[T]().String(),
	}
}

// ComponentType implements introspection.Component.
func (w SpinWeighted[T, S]) ComponentType() string {
	return "spin-weighted"
}
