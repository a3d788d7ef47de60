package spinweighted

import (
	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

// --- Types ---

// SpinWeighted is a public alias for spin.SpinWeighted.
type SpinWeighted[T spin.Storage[T], S spin.Spin] = spin.SpinWeighted[T, S]

// View is a public alias for spin.View.
type View[T spin.Storage[T], S spin.Spin] = spin.View[T, S]

// DataVector is a vector of reals.
type DataVector = vector.DataVector

// ComplexDataVector is a vector of complex numbers.
type ComplexDataVector = vector.ComplexDataVector

// Real is a real scalar.
type Real = vector.Real

// Complex is a complex scalar.
type Complex = vector.Complex

// --- Constructors ---

// New wraps data with spin S.
func New[S spin.Spin, T spin.Storage[T]](data T) SpinWeighted[T, S] {
	return spin.New[S](data)
}

// Filled returns a value of n elements equal to value.
func Filled[S spin.Spin, T spin.Fillable[T, E], E any](n int, value E) SpinWeighted[T, S] {
	return spin.Filled[S, T](n, value)
}

// Vector returns a real vector holding a copy of values.
func Vector(values ...float64) DataVector {
	return vector.New(values...)
}

// ComplexVector returns a complex vector holding a copy of values.
func ComplexVector(values ...complex128) ComplexDataVector {
	return vector.New(values...)
}
