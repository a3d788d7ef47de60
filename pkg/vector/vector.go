package vector

import (
	"fmt"
	"math"
	"math/cmplx"
	"slices"
)

// Element is a vector element type.
type Element interface {
	float64 | complex128
}

// Vector is a contiguous sequence of elements with elementwise arithmetic.
//
// Copying a Vector copies a slice header: both copies see the same
// elements. Arithmetic returns new vectors; Set and the slices returned by
// Values and Slice write through.
type Vector[E Element] struct {
	data []E
}

// DataVector is a vector of reals.
type DataVector = Vector[float64]

// ComplexDataVector is a vector of complex numbers.
type ComplexDataVector = Vector[complex128]

// New returns a vector holding a copy of values.
func New[E Element](values ...E) Vector[E] {
	return Vector[E]{data: slices.Clone(values)}
}

// Wrap returns a vector backed by values without copying.
func Wrap[E Element](values []E) Vector[E] {
	return Vector[E]{data: values}
}

// Make returns a vector of n zero elements.
func Make[E Element](n int) Vector[E] {
	return Vector[E]{data: make([]E, n)}
}

// Broadcast returns a vector of n elements equal to x.
func Broadcast[E Element](n int, x E) Vector[E] {
	data := make([]E, n)
	for i := range data {
		data[i] = x
	}
	return Vector[E]{data: data}
}

// Len returns the number of elements.
func (v Vector[E]) Len() int { return len(v.data) }

// At returns element i.
func (v Vector[E]) At(i int) E { return v.data[i] }

// Set stores x at element i.
func (v Vector[E]) Set(i int, x E) { v.data[i] = x }

// Values returns the elements. The slice aliases v.
func (v Vector[E]) Values() []E { return v.data }

// Equal reports whether v and other hold the same elements.
func (v Vector[E]) Equal(other Vector[E]) bool {
	return slices.Equal(v.data, other.data)
}

// Clone returns a copy that shares no elements with v.
func (v Vector[E]) Clone() Vector[E] {
	return Vector[E]{data: slices.Clone(v.data)}
}

// Resize returns v itself when it already has n elements and a new vector
// of n zero elements otherwise.
func (v Vector[E]) Resize(n int) Vector[E] {
	if len(v.data) == n {
		return v
	}
	return Make[E](n)
}

// Filled returns a vector of n elements equal to x.
func (v Vector[E]) Filled(n int, x E) Vector[E] {
	return Broadcast(n, x)
}

// Generate returns a vector of n elements produced by next, in order.
func (v Vector[E]) Generate(n int, next func() E) Vector[E] {
	data := make([]E, n)
	for i := range data {
		data[i] = next()
	}
	return Vector[E]{data: data}
}

// Slice returns the length elements starting at offset. The result aliases
// v and cannot grow into the rest of it.
func (v Vector[E]) Slice(offset, length int) Vector[E] {
	end := offset + length
	return Vector[E]{data: v.data[offset:end:end]}
}

func (v Vector[E]) zip(other Vector[E], op func(a, b E) E) Vector[E] {
	if len(v.data) != len(other.data) {
		panic(fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(v.data), len(other.data)))
	}
	out := make([]E, len(v.data))
	for i := range out {
		out[i] = op(v.data[i], other.data[i])
	}
	return Vector[E]{data: out}
}

func (v Vector[E]) apply(op func(E) E) Vector[E] {
	out := make([]E, len(v.data))
	for i, x := range v.data {
		out[i] = op(x)
	}
	return Vector[E]{data: out}
}

// Add returns v+other elementwise.
func (v Vector[E]) Add(other Vector[E]) Vector[E] {
	return v.zip(other, func(a, b E) E { return a + b })
}

// Sub returns v-other elementwise.
func (v Vector[E]) Sub(other Vector[E]) Vector[E] {
	return v.zip(other, func(a, b E) E { return a - b })
}

// Mul returns v*other elementwise.
func (v Vector[E]) Mul(other Vector[E]) Vector[E] {
	return v.zip(other, func(a, b E) E { return a * b })
}

// Div returns v/other elementwise.
func (v Vector[E]) Div(other Vector[E]) Vector[E] {
	return v.zip(other, func(a, b E) E { return a / b })
}

// Neg returns -v.
func (v Vector[E]) Neg() Vector[E] {
	return v.apply(func(x E) E { return -x })
}

// Exp returns the elementwise exponential.
func (v Vector[E]) Exp() Vector[E] {
	return v.apply(exp[E])
}

// Sqrt returns the elementwise principal square root. Negative reals yield NaN.
func (v Vector[E]) Sqrt() Vector[E] {
	return v.apply(sqrt[E])
}

func (v Vector[E]) String() string {
	return fmt.Sprint(v.data)
}

func exp[E Element](x E) E {
	switch x := any(x).(type) {
	case float64:
		return any(math.Exp(x)).(E)
	case complex128:
		return any(cmplx.Exp(x)).(E)
	}
	panic("unreachable")
}

func sqrt[E Element](x E) E {
	switch x := any(x).(type) {
	case float64:
		return any(math.Sqrt(x)).(E)
	case complex128:
		return any(cmplx.Sqrt(x)).(E)
	}
	panic("unreachable")
}

// Promote converts a real vector to a complex one.
func Promote(v DataVector) ComplexDataVector {
	out := make([]complex128, len(v.data))
	for i, x := range v.data {
		out[i] = complex(x, 0)
	}
	return ComplexDataVector{data: out}
}

// RealPart returns the real parts of v.
func RealPart(v ComplexDataVector) DataVector {
	out := make([]float64, len(v.data))
	for i, z := range v.data {
		out[i] = real(z)
	}
	return DataVector{data: out}
}

// ImagPart returns the imaginary parts of v.
func ImagPart(v ComplexDataVector) DataVector {
	out := make([]float64, len(v.data))
	for i, z := range v.data {
		out[i] = imag(z)
	}
	return DataVector{data: out}
}
