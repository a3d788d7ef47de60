package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := New(1.0, 2.0, 3.0)
	b := New(4.0, 5.0, 6.0)

	assert.Equal(t, []float64{5, 7, 9}, a.Add(b).Values())
	assert.Equal(t, []float64{-3, -3, -3}, a.Sub(b).Values())
	assert.Equal(t, []float64{4, 10, 18}, a.Mul(b).Values())
	assert.Equal(t, []float64{0.25, 0.4, 0.5}, a.Div(b).Values())
	assert.Equal(t, []float64{-1, -2, -3}, a.Neg().Values())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3}, a.Values())
}

func TestVectorLengthMismatchPanics(t *testing.T) {
	a := New(1.0, 2.0)
	b := New(1.0)

	assert.PanicsWithError(t, "vector length mismatch: 2 and 1", func() {
		a.Add(b)
	})
}

func TestVectorCloneIsIndependent(t *testing.T) {
	a := New(1i, 2i)
	c := a.Clone()
	c.Set(0, 5)

	assert.Equal(t, 1i, a.At(0))
	assert.Equal(t, complex(5, 0), c.At(0))
	assert.False(t, a.Equal(c))
}

func TestVectorSliceAliases(t *testing.T) {
	a := New(0.0, 1.0, 2.0, 3.0, 4.0)
	s := a.Slice(1, 3)
	require.Equal(t, 3, s.Len())

	s.Set(0, 10)
	assert.Equal(t, 10.0, a.At(1))
	assert.Same(t, &a.Values()[1], &s.Values()[0])
}

func TestVectorResize(t *testing.T) {
	a := New(1.0, 2.0, 3.0)

	same := a.Resize(3)
	assert.Same(t, &a.Values()[0], &same.Values()[0])

	grown := a.Resize(5)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, grown.Values())
	assert.Equal(t, []float64{1, 2, 3}, a.Values())
}

func TestVectorFilledAndGenerate(t *testing.T) {
	var v ComplexDataVector
	assert.Equal(t, []complex128{2i, 2i}, v.Filled(2, 2i).Values())

	n := 0.0
	g := DataVector{}.Generate(3, func() float64 { n++; return n })
	assert.Equal(t, []float64{1, 2, 3}, g.Values())
}

func TestVectorTranscendental(t *testing.T) {
	r := New(0.0, 4.0).Exp()
	assert.Equal(t, 1.0, r.At(0))
	assert.InDelta(t, math.Exp(4), r.At(1), 1e-12)

	assert.True(t, math.IsNaN(New(-1.0).Sqrt().At(0)))
	assert.Equal(t, 1i, New(complex(-1, 0)).Sqrt().At(0))
}

func TestPromoteAndParts(t *testing.T) {
	z := Promote(New(1.0, -2.0))
	assert.Equal(t, []complex128{1, -2}, z.Values())

	w := New(complex(1, 2), complex(3, 4))
	assert.Equal(t, []float64{1, 3}, RealPart(w).Values())
	assert.Equal(t, []float64{2, 4}, ImagPart(w).Values())
}

func TestScalars(t *testing.T) {
	assert.Equal(t, 1, Real(3).Len())
	assert.Equal(t, Real(3), Real(3).Resize(10))
	assert.Equal(t, Complex(complex(3, 0)), Real(3).Complex())
	assert.Equal(t, Complex(2i), Complex(0).Filled(7, 2i))
	assert.Equal(t, Real(-2), Real(4).Sub(Real(6)))
	assert.Equal(t, Complex(-1), Complex(1i).Mul(Complex(1i)))
}
