package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarResolvers(t *testing.T) {
	assert.Equal(t, Complex(complex(3, 1)), ComplexWithReal.Add(Complex(1i), Real(3)))
	assert.Equal(t, Complex(complex(-3, 1)), ComplexWithReal.Sub(Complex(1i), Real(3)))
	assert.Equal(t, Complex(complex(0, 3)), RealWithComplex.Mul(Real(3), Complex(1i)))
	assert.Equal(t, Complex(complex(0, -3)), RealWithComplex.Div(Real(3), Complex(1i)))
}

func TestVectorResolversBroadcast(t *testing.T) {
	v := New(1.0, 2.0)
	z := New(1i, 2i)

	assert.Equal(t, []float64{3, 4}, VectorWithReal.Add(v, Real(2)).Values())
	assert.Equal(t, []float64{1, 0}, RealWithVector.Sub(Real(2), v).Values())
	assert.Equal(t, []complex128{1i, 2i}, VectorWithComplex.Mul(v, Complex(1i)).Values())
	assert.Equal(t, []complex128{2i, 1i}, ComplexWithVector.Div(Complex(2i), v).Values())

	assert.Equal(t, []complex128{complex(1, 1), complex(1, 2)}, ComplexVectorWithReal.Add(z, Real(1)).Values())
	assert.Equal(t, []complex128{complex(1, -1), complex(1, -2)}, RealWithComplexVector.Sub(Real(1), z).Values())
	assert.Equal(t, []complex128{-1, -2}, ComplexVectorWithComplex.Mul(z, Complex(1i)).Values())
	assert.Equal(t, []complex128{2, 1}, ComplexWithComplexVector.Div(Complex(2i), z).Values())

	assert.Equal(t, []complex128{complex(1, 1), complex(2, 2)}, ComplexVectorWithVector.Add(z, v).Values())
	assert.Equal(t, []complex128{complex(1, -1), complex(2, -2)}, VectorWithComplexVector.Sub(v, z).Values())
}

func TestConverters(t *testing.T) {
	assert.Equal(t, Complex(complex(2, 0)), RealToComplex.Convert(0, Real(2)))

	dst := Make[float64](3)
	assert.Equal(t, []float64{5, 5, 5}, RealToVector.Convert(dst, Real(5)).Values())

	cdst := Make[complex128](2)
	assert.Equal(t, []complex128{5, 5}, RealToComplexVector.Convert(cdst, Real(5)).Values())
	assert.Equal(t, []complex128{1i, 1i}, ComplexToComplexVector.Convert(cdst, Complex(1i)).Values())
	assert.Equal(t, []complex128{1, 2, 3}, VectorToComplexVector.Convert(cdst, New(1.0, 2.0, 3.0)).Values())
}
