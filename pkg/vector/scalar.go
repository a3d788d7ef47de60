package vector

import (
	"math"
	"math/cmplx"
)

// Real is a scalar real storage. It behaves as a single grid point.
type Real float64

func (r Real) Len() int { return 1 }
func (r Real) Equal(other Real) bool { return r == other }
func (r Real) Clone() Real { return r }
func (r Real) Resize(int) Real { return r }
func (r Real) Add(other Real) Real { return r + other }
func (r Real) Sub(other Real) Real { return r - other }
func (r Real) Mul(other Real) Real { return r * other }
func (r Real) Div(other Real) Real { return r / other }
func (r Real) Neg() Real { return -r }
func (r Real) Exp() Real { return Real(math.Exp(float64(r))) }
func (r Real) Sqrt() Real { return Real(math.Sqrt(float64(r))) }
func (r Real) Complex() Complex { return Complex(complex(float64(r), 0)) }
func (r Real) Filled(_ int, x float64) Real { return Real(x) }

// Generate returns the first value of next.
func (r Real) Generate(_ int, next func() float64) Real { return Real(next()) }

// Complex is a scalar complex storage. It behaves as a single grid point.
type Complex complex128

func (c Complex) Len() int { return 1 }
func (c Complex) Equal(other Complex) bool { return c == other }
func (c Complex) Clone() Complex { return c }
func (c Complex) Resize(int) Complex { return c }
func (c Complex) Add(other Complex) Complex { return c + other }
func (c Complex) Sub(other Complex) Complex { return c - other }
func (c Complex) Mul(other Complex) Complex { return c * other }
func (c Complex) Div(other Complex) Complex { return c / other }
func (c Complex) Neg() Complex { return -c }
func (c Complex) Exp() Complex { return Complex(cmplx.Exp(complex128(c))) }
func (c Complex) Sqrt() Complex { return Complex(cmplx.Sqrt(complex128(c))) }
func (c Complex) Filled(_ int, x complex128) Complex { return Complex(x) }

// Generate returns the first value of next.
func (c Complex) Generate(_ int, next func() complex128) Complex { return Complex(next()) }
