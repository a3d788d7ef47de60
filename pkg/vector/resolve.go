package vector

import "github.com/aretw0/spinweighted/pkg/spin"

// promotion combines A and B by lifting both into R first.
type promotion[A, B any, R spin.Storage[R]] struct {
	lift func(a A, b B) (R, R)
}

func (p promotion[A, B, R]) Add(a A, b B) R {
	x, y := p.lift(a, b)
	return x.Add(y)
}

func (p promotion[A, B, R]) Sub(a A, b B) R {
	x, y := p.lift(a, b)
	return x.Sub(y)
}

func (p promotion[A, B, R]) Mul(a A, b B) R {
	x, y := p.lift(a, b)
	return x.Mul(y)
}

func (p promotion[A, B, R]) Div(a A, b B) R {
	x, y := p.lift(a, b)
	return x.Div(y)
}

// Resolvers for the compatible storage pairs. Real promotes to complex and
// scalars broadcast over the vector operand.
var (
	ComplexWithReal spin.Resolver[Complex, Real, Complex] = promotion[Complex, Real, Complex]{
		lift: func(a Complex, b Real) (Complex, Complex) { return a, b.Complex() },
	}
	RealWithComplex spin.Resolver[Real, Complex, Complex] = promotion[Real, Complex, Complex]{
		lift: func(a Real, b Complex) (Complex, Complex) { return a.Complex(), b },
	}

	VectorWithReal spin.Resolver[DataVector, Real, DataVector] = promotion[DataVector, Real, DataVector]{
		lift: func(a DataVector, b Real) (DataVector, DataVector) { return a, Broadcast(a.Len(), float64(b)) },
	}
	RealWithVector spin.Resolver[Real, DataVector, DataVector] = promotion[Real, DataVector, DataVector]{
		lift: func(a Real, b DataVector) (DataVector, DataVector) { return Broadcast(b.Len(), float64(a)), b },
	}

	VectorWithComplex spin.Resolver[DataVector, Complex, ComplexDataVector] = promotion[DataVector, Complex, ComplexDataVector]{
		lift: func(a DataVector, b Complex) (ComplexDataVector, ComplexDataVector) {
			return Promote(a), Broadcast(a.Len(), complex128(b))
		},
	}
	ComplexWithVector spin.Resolver[Complex, DataVector, ComplexDataVector] = promotion[Complex, DataVector, ComplexDataVector]{
		lift: func(a Complex, b DataVector) (ComplexDataVector, ComplexDataVector) {
			return Broadcast(b.Len(), complex128(a)), Promote(b)
		},
	}

	ComplexVectorWithReal spin.Resolver[ComplexDataVector, Real, ComplexDataVector] = promotion[ComplexDataVector, Real, ComplexDataVector]{
		lift: func(a ComplexDataVector, b Real) (ComplexDataVector, ComplexDataVector) {
			return a, Broadcast(a.Len(), complex128(b.Complex()))
		},
	}
	RealWithComplexVector spin.Resolver[Real, ComplexDataVector, ComplexDataVector] = promotion[Real, ComplexDataVector, ComplexDataVector]{
		lift: func(a Real, b ComplexDataVector) (ComplexDataVector, ComplexDataVector) {
			return Broadcast(b.Len(), complex128(a.Complex())), b
		},
	}

	ComplexVectorWithComplex spin.Resolver[ComplexDataVector, Complex, ComplexDataVector] = promotion[ComplexDataVector, Complex, ComplexDataVector]{
		lift: func(a ComplexDataVector, b Complex) (ComplexDataVector, ComplexDataVector) {
			return a, Broadcast(a.Len(), complex128(b))
		},
	}
	ComplexWithComplexVector spin.Resolver[Complex, ComplexDataVector, ComplexDataVector] = promotion[Complex, ComplexDataVector, ComplexDataVector]{
		lift: func(a Complex, b ComplexDataVector) (ComplexDataVector, ComplexDataVector) {
			return Broadcast(b.Len(), complex128(a)), b
		},
	}

	ComplexVectorWithVector spin.Resolver[ComplexDataVector, DataVector, ComplexDataVector] = promotion[ComplexDataVector, DataVector, ComplexDataVector]{
		lift: func(a ComplexDataVector, b DataVector) (ComplexDataVector, ComplexDataVector) { return a, Promote(b) },
	}
	VectorWithComplexVector spin.Resolver[DataVector, ComplexDataVector, ComplexDataVector] = promotion[DataVector, ComplexDataVector, ComplexDataVector]{
		lift: func(a DataVector, b ComplexDataVector) (ComplexDataVector, ComplexDataVector) { return Promote(a), b },
	}
)

// conversion adapts a function to spin.Converter.
type conversion[A, B any] func(dst A, src B) A

func (c conversion[A, B]) Convert(dst A, src B) A { return c(dst, src) }

// Converters for assignment across compatible storage types. Scalars
// assigned to a vector fill it, keeping its size.
var (
	RealToComplex spin.Converter[Complex, Real] = conversion[Complex, Real](func(_ Complex, src Real) Complex {
		return src.Complex()
	})
	RealToVector spin.Converter[DataVector, Real] = conversion[DataVector, Real](func(dst DataVector, src Real) DataVector {
		return Broadcast(dst.Len(), float64(src))
	})
	RealToComplexVector spin.Converter[ComplexDataVector, Real] = conversion[ComplexDataVector, Real](func(dst ComplexDataVector, src Real) ComplexDataVector {
		return Broadcast(dst.Len(), complex(float64(src), 0))
	})
	ComplexToComplexVector spin.Converter[ComplexDataVector, Complex] = conversion[ComplexDataVector, Complex](func(dst ComplexDataVector, src Complex) ComplexDataVector {
		return Broadcast(dst.Len(), complex128(src))
	})
	VectorToComplexVector spin.Converter[ComplexDataVector, DataVector] = conversion[ComplexDataVector, DataVector](func(_ ComplexDataVector, src DataVector) ComplexDataVector {
		return Promote(src)
	})
)
