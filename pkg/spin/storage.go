package spin

// Storage is what a value needs to back a SpinWeighted field.
//
// Binary operations combine elementwise and return new storage; they never
// modify the receiver. Scalars report a length of 1 and ignore Resize.
type Storage[T any] interface {
	Len() int
	Equal(other T) bool
	Clone() T
	// Resize returns storage of n elements. When n equals Len the receiver
	// is returned unchanged; otherwise element values are unspecified.
	Resize(n int) T
	Add(other T) T
	Sub(other T) T
	Mul(other T) T
	Div(other T) T
	Neg() T
}

// Fillable storage can be built with every element set to one value of type E.
type Fillable[T, E any] interface {
	Storage[T]
	Filled(n int, value E) T
}

// Generator storage can be built element by element.
type Generator[T, E any] interface {
	Storage[T]
	Generate(n int, next func() E) T
}

// Sliceable storage exposes a contiguous sub-range that aliases the receiver.
type Sliceable[T any] interface {
	Storage[T]
	Slice(offset, length int) T
}

// Transcendental storage has elementwise exponential and square root.
type Transcendental[T any] interface {
	Storage[T]
	Exp() T
	Sqrt() T
}

// Resolver combines two compatible storage types A and B into R.
//
// It is the capability that makes mixed-storage arithmetic possible: a
// storage backend declares a compatible pair by exporting a Resolver for it,
// and pairs without one cannot be combined.
type Resolver[A, B, R any] interface {
	Add(a A, b B) R
	Sub(a A, b B) R
	Mul(a A, b B) R
	Div(a A, b B) R
}

// Converter assigns a value of storage type B into storage type A. The
// destination is passed so that scalars can be broadcast to its size.
type Converter[A, B any] interface {
	Convert(dst A, src B) A
}

// Same returns the Resolver of a storage type with itself.
func Same[T Storage[T]]() Resolver[T, T, T] {
	return same[T]{}
}

type same[T Storage[T]] struct{}

func (same[T]) Add(a, b T) T { return a.Add(b) }
func (same[T]) Sub(a, b T) T { return a.Sub(b) }
func (same[T]) Mul(a, b T) T { return a.Mul(b) }
func (same[T]) Div(a, b T) T { return a.Div(b) }
