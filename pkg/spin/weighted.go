package spin

import (
	"fmt"
)

// SpinWeighted pairs storage T with the compile-time spin weight S.
//
// The zero value holds zero-value storage (an empty vector, a zero scalar).
// Storage is owned by the value: arithmetic always returns freshly
// allocated storage and Clone makes an independent copy. Because a Go
// assignment copies the storage header, two SpinWeighted values assigned
// from one another share vector elements until one of them is reassigned;
// use Clone or Assign when independence matters.
//
// SpinWeighted is not safe for concurrent mutation.
type SpinWeighted[T Storage[T], S Spin] struct {
	data T
}

// New wraps data with spin S.
func New[S Spin, T Storage[T]](data T) SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: data}
}

// Plain wraps a bare value as spin 0, the spin it carries in mixed arithmetic.
func Plain[T Storage[T]](data T) SpinWeighted[T, Zero] {
	return SpinWeighted[T, Zero]{data: data}
}

// WithSize returns a value of spin S holding n zero elements. Scalar
// storage ignores n.
func WithSize[S Spin, T Storage[T]](n int) SpinWeighted[T, S] {
	var zero T
	return SpinWeighted[T, S]{data: zero.Resize(n)}
}

// Filled returns a value of spin S holding n elements equal to value.
// Scalar storage ignores n.
func Filled[S Spin, T Fillable[T, E], E any](n int, value E) SpinWeighted[T, S] {
	var zero T
	return SpinWeighted[T, S]{data: zero.Filled(n, value)}
}

// Spin returns the spin weight.
func (w SpinWeighted[T, S]) Spin() int {
	return WeightOf[S]()
}

// Size returns the number of elements; 1 for scalar storage.
func (w SpinWeighted[T, S]) Size() int {
	return w.data.Len()
}

// Data returns the underlying storage. Vector storage aliases w.
func (w SpinWeighted[T, S]) Data() T {
	return w.data
}

// MutableData returns a pointer to the underlying storage.
func (w *SpinWeighted[T, S]) MutableData() *T {
	return &w.data
}

// SetData replaces the storage.
func (w *SpinWeighted[T, S]) SetData(data T) {
	w.data = data
}

// Clone returns a copy that shares no storage with w.
func (w SpinWeighted[T, S]) Clone() SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: w.data.Clone()}
}

// Assign copies the contents of other into w.
func (w *SpinWeighted[T, S]) Assign(other SpinWeighted[T, S]) {
	w.data = other.data.Clone()
}

// AssignWith copies src into dst, converting its storage with c. Both
// operands must have the same spin.
func AssignWith[A Storage[A], B Storage[B], S Spin](c Converter[A, B], dst *SpinWeighted[A, S], src SpinWeighted[B, S]) {
	dst.data = c.Convert(dst.data, src.data)
}

// AssignPlain copies a bare value into a spin-0 field. Other spins have no
// plain assignment.
func AssignPlain[T Storage[T]](dst *SpinWeighted[T, Zero], value T) {
	dst.data = value.Clone()
}

// Equal reports whether w and other hold equal storage. Values of different
// spin or storage type cannot be compared.
func (w SpinWeighted[T, S]) Equal(other SpinWeighted[T, S]) bool {
	return w.data.Equal(other.data)
}

// DestructiveResize sets the number of elements to n. If n equals the
// current size nothing happens; otherwise the storage is reallocated and
// the element values are unspecified. Views of w become invalid. Scalar
// storage is unaffected.
func (w *SpinWeighted[T, S]) DestructiveResize(n int) {
	if w.data.Len() == n {
		return
	}
	w.data = w.data.Resize(n)
}

func (w SpinWeighted[T, S]) String() string {
	return fmt.Sprintf("SpinWeighted[spin=%d](%v)", w.Spin(), w.data)
}
