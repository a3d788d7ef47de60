package spin

import "fmt"

// View is a read-only window onto a contiguous range of another value's
// storage. It owns nothing: Data aliases the source.
//
// A View is only valid until its source is resized or reassigned. Using it
// afterwards reads whatever the old storage holds; nothing detects this.
type View[T Storage[T], S Spin] struct {
	data   T
	offset int
}

// MakeConstView returns a view of length elements of src starting at
// offset. A range outside src is a programmer error and panics with an
// error wrapping ErrViewOutOfRange.
func MakeConstView[T Sliceable[T], S Spin](src SpinWeighted[T, S], offset, length int) View[T, S] {
	if offset < 0 || length < 0 || length > src.Size()-offset {
		panic(fmt.Errorf("%w: offset %d, length %d, source size %d", ErrViewOutOfRange, offset, length, src.Size()))
	}
	return View[T, S]{data: src.data.Slice(offset, length), offset: offset}
}

// Size returns the length of the view.
func (v View[T, S]) Size() int {
	return v.data.Len()
}

// Offset returns the position of the first element in the source.
func (v View[T, S]) Offset() int {
	return v.offset
}

// Spin returns the spin weight of the source.
func (v View[T, S]) Spin() int {
	return WeightOf[S]()
}

// Data returns storage aliasing the viewed range. Writing through it writes
// to the source.
func (v View[T, S]) Data() T {
	return v.data
}

// Weighted returns the viewed range as a SpinWeighted value for use in
// arithmetic. It aliases the source like Data.
func (v View[T, S]) Weighted() SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: v.data}
}

// Clone copies the viewed range into an independent value.
func (v View[T, S]) Clone() SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: v.data.Clone()}
}
