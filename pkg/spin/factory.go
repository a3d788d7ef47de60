package spin

// MakeWithValue returns a value of spin S with n elements equal to value.
// For scalar storage n is ignored and the result is the scalar itself.
func MakeWithValue[S Spin, T Fillable[T, E], E any](n int, value E) SpinWeighted[T, S] {
	return Filled[S, T](n, value)
}

// MakeWithValueLike returns a value shaped like like, with every element
// equal to value.
func MakeWithValueLike[T Fillable[T, E], S Spin, E any](like SpinWeighted[T, S], value E) SpinWeighted[T, S] {
	return Filled[S, T](like.Size(), value)
}

// SetNumberOfGridPoints resizes w to n points with the no-op rule of
// DestructiveResize. Scalar storage is left alone.
func SetNumberOfGridPoints[T Storage[T], S Spin](w *SpinWeighted[T, S], n int) {
	w.DestructiveResize(n)
}

// SetNumberOfGridPointsLike resizes w to the length of src. A scalar src
// counts as one point.
func SetNumberOfGridPointsLike[T Storage[T], S Spin, U Storage[U]](w *SpinWeighted[T, S], src U) {
	w.DestructiveResize(src.Len())
}
