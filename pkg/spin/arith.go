package spin

// Add returns a+b. Both operands have spin S; mismatched spins do not compile.
func Add[T Storage[T], S Spin](a, b SpinWeighted[T, S]) SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: a.data.Add(b.data)}
}

// Sub returns a-b.
func Sub[T Storage[T], S Spin](a, b SpinWeighted[T, S]) SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: a.data.Sub(b.data)}
}

// Neg returns -a with the spin of a.
func Neg[T Storage[T], S Spin](a SpinWeighted[T, S]) SpinWeighted[T, S] {
	return SpinWeighted[T, S]{data: a.data.Neg()}
}

// AddWith returns a+b for compatible storage types, promoted by r.
func AddWith[A Storage[A], B Storage[B], R Storage[R], S Spin](r Resolver[A, B, R], a SpinWeighted[A, S], b SpinWeighted[B, S]) SpinWeighted[R, S] {
	return SpinWeighted[R, S]{data: r.Add(a.data, b.data)}
}

// SubWith returns a-b for compatible storage types, promoted by r.
func SubWith[A Storage[A], B Storage[B], R Storage[R], S Spin](r Resolver[A, B, R], a SpinWeighted[A, S], b SpinWeighted[B, S]) SpinWeighted[R, S] {
	return SpinWeighted[R, S]{data: r.Sub(a.data, b.data)}
}

// AddAssign sets w to w+other.
func (w *SpinWeighted[T, S]) AddAssign(other SpinWeighted[T, S]) {
	w.data = w.data.Add(other.data)
}

// SubAssign sets w to w-other.
func (w *SpinWeighted[T, S]) SubAssign(other SpinWeighted[T, S]) {
	w.data = w.data.Sub(other.data)
}

// AddAssignWith sets dst to dst+src. The resolver must promote into the
// storage type of dst.
func AddAssignWith[A Storage[A], B Storage[B], S Spin](r Resolver[A, B, A], dst *SpinWeighted[A, S], src SpinWeighted[B, S]) {
	dst.data = r.Add(dst.data, src.data)
}

// SubAssignWith sets dst to dst-src.
func SubAssignWith[A Storage[A], B Storage[B], S Spin](r Resolver[A, B, A], dst *SpinWeighted[A, S], src SpinWeighted[B, S]) {
	dst.data = r.Sub(dst.data, src.data)
}

// Exp returns the elementwise exponential of a spin-0 field.
func Exp[T Transcendental[T]](a SpinWeighted[T, Zero]) SpinWeighted[T, Zero] {
	return SpinWeighted[T, Zero]{data: a.data.Exp()}
}

// Sqrt returns the elementwise square root of a spin-0 field.
func Sqrt[T Transcendental[T]](a SpinWeighted[T, Zero]) SpinWeighted[T, Zero] {
	return SpinWeighted[T, Zero]{data: a.data.Sqrt()}
}
