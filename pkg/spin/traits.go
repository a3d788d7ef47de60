package spin

import "reflect"

// weighted is implemented by every SpinWeighted instantiation.
type weighted interface {
	storageType() reflect.Type
	spinType() reflect.Type
}

func (SpinWeighted[T, S]) storageType() reflect.Type { return reflect.TypeFor[T]() }
func (SpinWeighted[T, S]) spinType() reflect.Type    { return reflect.TypeFor[S]() }

func asWeighted[V any]() (weighted, bool) {
	if reflect.TypeFor[V]().Kind() == reflect.Pointer {
		return nil, false
	}
	var v V
	w, ok := any(v).(weighted)
	return w, ok
}

// IsAnySpinWeighted reports whether V is a SpinWeighted type. Pointers to
// SpinWeighted are not.
func IsAnySpinWeighted[V any]() bool {
	_, ok := asWeighted[V]()
	return ok
}

// IsSpinWeightedOf reports whether V is a SpinWeighted type with storage T,
// whatever its spin.
func IsSpinWeightedOf[T, V any]() bool {
	w, ok := asWeighted[V]()
	return ok && w.storageType() == reflect.TypeFor[T]()
}

// IsSpinWeightedOfSameType reports whether A and B are SpinWeighted types
// with the same storage, whatever their spins.
func IsSpinWeightedOfSameType[A, B any]() bool {
	a, okA := asWeighted[A]()
	b, okB := asWeighted[B]()
	return okA && okB && a.storageType() == b.storageType()
}

// CanAdd reports whether Add accepts operands of types A and B: the same
// storage and the same spin. It answers at run time the question the
// compiler settles when Add is instantiated.
func CanAdd[A, B any]() bool {
	a, okA := asWeighted[A]()
	b, okB := asWeighted[B]()
	return okA && okB && a.storageType() == b.storageType() && a.spinType() == b.spinType()
}
