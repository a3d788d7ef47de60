// Package field holds spin-weighted data whose spin is only known at run
// time, such as values decoded from files or built from command-line flags.
//
// A Field applies the same rules as package spin, but returns errors where
// package spin refuses to compile. As bridges a Field into the static world
// after checking its spin once; From goes the other way.
package field

import (
	"errors"
	"fmt"

	"github.com/aretw0/introspection"

	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

// Common errors.
var (
	ErrNonZeroSpin  = errors.New("operation requires spin 0")
	ErrSizeMismatch = errors.New("size mismatch")
	ErrOutOfRange   = errors.New("range exceeds field size")
	ErrUnknownOp    = errors.New("unknown operation")
	ErrMissingSpin  = errors.New("missing spin")
)

// Field is a complex vector tagged with a runtime spin weight. Real data is
// promoted to complex on the way in.
type Field struct {
	Spin int                      `json:"spin" yaml:"spin"`
	Data vector.ComplexDataVector `json:"data" yaml:"data"`
}

// New returns a field with the given spin and data.
func New(spinWeight int, data vector.ComplexDataVector) Field {
	return Field{Spin: spinWeight, Data: data}
}

// Filled returns a field of n elements equal to value.
func Filled(spinWeight, n int, value complex128) Field {
	return Field{Spin: spinWeight, Data: vector.Broadcast(n, value)}
}

// Size returns the number of elements.
func (f Field) Size() int {
	return f.Data.Len()
}

// Clone returns a copy sharing no storage with f.
func (f Field) Clone() Field {
	return Field{Spin: f.Spin, Data: f.Data.Clone()}
}

// Equal reports whether f and other have the same spin and elements.
func (f Field) Equal(other Field) bool {
	return f.Spin == other.Spin && f.Data.Equal(other.Data)
}

func sameSize(a, b Field) error {
	if a.Size() != b.Size() {
		return fmt.Errorf("%w: %d and %d", ErrSizeMismatch, a.Size(), b.Size())
	}
	return nil
}

// Add returns a+b. Operands of different spin fail with spin.ErrSpinMismatch.
func Add(a, b Field) (Field, error) {
	s, ok := spin.AddRule(a.Spin, b.Spin)
	if !ok {
		return Field{}, fmt.Errorf("%w: cannot add spin %d and spin %d", spin.ErrSpinMismatch, a.Spin, b.Spin)
	}
	if err := sameSize(a, b); err != nil {
		return Field{}, err
	}
	return Field{Spin: s, Data: a.Data.Add(b.Data)}, nil
}

// Sub returns a-b.
func Sub(a, b Field) (Field, error) {
	s, ok := spin.AddRule(a.Spin, b.Spin)
	if !ok {
		return Field{}, fmt.Errorf("%w: cannot subtract spin %d from spin %d", spin.ErrSpinMismatch, b.Spin, a.Spin)
	}
	if err := sameSize(a, b); err != nil {
		return Field{}, err
	}
	return Field{Spin: s, Data: a.Data.Sub(b.Data)}, nil
}

// Mul returns a*b with spin a.Spin+b.Spin.
func Mul(a, b Field) (Field, error) {
	if err := sameSize(a, b); err != nil {
		return Field{}, err
	}
	return Field{Spin: spin.MulRule(a.Spin, b.Spin), Data: a.Data.Mul(b.Data)}, nil
}

// Div returns a/b with spin a.Spin-b.Spin.
func Div(a, b Field) (Field, error) {
	if err := sameSize(a, b); err != nil {
		return Field{}, err
	}
	return Field{Spin: spin.DivRule(a.Spin, b.Spin), Data: a.Data.Div(b.Data)}, nil
}

// Neg returns -f.
func Neg(f Field) Field {
	return Field{Spin: f.Spin, Data: f.Data.Neg()}
}

// Exp returns the elementwise exponential of a spin-0 field.
func Exp(f Field) (Field, error) {
	if f.Spin != 0 {
		return Field{}, fmt.Errorf("%w: exp of spin %d", ErrNonZeroSpin, f.Spin)
	}
	return Field{Data: f.Data.Exp()}, nil
}

// Sqrt returns the elementwise square root of a spin-0 field.
func Sqrt(f Field) (Field, error) {
	if f.Spin != 0 {
		return Field{}, fmt.Errorf("%w: sqrt of spin %d", ErrNonZeroSpin, f.Spin)
	}
	return Field{Data: f.Data.Sqrt()}, nil
}

// View returns length elements of f starting at offset. Unlike
// spin.MakeConstView, a bad range is an error: the range comes from input.
// The result aliases f.
func View(f Field, offset, length int) (Field, error) {
	if offset < 0 || length < 0 || length > f.Size()-offset {
		return Field{}, fmt.Errorf("%w: offset %d, length %d, size %d", ErrOutOfRange, offset, length, f.Size())
	}
	return Field{Spin: f.Spin, Data: f.Data.Slice(offset, length)}, nil
}

// Resize sets the number of elements with the rule of
// spin.SpinWeighted.DestructiveResize.
func (f *Field) Resize(n int) {
	if f.Size() == n {
		return
	}
	f.Data = f.Data.Resize(n)
}

// Binary applies the operation named op ("add", "sub", "mul", "div").
func Binary(op string, a, b Field) (Field, error) {
	switch op {
	case "add":
		return Add(a, b)
	case "sub":
		return Sub(a, b)
	case "mul":
		return Mul(a, b)
	case "div":
		return Div(a, b)
	default:
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

// Unary applies the operation named op ("neg", "exp", "sqrt").
func Unary(op string, f Field) (Field, error) {
	switch op {
	case "neg":
		return Neg(f), nil
	case "exp":
		return Exp(f)
	case "sqrt":
		return Sqrt(f)
	default:
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
}

// As checks the spin of f against S and returns it as a static value. The
// result shares storage with f.
func As[S spin.Spin](f Field) (spin.SpinWeighted[vector.ComplexDataVector, S], error) {
	if want := spin.WeightOf[S](); f.Spin != want {
		return spin.SpinWeighted[vector.ComplexDataVector, S]{}, fmt.Errorf("%w: field has spin %d, expected %d", spin.ErrSpinMismatch, f.Spin, want)
	}
	return spin.New[S](f.Data), nil
}

// From returns the runtime form of a static value. The result shares
// storage with w.
func From[S spin.Spin](w spin.SpinWeighted[vector.ComplexDataVector, S]) Field {
	return Field{Spin: w.Spin(), Data: w.Data()}
}

// FromReal promotes a real static value.
func FromReal[S spin.Spin](w spin.SpinWeighted[vector.DataVector, S]) Field {
	return Field{Spin: w.Spin(), Data: vector.Promote(w.Data())}
}

// State implements introspection.Introspectable.
func (f Field) State() any {
	return spin.State{Spin: f.Spin, Size: f.Size(), Storage: "vector.ComplexDataVector"}
}

// ComponentType implements introspection.Component.
func (f Field) ComponentType() string {
	return "field"
}

var _ introspection.Introspectable = Field{}
var _ introspection.Component = Field{}
var _ introspection.Introspectable = spin.SpinWeighted[vector.ComplexDataVector, spin.Zero]{}
var _ introspection.Component = spin.SpinWeighted[vector.ComplexDataVector, spin.Zero]{}
