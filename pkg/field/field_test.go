package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spinweighted/pkg/field"
	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

func TestAddRequiresEqualSpins(t *testing.T) {
	a := field.Filled(1, 2, 1)
	b := field.Filled(1, 2, 2i)

	sum, err := field.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Spin)
	assert.Equal(t, []complex128{complex(1, 2), complex(1, 2)}, sum.Data.Values())

	_, err = field.Add(a, field.Filled(2, 2, 1))
	assert.ErrorIs(t, err, spin.ErrSpinMismatch)

	_, err = field.Sub(a, field.Filled(0, 2, 1))
	assert.ErrorIs(t, err, spin.ErrSpinMismatch)

	_, err = field.Add(a, field.Filled(1, 3, 1))
	assert.ErrorIs(t, err, field.ErrSizeMismatch)
}

func TestProductsCombineSpins(t *testing.T) {
	a := field.Filled(1, 3, 2)
	b := field.Filled(-2, 3, 4)

	prod, err := field.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, -1, prod.Spin)
	assert.Equal(t, []complex128{8, 8, 8}, prod.Data.Values())

	quot, err := field.Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, quot.Spin)
	assert.Equal(t, []complex128{0.5, 0.5, 0.5}, quot.Data.Values())

	_, err = field.Mul(a, field.Filled(0, 1, 1))
	assert.ErrorIs(t, err, field.ErrSizeMismatch)
}

func TestTranscendentalNeedSpinZero(t *testing.T) {
	f := field.Filled(0, 2, -4)
	root, err := field.Sqrt(f)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2i, 2i}, root.Data.Values())

	e, err := field.Exp(field.Filled(0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, []complex128{1}, e.Data.Values())

	_, err = field.Exp(field.Filled(1, 1, 0))
	assert.ErrorIs(t, err, field.ErrNonZeroSpin)
	_, err = field.Sqrt(field.Filled(-1, 1, 0))
	assert.ErrorIs(t, err, field.ErrNonZeroSpin)
}

func TestMatchesStaticRules(t *testing.T) {
	a := spin.Filled[spin.P2, vector.ComplexDataVector](3, complex(3, 1))
	b := spin.Filled[spin.N1, vector.ComplexDataVector](3, complex(1, -1))

	static := spin.MulP2N1(a, b)
	dynamic, err := field.Mul(field.From(a), field.From(b))
	require.NoError(t, err)

	assert.Equal(t, static.Spin(), dynamic.Spin)
	assert.True(t, static.Data().Equal(dynamic.Data))

	static2 := spin.DivP2N1(a, b)
	dynamic2, err := field.Binary("div", field.From(a), field.From(b))
	require.NoError(t, err)
	assert.True(t, field.From(static2).Equal(dynamic2))
}

func TestAsChecksSpin(t *testing.T) {
	f := field.Filled(-2, 2, 1i)

	w, err := field.As[spin.N2](f)
	require.NoError(t, err)
	assert.Equal(t, -2, w.Spin())
	assert.Same(t, &f.Data.Values()[0], &w.Data().Values()[0])

	_, err = field.As[spin.P2](f)
	assert.ErrorIs(t, err, spin.ErrSpinMismatch)
}

func TestFromReal(t *testing.T) {
	w := spin.New[spin.P1](vector.New(1.0, -2.0))
	f := field.FromReal(w)

	assert.Equal(t, 1, f.Spin)
	assert.Equal(t, []complex128{1, -2}, f.Data.Values())
}

func TestView(t *testing.T) {
	f := field.New(1, vector.New(1, 2, 3, 4i))

	v, err := field.View(f, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, v.Spin)
	assert.Equal(t, []complex128{2, 3}, v.Data.Values())

	_, err = field.View(f, 3, 2)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = field.View(f, -1, 1)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = field.View(f, 1, math.MaxInt)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
	_, err = field.View(f, 5, 0)
	assert.ErrorIs(t, err, field.ErrOutOfRange)
}

func TestResize(t *testing.T) {
	f := field.Filled(2, 3, 1)
	f.Resize(3)
	assert.Equal(t, []complex128{1, 1, 1}, f.Data.Values())

	f.Resize(5)
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, 2, f.Spin)
}

func TestOpsByName(t *testing.T) {
	a := field.Filled(0, 1, 4)
	b := field.Filled(0, 1, 2)

	tests := []struct {
		op   string
		want complex128
	}{
		{"add", 6},
		{"sub", 2},
		{"mul", 8},
		{"div", 2},
	}
	for _, tc := range tests {
		t.Run(tc.op, func(t *testing.T) {
			got, err := field.Binary(tc.op, a, b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Data.At(0))
		})
	}

	neg, err := field.Unary("neg", a)
	require.NoError(t, err)
	assert.Equal(t, complex128(-4), neg.Data.At(0))

	_, err = field.Binary("pow", a, b)
	assert.ErrorIs(t, err, field.ErrUnknownOp)
	_, err = field.Unary("log", a)
	assert.ErrorIs(t, err, field.ErrUnknownOp)
}

func TestCloneAndState(t *testing.T) {
	f := field.Filled(3, 2, 1)
	c := f.Clone()
	c.Data.Set(0, 0)
	assert.Equal(t, complex128(1), f.Data.At(0))
	assert.False(t, f.Equal(c))

	state, ok := f.State().(spin.State)
	require.True(t, ok)
	assert.Equal(t, spin.State{Spin: 3, Size: 2, Storage: "vector.ComplexDataVector"}, state)
	assert.Equal(t, "field", f.ComponentType())
}
