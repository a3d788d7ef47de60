package spin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/spin/spintest"
	"github.com/aretw0/spinweighted/pkg/vector"
)

func TestViewAliasesSource(t *testing.T) {
	rng := spintest.NewGenerator(t)
	src := spintest.MakeWithRandomValues[spin.P1, vector.ComplexDataVector](rng, spintest.Uniform[complex128](-1, 1), 5)

	view := spin.MakeConstView(src, 2, 2)
	require.Equal(t, 2, view.Size())
	assert.Equal(t, 2, view.Offset())
	assert.Equal(t, 1, view.Spin())
	assert.Same(t, &src.Data().Values()[2], &view.Data().Values()[0])

	src.Data().Set(3, 42)
	assert.Equal(t, complex(42, 0), view.Data().At(1))
}

func TestViewInArithmetic(t *testing.T) {
	src := spin.New[spin.N1](vector.New(1.0, 2.0, 3.0, 4.0))
	view := spin.MakeConstView(src, 1, 2)

	sum := spin.Add(view.Weighted(), view.Weighted())
	assert.Equal(t, []float64{4, 6}, sum.Data().Values())
	assert.Equal(t, []float64{1, 2, 3, 4}, src.Data().Values())

	c := view.Clone()
	c.Data().Set(0, 0)
	assert.Equal(t, 2.0, src.Data().At(1))
}

func TestViewFullAndEmpty(t *testing.T) {
	src := spin.New[spin.Zero](vector.New(1.0, 2.0))

	assert.Equal(t, 2, spin.MakeConstView(src, 0, 2).Size())
	assert.Equal(t, 0, spin.MakeConstView(src, 2, 0).Size())
}

func TestViewOutOfRangePanics(t *testing.T) {
	src := spin.New[spin.Zero](vector.New(1.0, 2.0, 3.0))

	tests := []struct {
		name           string
		offset, length int
	}{
		{"past end", 2, 2},
		{"negative offset", -1, 1},
		{"negative length", 0, -1},
		{"offset past end", 4, 0},
		{"length overflows", 1, math.MaxInt},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				err, ok := r.(error)
				require.True(t, ok)
				assert.ErrorIs(t, err, spin.ErrViewOutOfRange)
			}()
			spin.MakeConstView(src, tc.offset, tc.length)
		})
	}
}
