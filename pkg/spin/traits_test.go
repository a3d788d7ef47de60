package spin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

type (
	realZero    = spin.SpinWeighted[vector.DataVector, spin.Zero]
	realOne     = spin.SpinWeighted[vector.DataVector, spin.P1]
	complexZero = spin.SpinWeighted[vector.ComplexDataVector, spin.Zero]
)

func TestIsAnySpinWeighted(t *testing.T) {
	assert.True(t, spin.IsAnySpinWeighted[realZero]())
	assert.True(t, spin.IsAnySpinWeighted[complexZero]())
	assert.False(t, spin.IsAnySpinWeighted[vector.DataVector]())
	assert.False(t, spin.IsAnySpinWeighted[float64]())
	assert.False(t, spin.IsAnySpinWeighted[*realZero]())
}

func TestIsSpinWeightedOf(t *testing.T) {
	assert.True(t, spin.IsSpinWeightedOf[vector.DataVector, realZero]())
	assert.True(t, spin.IsSpinWeightedOf[vector.DataVector, realOne]())
	assert.False(t, spin.IsSpinWeightedOf[vector.ComplexDataVector, realZero]())
	assert.False(t, spin.IsSpinWeightedOf[vector.DataVector, vector.DataVector]())
}

func TestIsSpinWeightedOfSameType(t *testing.T) {
	assert.True(t, spin.IsSpinWeightedOfSameType[realZero, realOne]())
	assert.False(t, spin.IsSpinWeightedOfSameType[realZero, complexZero]())
	assert.False(t, spin.IsSpinWeightedOfSameType[realZero, vector.DataVector]())
}

func TestCanAdd(t *testing.T) {
	assert.True(t, spin.CanAdd[realZero, realZero]())
	assert.False(t, spin.CanAdd[realZero, realOne]())
	assert.False(t, spin.CanAdd[realZero, complexZero]())
	assert.False(t, spin.CanAdd[vector.Real, vector.Real]())
}
