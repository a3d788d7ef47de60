package spin_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/spinweighted/pkg/codec"
	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/spin/spintest"
	"github.com/aretw0/spinweighted/pkg/vector"
)

func TestRoundTripRandom(t *testing.T) {
	rng := spintest.NewGenerator(t)

	for ext, s := range codec.DefaultSerializers() {
		t.Run(ext, func(t *testing.T) {
			n := spintest.UniformSize(rng, 5, 10)

			c := spintest.MakeWithRandomValues[spin.N3, vector.ComplexDataVector](rng, spintest.Uniform[complex128](-100, 100), n)
			gotC, err := codec.RoundTrip(s, c)
			require.NoError(t, err)
			assert.True(t, c.Equal(gotC), "complex vector: want %v, got %v", c, gotC)

			r := spintest.MakeWithRandomValues[spin.P2, vector.DataVector](rng, spintest.Uniform[float64](-100, 100), n)
			gotR, err := codec.RoundTrip(s, r)
			require.NoError(t, err)
			assert.True(t, r.Equal(gotR), "real vector: want %v, got %v", r, gotR)

			z := spintest.MakeWithRandomValues[spin.Zero, vector.Complex](rng, spintest.Uniform[complex128](-1, 1), 1)
			gotZ, err := codec.RoundTrip(s, z)
			require.NoError(t, err)
			assert.True(t, z.Equal(gotZ), "complex scalar: want %v, got %v", z, gotZ)
		})
	}
}

func TestJSONEnvelope(t *testing.T) {
	w := spin.New[spin.N1](vector.New(1.0, 2.5))

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"spin":-1,"data":[1,2.5]}`, string(data))

	var scalar spin.SpinWeighted[vector.Real, spin.P1]
	require.NoError(t, json.Unmarshal([]byte(`{"spin":1,"data":4}`), &scalar))
	assert.Equal(t, vector.Real(4), scalar.Data())
}

func TestDecodeRejectsOtherSpin(t *testing.T) {
	var w spin.SpinWeighted[vector.DataVector, spin.P1]

	err := json.Unmarshal([]byte(`{"spin":2,"data":[1]}`), &w)
	assert.ErrorIs(t, err, spin.ErrSpinMismatch)

	err = yaml.Unmarshal([]byte("spin: 0\ndata: [1]\n"), &w)
	assert.ErrorIs(t, err, spin.ErrSpinMismatch)
}

func TestDecodeRequiresSpin(t *testing.T) {
	var w spin.SpinWeighted[vector.DataVector, spin.Zero]

	assert.Error(t, json.Unmarshal([]byte(`{"data":[1]}`), &w))
	assert.Error(t, yaml.Unmarshal([]byte("data: [1]\n"), &w))
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &w))
}
