package vector

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVectorJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"real", New(1.0, 2.5), `[1,2.5]`},
		{"empty real", DataVector{}, `[]`},
		{"complex", New(complex(1, -1), 2i), `[[1,-1],[0,2]]`},
		{"empty complex", ComplexDataVector{}, `[]`},
		{"complex scalar", Complex(complex(0.5, 2)), `[0.5,2]`},
		{"real scalar", Real(3), `3`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

func TestMarshalJSONRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"complex inf", New(1, complex(math.Inf(1), 0)), "element 1"},
		{"complex nan imag", New(complex(0, math.NaN())), "element 0"},
		{"real nan", New(2.0, 3.0, math.NaN()), "element 2"},
		{"real inf", New(math.Inf(-1)), "element 0"},
		{"complex scalar", Complex(complex(math.Inf(1), 1)), "non-finite"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := json.Marshal(tc.in)
			require.ErrorIs(t, err, ErrNonFinite)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestComplexVectorAcceptsPlainNumbers(t *testing.T) {
	var v ComplexDataVector
	require.NoError(t, json.Unmarshal([]byte(`[1, [2, 3], -4.5]`), &v))
	assert.Equal(t, []complex128{1, complex(2, 3), -4.5}, v.Values())

	var c Complex
	require.NoError(t, json.Unmarshal([]byte(`7`), &c))
	assert.Equal(t, Complex(7), c)
}

func TestComplexRejectsBadPairs(t *testing.T) {
	var c Complex
	err := json.Unmarshal([]byte(`[1, 2, 3]`), &c)
	assert.ErrorIs(t, err, ErrInvalidComplex)

	err = json.Unmarshal([]byte(`"x"`), &c)
	assert.ErrorIs(t, err, ErrInvalidComplex)

	var v ComplexDataVector
	err = yaml.Unmarshal([]byte("- [1]\n"), &v)
	assert.ErrorIs(t, err, ErrInvalidComplex)
}

func TestVectorYAML(t *testing.T) {
	in := New(complex(1, 2), complex(-3, 0))
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "- [1, 2]\n- [-3, 0]\n", string(data))

	var out ComplexDataVector
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.True(t, in.Equal(out))

	var mixed ComplexDataVector
	require.NoError(t, yaml.Unmarshal([]byte("[1, [0, 1]]"), &mixed))
	assert.Equal(t, []complex128{1, 1i}, mixed.Values())

	var r DataVector
	require.NoError(t, yaml.Unmarshal([]byte("[1.5, 2]"), &r))
	assert.Equal(t, []float64{1.5, 2}, r.Values())
}
