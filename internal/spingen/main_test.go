package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerName(t *testing.T) {
	assert.Equal(t, "Zero", markerName(0))
	assert.Equal(t, "P3", markerName(3))
	assert.Equal(t, "N4", markerName(-4))
}

func TestRulesStayInRange(t *testing.T) {
	rs := rules(4)
	require.Len(t, rs, 122)

	for _, r := range rs {
		assert.LessOrEqual(t, r.Result, 4, r.Func)
		assert.GreaterOrEqual(t, r.Result, -4, r.Func)
		switch r.Method {
		case "Mul":
			assert.Equal(t, r.Left+r.Right, r.Result, r.Func)
		case "Div":
			assert.Equal(t, r.Left-r.Right, r.Result, r.Func)
		default:
			t.Errorf("unexpected method %q", r.Method)
		}
	}
}

func TestGeneratedFilesAreCurrent(t *testing.T) {
	tests := []struct {
		name string
		src  func() ([]byte, error)
	}{
		{"weights_gen.go", func() ([]byte, error) { return render(weightsTmpl, weights(4)) }},
		{"rules_gen.go", func() ([]byte, error) { return render(rulesTmpl, rules(4)) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			want, err := tc.src()
			require.NoError(t, err)

			got, err := os.ReadFile(filepath.Join("..", "..", "pkg", "spin", tc.name))
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got), "run go generate ./pkg/spin")
		})
	}
}
