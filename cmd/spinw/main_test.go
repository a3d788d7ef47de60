package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spinweighted/pkg/field"
	"github.com/aretw0/spinweighted/pkg/spin"
	"github.com/aretw0/spinweighted/pkg/vector"
)

// run executes the root command with args and returns what it wrote to
// stdout. Flags are reset first because the commands are package globals.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func newGolden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGoldenOutputs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"make", []string{"make", "--spin", "1", "--size", "2", "--re", "1", "--im", "0.5"}},
		{"combine_mul", []string{"combine", "mul", "testdata/a.json", "testdata/b.json"}},
		{"apply_neg", []string{"apply", "neg", "testdata/a.json"}},
		{"view", []string{"view", "testdata/a.json", "--offset", "1", "--length", "1"}},
		{"resize", []string{"resize", "testdata/a.json", "--size", "3"}},
		{"inspect", []string{"inspect", "testdata/*.json"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			newGolden(t).Assert(t, tc.name, []byte(out))
		})
	}
}

func TestCombineRejectsMismatchedSpins(t *testing.T) {
	_, err := run(t, "combine", "add", "testdata/a.json", "testdata/b.json")
	assert.ErrorIs(t, err, spin.ErrSpinMismatch)
}

func TestApplyNeedsSpinZero(t *testing.T) {
	_, err := run(t, "apply", "exp", "testdata/a.json")
	assert.ErrorIs(t, err, field.ErrNonZeroSpin)

	_, err = run(t, "apply", "log", "testdata/a.json")
	assert.ErrorIs(t, err, field.ErrUnknownOp)
}

func TestViewOutOfRange(t *testing.T) {
	_, err := run(t, "view", "testdata/a.json", "--offset", "1", "--length", "5")
	assert.ErrorIs(t, err, field.ErrOutOfRange)

	_, err = run(t, "view", "testdata/a.json", "--offset", "1", "--length", "9223372036854775807")
	assert.ErrorIs(t, err, field.ErrOutOfRange)
}

func TestLoadRequiresSpin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nospin.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data": [[4, 0]]}`), 0o644))

	_, err := run(t, "apply", "sqrt", path)
	assert.ErrorIs(t, err, field.ErrMissingSpin)
}

func TestDivideByZeroJSON(t *testing.T) {
	zero := filepath.Join(t.TempDir(), "zero.json")
	_, err := run(t, "make", "--spin", "0", "--size", "2", "-o", zero)
	require.NoError(t, err)

	_, err = run(t, "combine", "div", "testdata/a.json", zero)
	require.ErrorIs(t, err, vector.ErrNonFinite)
	assert.ErrorContains(t, err, "element 0")

	out, err := run(t, "combine", "div", "testdata/a.json", zero, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "inf")
}

func TestMakeValidatesInput(t *testing.T) {
	_, err := run(t, "make", "--spin", "5")
	assert.ErrorContains(t, err, "outside")

	_, err = run(t, "make", "--size", "-1")
	assert.ErrorContains(t, err, "must not be negative")
}

func TestWriteThenInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.yaml")

	out, err := run(t, "make", "--spin", "-3", "--size", "4", "--re", "2", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "inspect", filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	assert.Equal(t, path+"\tspin=-3\tsize=4\n", out)

	out, err = run(t, "combine", "mul", path, path)
	require.NoError(t, err)
	assert.Contains(t, out, `"spin": -6`)
}

func TestYAMLFormat(t *testing.T) {
	out, err := run(t, "make", "--spin", "2", "--size", "1", "--re", "1", "--format", "yaml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "spin: 2\n"), out)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "spinw version 0.1.0\n", out)
}
