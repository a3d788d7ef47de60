package spin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spinweighted/pkg/spin/spintest"
)

func TestSpinRulesCompile(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks snippets with the go command")
	}

	t.Run("valid", func(t *testing.T) {
		src := spintest.Program(`
	a := spin.Filled[spin.P1, vector.ComplexDataVector](3, complex(1, 0))
	b := spin.Filled[spin.N2, vector.ComplexDataVector](3, complex(2, 0))
	c := spin.MulP1N2(a, b)
	_ = spin.Add(c, c)
	_ = spin.Exp(spin.MulP1N1(a, spin.Neg(spin.New[spin.N1](a.Data()))))
	_ = spin.AddWith(vector.ComplexVectorWithReal, a, spin.New[spin.P1](vector.Real(1)))
	_ = spin.MakeConstView(a, 0, 1)`)
		assert.False(t, spintest.Rejects(t, src))
	})

	rejected := []struct {
		name string
		body string
		want string
	}{
		{"add spin 0 and spin 1", `
	a := spin.New[spin.Zero](vector.Real(1))
	b := spin.New[spin.P1](vector.Real(1))
	_ = spin.Add(a, b)`, "does not match"},
		{"add spin 1 and spin 2", `
	a := spin.New[spin.P1](vector.Real(1))
	b := spin.New[spin.P2](vector.Real(1))
	_ = spin.Add(a, b)`, "does not match"},
		{"add spin 0 product to spin 1", `
	a := spin.New[spin.Zero](vector.Real(2))
	b := spin.New[spin.P1](vector.Real(1))
	_ = spin.Add(spin.MulZeroZero(a, a), b)`, "does not match"},
		{"subtract mismatched spins", `
	a := spin.New[spin.N1](vector.New(1.0))
	b := spin.New[spin.P1](vector.New(1.0))
	_ = spin.Sub(a, b)`, "does not match"},
		{"compare mismatched spins", `
	a := spin.New[spin.Zero](vector.Real(1))
	b := spin.New[spin.P1](vector.Real(1))
	_ = a.Equal(b)`, "cannot use b"},
		{"compound assign mismatched spins", `
	a := spin.New[spin.P2](vector.Real(1))
	b := spin.New[spin.P3](vector.Real(1))
	a.AddAssign(b)`, "cannot use b"},
		{"exp of spin 1", `
	a := spin.New[spin.P1](vector.Real(1))
	_ = spin.Exp(a)`, "does not match"},
		{"plain assignment to spin 1", `
	var a spin.SpinWeighted[vector.Real, spin.P1]
	spin.AssignPlain(&a, vector.Real(1))`, "does not match"},
		{"view of a scalar", `
	a := spin.New[spin.P1](vector.Real(1))
	_ = spin.MakeConstView(a, 0, 1)`, "does not satisfy"},
		{"mixed storage without resolver", `
	a := spin.New[spin.P1](vector.New(1.0))
	b := spin.New[spin.P1](vector.Real(1))
	_ = spin.Add(a, b)`, "does not match"},
		{"product with wrong resolver", `
	a := spin.New[spin.P1](vector.New(1.0))
	b := spin.New[spin.P1](vector.Real(1))
	_ = spin.MulP1P1With(vector.ComplexWithReal, a, b)`, "does not match"},
		{"product outside the marker range", `
	a := spin.New[spin.P4](vector.Real(1))
	_ = spin.MulP4P1(a, spin.New[spin.P1](vector.Real(1)))`, "undefined: spin.MulP4P1"},
	}

	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			errs := spintest.CompileErrors(t, spintest.Program(tc.body))
			require.NotEmpty(t, errs)

			var msgs []string
			for _, e := range errs {
				msgs = append(msgs, e.Msg)
			}
			assert.Contains(t, strings.Join(msgs, "\n"), tc.want)
		})
	}
}
