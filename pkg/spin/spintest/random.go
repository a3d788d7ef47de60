package spintest

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/aretw0/spinweighted/pkg/spin"
)

// Distribution draws one element of type E.
type Distribution[E any] func(rng *rand.Rand) E

// NewGenerator returns a generator seeded from the clock. The seed is
// logged so a failing run can be replayed with NewSeededGenerator.
func NewGenerator(tb testing.TB) *rand.Rand {
	tb.Helper()
	seed := uint64(time.Now().UnixNano())
	tb.Logf("spintest seed: %d", seed)
	return NewSeededGenerator(seed)
}

// NewSeededGenerator returns a deterministic generator.
func NewSeededGenerator(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws reals in [lo, hi). Complex elements get independent real
// and imaginary parts in the same range.
func Uniform[E float64 | complex128](lo, hi float64) Distribution[E] {
	draw := func(rng *rand.Rand) float64 { return lo + (hi-lo)*rng.Float64() }
	return func(rng *rand.Rand) E {
		var zero E
		switch any(zero).(type) {
		case complex128:
			return any(complex(draw(rng), draw(rng))).(E)
		default:
			return any(draw(rng)).(E)
		}
	}
}

// UniformSize draws an integer in [lo, hi].
func UniformSize(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}

// MakeWithRandomValues returns a value of spin S with n elements drawn from
// dist. Scalar storage takes a single draw.
func MakeWithRandomValues[S spin.Spin, T spin.Generator[T, E], E any](rng *rand.Rand, dist Distribution[E], n int) spin.SpinWeighted[T, S] {
	var zero T
	return spin.New[S](zero.Generate(n, func() E { return dist(rng) }))
}

// MakeRandom returns storage of n elements drawn from dist, for operands
// that are not wrapped.
func MakeRandom[T spin.Generator[T, E], E any](rng *rand.Rand, dist Distribution[E], n int) T {
	var zero T
	return zero.Generate(n, func() E { return dist(rng) })
}
