// Package spinweighted is the entry point of the spinweighted module.
//
// It re-exports the types most programs need so that a single import is
// enough for common work. The full API lives in the sub-packages:
//
//   - pkg/spin: the SpinWeighted wrapper, spin markers and the arithmetic
//     rules, checked at compile time.
//   - pkg/vector: real and complex scalars and vectors, with the resolvers
//     that let compatible storage types be combined.
//   - pkg/field: fields whose spin is known only at run time.
//   - pkg/codec: JSON and YAML serializers.
//
// Usage:
//
//	gamma := spinweighted.Filled[spin.P1, spinweighted.ComplexDataVector](4, complex(1, 0))
//	eth := spinweighted.Filled[spin.N2, spinweighted.ComplexDataVector](4, complex(0, 1))
//	prod := spin.MulP1N2(gamma, eth) // spin -1
package spinweighted
