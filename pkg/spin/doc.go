// Package spin attaches a compile-time spin weight to numeric storage.
//
// A SpinWeighted[T, S] pairs a storage value T (a scalar or a vector of
// reals or complex numbers) with a spin marker S. The spin lives in the type,
// so the rules of spin-weighted arithmetic are checked by the compiler:
//
//   - Add and Sub accept only operands of the same spin.
//   - Mul and Div are generated per spin pair (MulP1N2, DivZeroP2, ...) and
//     their signatures carry the resulting spin.
//   - Equal compares only values of the same spin and storage.
//   - Exp and Sqrt accept only spin 0.
//
// Storage types interoperate through explicit capabilities rather than a
// fixed list: a Resolver combines two compatible storage types into a
// promoted one, and a Converter assigns one into another. Backends such as
// package vector export resolvers for their compatible pairs.
//
// Values whose spin is only known at run time (decoded files, command-line
// input) belong to package field, which checks the same rules once and
// bridges into this package.
//
// Usage:
//
//	a := spin.Filled[spin.P1, vector.ComplexDataVector](5, complex(2, 0))
//	b := spin.Filled[spin.N2, vector.ComplexDataVector](5, complex(4, 0))
//	c := spin.MulP1N2(a, b) // spin -1
//	d := spin.Add(c, c)     // spin -1
//	// spin.Add(a, b) does not compile.
package spin

//go:generate go run ../../internal/spingen -max 4 -out .
