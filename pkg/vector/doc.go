// Package vector provides the numeric storage behind spin-weighted fields.
//
// Four storage types satisfy spin.Storage:
//
//   - Real and Complex are scalars. They report a length of one and ignore
//     resizing.
//   - DataVector and ComplexDataVector are Vector[float64] and
//     Vector[complex128]: contiguous elements combined elementwise.
//
// Mixing storage types goes through the exported resolvers (ComplexWithReal,
// ComplexVectorWithComplex, ...), which promote real to complex and scalars
// to vectors. Assignment across storage types goes through the exported
// converters. A pair without a resolver is not compatible and cannot be
// combined.
//
// JSON has no Inf or NaN, so MarshalJSON fails with ErrNonFinite on such
// elements. YAML encodes them as .inf and .nan.
package vector
