package vector

import "errors"

// ErrLengthMismatch is the panic value of elementwise operations on vectors
// of different lengths.
var ErrLengthMismatch = errors.New("vector length mismatch")
