package spin

import "errors"

// Common errors.
var (
	// ErrSpinMismatch reports a decoded or runtime spin that differs from the expected one.
	ErrSpinMismatch = errors.New("spin mismatch")
	// ErrViewOutOfRange is wrapped by the panic of MakeConstView when the range exceeds the source.
	ErrViewOutOfRange = errors.New("view out of range")
)
