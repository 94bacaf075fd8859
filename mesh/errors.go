package mesh

import "errors"

// Sentinel errors for the mesh package.
var (
	// ErrOutOfBounds is returned when a vertex or face index lies outside
	// its valid range.
	ErrOutOfBounds = errors.New("mesh: index out of bounds")
)
