package topology

import "errors"

// ErrSeedMismatch is returned by VertexNeighbors when the caller-supplied
// seed face-edge is not incident to the queried vertex.
var ErrSeedMismatch = errors.New("topology: seed face-edge not incident to vertex")
