// Package mesh provides the structure-of-arrays polygonal mesh store: vertex
// positions, a packed n-gon index buffer, and a creased-edge set.
//
// Two storage flavors share the Mesh interface: PackedMesh (contiguous
// buffers, the O(1)-view hot path) and ModifiableMesh (per-face growable
// slices, used while a refinement pass is under construction). Callers
// obtain a PackedMesh for topology queries via Accelerated and convert a
// finished ModifiableMesh back with Clone(false) before publishing it.
//
// Faces are addressed by index and queried through FaceView, a read-only
// projection that is a zero-copy slice over PackedMesh storage and the
// face's own backing slice over ModifiableMesh storage (see FaceView's doc
// comment). Edges are
// addressed by an unordered packed key (min<<32|max), not a string, per the
// module's design notes on allocation-free edge identity.
package mesh
