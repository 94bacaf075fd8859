// Package topology answers the shared-edge questions over a mesh.Mesh:
// which face lies across a given edge, which face-edges touch a vertex,
// and — the hard query — the ordered fan of faces wrapped around a
// vertex, open or closed.
//
// All queries are read-only and take a *mesh.PackedMesh (the accelerated
// form); callers holding a mesh.Mesh should call mesh.Accelerated first.
package topology
