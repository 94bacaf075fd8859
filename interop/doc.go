// Package interop implements the external boundary this module crosses
// with a host: ingesting a host's indexed triangle list into a
// mesh.PackedMesh, and re-interleaving a mesh's SoA buffers back into a
// host-owned triangle list. Everything on the host side of this package —
// the scene-graph object, its buffer attributes, file I/O, UI, rendering —
// is an external collaborator this module never instantiates.
package interop
