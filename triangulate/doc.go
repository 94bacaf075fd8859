// Package triangulate fan-triangulates every n-gon face of a mesh into
// (degree-2) triangles, leaving vertex positions untouched.
package triangulate
