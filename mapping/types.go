package mapping

import "github.com/arborglyph/meshkit/xform"

// Correspondence is the result of a single FromBase/ToBase query: the set
// of corresponding indices and the per-index rigid transform carrying the
// queried element's local frame into each corresponding element's frame.
// Indices and Transforms are always the same length and owned by the
// caller (a fresh copy on every call, never an alias into map internals).
type Correspondence struct {
	Indices    []int
	Transforms []xform.Mat4
}

// GeometryMap is a bidirectional correspondence between a "base" index
// space and a "self" index space, one base element mapping to zero or
// more self elements and vice versa.
type GeometryMap interface {
	// Lengths returns the size of the base and self index spaces.
	Lengths() (base, self int)
	// FromBase returns the self-space indices corresponding to base
	// index i.
	FromBase(i int) (Correspondence, error)
	// ToBase returns the base-space indices corresponding to self index j.
	ToBase(j int) (Correspondence, error)
}
