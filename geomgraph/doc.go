// Package geomgraph models a tree of derived geometries: a base mesh and,
// from it, zero or more meshes derived by an operation (triangulation,
// subdivision, ...), each carrying a vertex map and a face map back to its
// immediate base. CompileToAncestor folds the maps along a chain of
// derivations into one effective map relative to any ancestor.
package geomgraph
