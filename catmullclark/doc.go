// Package catmullclark implements one-iteration Catmull-Clark subdivision
// over n-gon meshes, honoring user-flagged sharp edges and (optionally)
// mesh boundaries as implicit creases, and emits the vertex and face
// GeometryMaps relating the refined mesh back to its base.
package catmullclark
