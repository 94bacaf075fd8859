// Package mapping implements bidirectional index correspondences between
// two index spaces (a "base" and a "self"), each entry carrying a rigid
// 4x4 transform per corresponding index. A GeometryMap is the unit of
// translation between a mesh and a derived mesh built from it (see
// geomgraph); Compile fuses two adjacent maps into one without revisiting
// the intermediate space.
package mapping
