// Package geom provides the 2D geometry used by rendering trees.
//
// It contains points, axis-aligned rectangles, affine matrices, Bezier
// curves, vector paths, paints and the geometry Backend that answers
// bounds and containment queries for a path under a paint.
//
// # Coordinate system
//
// The y axis grows downward. Angles are in radians and a positive angle
// rotates clockwise on screen.
//
// # Backend
//
// DefaultBackend implements Backend on the CPU. Filled paths use tight
// curve-extrema bounds and winding-number containment. Stroked paths are
// outlined by internal/stroke and tested against the outline pieces.
package geom
