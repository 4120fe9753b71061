// Package stroke turns stroked polylines into an outline made of convex
// pieces, for bounds and hit testing.
//
// # Outline
//
// Each stroked segment contributes a quad offset by half the width on
// both sides of the segment. Joins and caps add their own pieces:
//   - LineJoinMiter: a quad reaching the miter point, or a bevel triangle
//     when the miter limit is exceeded
//   - LineJoinRound: a disc of radius width/2 at the vertex
//   - LineJoinBevel: a triangle across the outer corner
//   - LineCapRound: a disc at each open end
//   - LineCapSquare: a half-square extending width/2 past each open end
//
// The union of the pieces covers exactly the stroked area, so the
// outline's bounds are the union of piece bounds and a point is inside
// the stroke when any piece contains it. Overlaps between pieces are
// harmless because nothing here accumulates coverage.
//
// # Usage
//
//	style := stroke.Stroke{
//	    Width:      2.0,
//	    Cap:        stroke.LineCapRound,
//	    Join:       stroke.LineJoinMiter,
//	    MiterLimit: 4.0,
//	}
//
//	outline := stroke.NewOutline(style, []stroke.Polyline{{
//	    Points: []stroke.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}},
//	}})
//	min, max, ok := outline.Bounds()
//	hit := outline.Contains(stroke.Point{X: 50, Y: 0.5})
//
// Curves must be flattened by the caller before outlining.
package stroke
