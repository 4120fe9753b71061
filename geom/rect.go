package geom

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// XYWH creates a rectangle from its top-left corner and size.
// Negative sizes are normalized.
func XYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// LTRB creates a rectangle from its edges.
func LTRB(left, top, right, bottom float64) Rect {
	return NewRect(Pt(left, top), Pt(right, bottom))
}

// RectFromPoints returns the minimal rectangle containing every point.
// It returns false when pts is empty.
func RectFromPoints(pts ...Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.UnionPoint(p)
	}
	return r, true
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// UnionPoint returns the smallest rectangle containing r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Intersect returns the overlapping area of r and other.
// Rectangles that only touch along an edge or corner intersect and yield a
// zero-area rectangle. It returns false when they are disjoint.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	if r.Min.X > other.Max.X || r.Max.X < other.Min.X ||
		r.Min.Y > other.Max.Y || r.Max.Y < other.Min.Y {
		return Rect{}, false
	}
	return Rect{
		Min: Point{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}, true
}

// Contains returns true if the point is inside the rectangle or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// IsOutside reports whether p lies strictly outside the rectangle.
func (r Rect) IsOutside(p Point) bool {
	return p.X < r.Min.X || p.X > r.Max.X || p.Y < r.Min.Y || p.Y > r.Max.Y
}

// IsOnBorder reports whether p lies exactly on one of the rectangle's edges.
func (r Rect) IsOnBorder(p Point) bool {
	onVertical := (p.X == r.Min.X || p.X == r.Max.X) && p.Y >= r.Min.Y && p.Y <= r.Max.Y
	onHorizontal := (p.Y == r.Min.Y || p.Y == r.Max.Y) && p.X >= r.Min.X && p.X <= r.Max.X
	return onVertical || onHorizontal
}

// Corners returns the four corners in clockwise order starting at Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Outset grows the rectangle by d on every side.
func (r Rect) Outset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Transform maps the four corners through m and returns their bounding box.
func (r Rect) Transform(m Matrix) Rect {
	if m.IsIdentity() {
		return r
	}
	c := r.Corners()
	out := Rect{Min: m.TransformPoint(c[0]), Max: m.TransformPoint(c[0])}
	for _, p := range c[1:] {
		out = out.UnionPoint(m.TransformPoint(p))
	}
	return out
}

// ToPath returns a closed rectangular path covering r.
func (r Rect) ToPath() *Path {
	p := NewPath()
	p.Rectangle(r.Min.X, r.Min.Y, r.Width(), r.Height())
	return p
}
