package geom

import "math"

// circleKappa is the cubic Bezier handle length for a quarter circle.
const circleKappa = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
//
// A Path is built with its mutating methods and then treated as an
// immutable value once it is placed in a rendering tree.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) *Path {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	return p
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) *Path {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
	return p
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) *Path {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	return p
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	return p
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	return p
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	if p == nil {
		return nil
	}
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Equal reports whether two paths have identical elements.
func (p *Path) Equal(other *Path) bool {
	a, b := p.Elements(), other.Elements()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Transform returns a new path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}

// Polygon adds a closed polygon through pts. Fewer than two points add nothing.
func (p *Path) Polygon(pts ...Point) *Path {
	if len(pts) < 2 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p.Close()
}

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) *Path {
	ox := rx * circleKappa
	oy := ry * circleKappa

	return p.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry).
		CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy).
		CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry).
		CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy).
		Close()
}

// Arc adds a circular arc from angle1 to angle2 (radians) around (cx, cy).
// The arc starts a new subpath when the path is empty and otherwise
// continues from the current point.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) *Path {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// At most 90 degrees per cubic segment.
	n := int(math.Ceil((angle2 - angle1) / (math.Pi / 2)))
	if n == 0 {
		return p
	}
	step := (angle2 - angle1) / float64(n)
	for i := range n {
		a1 := angle1 + float64(i)*step
		p.arcSegment(cx, cy, r, a1, a1+step, i == 0)
	}
	return p
}

func (p *Path) arcSegment(cx, cy, r, a1, a2 float64, first bool) {
	tanHalf := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*tanHalf*tanHalf) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	switch {
	case len(p.elements) == 0:
		p.MoveTo(x1, y1)
	case first:
		p.LineTo(x1, y1)
	}
	p.CubicTo(x1-alpha*r*sin1, y1+alpha*r*cos1, x2+alpha*r*sin2, y2-alpha*r*cos2, x2, y2)
}

// RoundedRectangle adds a rectangle with rounded corners.
// The radius is clamped to half of the smaller dimension.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) *Path {
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return p.Rectangle(x, y, w, h)
	}

	p.MoveTo(x+r, y)
	p.Arc(x+w-r, y+r, r, -math.Pi/2, 0)
	p.Arc(x+w-r, y+h-r, r, 0, math.Pi/2)
	p.Arc(x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.Arc(x+r, y+r, r, math.Pi, 3*math.Pi/2)
	return p.Close()
}
