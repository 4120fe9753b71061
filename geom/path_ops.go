package geom

import "math"

// defaultTolerance is the maximum distance between a curve and its
// flattened approximation.
const defaultTolerance = 0.1

// Winding returns the winding number of a point relative to the path.
// Open subpaths are treated as implicitly closed, as a fill would be.
// Uses a horizontal ray cast to the right.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point
	open := false

	closeSubpath := func() {
		if open {
			winding += lineWinding(current, start, pt)
		}
		current = start
		open = false
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			closeSubpath()
			start = e.Point
			current = e.Point
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
			open = true
		case QuadTo:
			winding += quadWinding(QuadBez{current, e.Control, e.Point}, pt)
			current = e.Point
			open = true
		case CubicTo:
			winding += cubicWinding(CubicBez{current, e.Control1, e.Control2, e.Point}, pt)
			current = e.Point
			open = true
		case Close:
			closeSubpath()
		}
	}
	closeSubpath()

	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

func quadWinding(q QuadBez, pt Point) int {
	minY := math.Min(math.Min(q.P0.Y, q.P1.Y), q.P2.Y)
	maxY := math.Max(math.Max(q.P0.Y, q.P1.Y), q.P2.Y)
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	// A curve entirely left of the point can still cross the ray's
	// y coordinate, but only the chord matters then.
	if pt.X > math.Max(math.Max(q.P0.X, q.P1.X), q.P2.X) {
		return lineWinding(q.P0, q.P2, pt)
	}

	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Distance(mid) <= defaultTolerance {
		return lineWinding(q.P0, q.P2, pt)
	}
	q1, q2 := q.Subdivide()
	return quadWinding(q1, pt) + quadWinding(q2, pt)
}

func cubicWinding(c CubicBez, pt Point) int {
	minY := math.Min(math.Min(c.P0.Y, c.P1.Y), math.Min(c.P2.Y, c.P3.Y))
	maxY := math.Max(math.Max(c.P0.Y, c.P1.Y), math.Max(c.P2.Y, c.P3.Y))
	if pt.Y < minY || pt.Y > maxY {
		return 0
	}
	if pt.X > math.Max(math.Max(c.P0.X, c.P1.X), math.Max(c.P2.X, c.P3.X)) {
		return lineWinding(c.P0, c.P3, pt)
	}

	if c.flatness() <= 16*defaultTolerance*defaultTolerance {
		return lineWinding(c.P0, c.P3, pt)
	}
	c1, c2 := c.Subdivide()
	return cubicWinding(c1, pt) + cubicWinding(c2, pt)
}

// Contains tests if a point is inside the path under the given fill rule.
func (p *Path) Contains(pt Point, rule FillRule) bool {
	w := p.Winding(pt)
	if rule == FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// BoundingBox returns the tight axis-aligned bounding box of the path,
// using curve extrema. It returns false for an empty path.
func (p *Path) BoundingBox() (Rect, bool) {
	var bbox Rect
	var current Point
	found := false

	add := func(r Rect) {
		if !found {
			bbox = r
			found = true
			return
		}
		bbox = bbox.Union(r)
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			add(Rect{Min: e.Point, Max: e.Point})
			current = e.Point
		case LineTo:
			add(Rect{Min: e.Point, Max: e.Point})
			current = e.Point
		case QuadTo:
			add(QuadBez{current, e.Control, e.Point}.BoundingBox())
			current = e.Point
		case CubicTo:
			add(CubicBez{current, e.Control1, e.Control2, e.Point}.BoundingBox())
			current = e.Point
		}
	}

	return bbox, found
}

// Polyline is one flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines, one per subpath, approximating
// curves within tolerance. A non-positive tolerance selects the default.
func (p *Path) Flatten(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}
	tolSq := tolerance * tolerance

	var lines []Polyline
	var cur Polyline
	var current, start Point

	flush := func(closed bool) {
		if len(cur.Points) > 0 {
			cur.Closed = closed
			lines = append(lines, cur)
		}
		cur = Polyline{}
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flush(false)
			cur.Points = append(cur.Points, e.Point)
			start, current = e.Point, e.Point
		case LineTo:
			cur.Points = appendStart(cur.Points, current)
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case QuadTo:
			cur.Points = appendStart(cur.Points, current)
			cur.Points = flattenQuad(QuadBez{current, e.Control, e.Point}, tolSq, cur.Points)
			current = e.Point
		case CubicTo:
			cur.Points = appendStart(cur.Points, current)
			cur.Points = flattenCubic(CubicBez{current, e.Control1, e.Control2, e.Point}, tolSq, cur.Points)
			current = e.Point
		case Close:
			flush(true)
			current = start
		}
	}
	flush(false)

	return lines
}

// appendStart seeds a polyline that begins without an explicit MoveTo.
func appendStart(pts []Point, current Point) []Point {
	if len(pts) == 0 {
		return append(pts, current)
	}
	return pts
}

func flattenQuad(q QuadBez, tolSq float64, out []Point) []Point {
	mid := q.P0.Lerp(q.P2, 0.5)
	d := q.P1.Sub(mid)
	if d.X*d.X+d.Y*d.Y <= tolSq {
		return append(out, q.P2)
	}
	q1, q2 := q.Subdivide()
	out = flattenQuad(q1, tolSq, out)
	return flattenQuad(q2, tolSq, out)
}

func flattenCubic(c CubicBez, tolSq float64, out []Point) []Point {
	if c.flatness() <= tolSq*16 {
		return append(out, c.P3)
	}
	c1, c2 := c.Subdivide()
	out = flattenCubic(c1, tolSq, out)
	return flattenCubic(c2, tolSq, out)
}
