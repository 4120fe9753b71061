package stroke

import "math"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke outlining.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// degenerateLengthSq is the squared length below which a segment is
// treated as a repeated point.
const degenerateLengthSq = 1e-20

// piece is one convex part of an outline: a polygon, or a disc when
// radius is positive.
type piece struct {
	poly   []Point
	center Point
	radius float64
}

func (p piece) bounds() (Point, Point) {
	if p.radius > 0 {
		r := Vec2{X: p.radius, Y: p.radius}
		return p.center.Add(r.Neg()), p.center.Add(r)
	}
	lo, hi := p.poly[0], p.poly[0]
	for _, q := range p.poly[1:] {
		lo.X, lo.Y = math.Min(lo.X, q.X), math.Min(lo.Y, q.Y)
		hi.X, hi.Y = math.Max(hi.X, q.X), math.Max(hi.Y, q.Y)
	}
	return lo, hi
}

// contains reports whether pt lies inside the piece or on its edge.
func (p piece) contains(pt Point) bool {
	if p.radius > 0 {
		return pt.Sub(p.center).LengthSquared() <= p.radius*p.radius
	}
	var pos, neg bool
	n := len(p.poly)
	for i := range n {
		a, b := p.poly[i], p.poly[(i+1)%n]
		c := b.Sub(a).Cross(pt.Sub(a))
		if c > 0 {
			pos = true
		} else if c < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Outline is a stroked shape stored as a union of convex pieces.
type Outline struct {
	style  Stroke
	hw     float64
	pieces []piece
}

// NewOutline strokes the polylines with the given style.
// A non-positive width produces an empty outline.
func NewOutline(style Stroke, lines []Polyline) *Outline {
	o := &Outline{style: style, hw: style.Width / 2}
	if style.MiterLimit <= 0 {
		o.style.MiterLimit = DefaultStroke().MiterLimit
	}
	if o.hw <= 0 {
		return o
	}
	for _, line := range lines {
		o.addPolyline(line)
	}
	return o
}

// Len returns the number of convex pieces.
func (o *Outline) Len() int {
	return len(o.pieces)
}

// IsEmpty reports whether the outline covers no area.
func (o *Outline) IsEmpty() bool {
	return len(o.pieces) == 0
}

// Bounds returns the bounding box of all pieces.
// It returns false when the outline is empty.
func (o *Outline) Bounds() (minPt, maxPt Point, ok bool) {
	for i, p := range o.pieces {
		lo, hi := p.bounds()
		if i == 0 {
			minPt, maxPt = lo, hi
			continue
		}
		minPt.X, minPt.Y = math.Min(minPt.X, lo.X), math.Min(minPt.Y, lo.Y)
		maxPt.X, maxPt.Y = math.Max(maxPt.X, hi.X), math.Max(maxPt.Y, hi.Y)
	}
	return minPt, maxPt, len(o.pieces) > 0
}

// Contains reports whether pt is covered by any piece.
func (o *Outline) Contains(pt Point) bool {
	for _, p := range o.pieces {
		if p.contains(pt) {
			return true
		}
	}
	return false
}

func (o *Outline) addPolyline(line Polyline) {
	pts := dedupe(line.Points, line.Closed)
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		o.addDot(pts[0])
		return
	}

	n := len(pts)
	segments := n - 1
	if line.Closed {
		segments = n
	}
	for i := range segments {
		o.addSegment(pts[i], pts[(i+1)%n])
	}

	if line.Closed {
		for i := range n {
			prev := pts[(i+n-1)%n]
			o.addJoin(pts[i], pts[i].Sub(prev), pts[(i+1)%n].Sub(pts[i]))
		}
		return
	}

	for i := 1; i < n-1; i++ {
		o.addJoin(pts[i], pts[i].Sub(pts[i-1]), pts[i+1].Sub(pts[i]))
	}
	o.addCap(pts[0], pts[0].Sub(pts[1]))
	o.addCap(pts[n-1], pts[n-1].Sub(pts[n-2]))
}

// dedupe drops consecutive repeated points, including a closing point
// equal to the first.
func dedupe(pts []Point, closed bool) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.Sub(out[len(out)-1]).LengthSquared() < degenerateLengthSq {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Sub(out[len(out)-1]).LengthSquared() < degenerateLengthSq {
		out = out[:len(out)-1]
	}
	return out
}

// normal returns the perpendicular of tan scaled to the half width.
func (o *Outline) normal(tan Vec2) Vec2 {
	return tan.Normalize().Perp().Scale(o.hw)
}

func (o *Outline) addSegment(p0, p1 Point) {
	n := o.normal(p1.Sub(p0))
	o.pieces = append(o.pieces, piece{poly: []Point{
		p0.Add(n), p1.Add(n), p1.Add(n.Neg()), p0.Add(n.Neg()),
	}})
}

// addDot handles a zero-length subpath, which only shows its caps.
func (o *Outline) addDot(p Point) {
	switch o.style.Cap {
	case LineCapRound:
		o.pieces = append(o.pieces, piece{center: p, radius: o.hw})
	case LineCapSquare:
		h := o.hw
		o.pieces = append(o.pieces, piece{poly: []Point{
			{X: p.X - h, Y: p.Y - h}, {X: p.X + h, Y: p.Y - h},
			{X: p.X + h, Y: p.Y + h}, {X: p.X - h, Y: p.Y + h},
		}})
	}
}

// addCap adds the cap at an open end; out points away from the stroke.
func (o *Outline) addCap(p Point, out Vec2) {
	switch o.style.Cap {
	case LineCapRound:
		o.pieces = append(o.pieces, piece{center: p, radius: o.hw})
	case LineCapSquare:
		n := o.normal(out)
		ext := out.Normalize().Scale(o.hw)
		o.pieces = append(o.pieces, piece{poly: []Point{
			p.Add(n), p.Add(n).Add(ext), p.Add(n.Neg()).Add(ext), p.Add(n.Neg()),
		}})
	}
}

// addJoin fills the outer corner between the incoming tangent ab and the
// outgoing tangent cd at vertex p.
func (o *Outline) addJoin(p Point, ab, cd Vec2) {
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	if cross == 0 && dot > 0 {
		return
	}

	if o.style.Join == LineJoinRound {
		o.pieces = append(o.pieces, piece{center: p, radius: o.hw})
		return
	}

	// The outer side is where the offset edges of the two segments
	// diverge.
	n1, n2 := o.normal(ab), o.normal(cd)
	if cross > 0 {
		n1, n2 = n1.Neg(), n2.Neg()
	}

	if o.style.Join == LineJoinMiter {
		hypot := math.Hypot(cross, dot)
		limitSq := o.style.MiterLimit * o.style.MiterLimit
		if 2.0*hypot < (hypot+dot)*limitSq {
			hwSq := o.hw * o.hw
			miter := p.Add(n1.Add(n2).Scale(hwSq / (hwSq + n1.Dot(n2))))
			o.pieces = append(o.pieces, piece{poly: []Point{
				p, p.Add(n1), miter, p.Add(n2),
			}})
			return
		}
	}

	o.pieces = append(o.pieces, piece{poly: []Point{p, p.Add(n1), p.Add(n2)}})
}
