package geom

import "github.com/gogpu/rtree/internal/stroke"

// Backend computes paint-aware geometry for paths.
//
// Implementations must be safe for concurrent use.
type Backend interface {
	// Bounds returns the area covered when path is drawn with paint.
	// A nil paint means a plain fill. It returns false when nothing is
	// covered.
	Bounds(path *Path, paint *Paint) (Rect, bool)

	// Contains reports whether p lies inside path drawn with paint.
	Contains(path *Path, paint *Paint, p Point) bool
}

// DefaultStrokeTolerance is the flattening tolerance used for strokes.
const DefaultStrokeTolerance = 0.25

// DefaultBackend is the built-in Backend. Fills use exact curve bounds
// and winding numbers. Strokes are flattened and outlined.
type DefaultBackend struct {
	// Tolerance is the curve flattening tolerance for strokes. Zero
	// selects DefaultStrokeTolerance.
	Tolerance float64
}

// NewDefaultBackend creates a backend with the given stroke tolerance.
func NewDefaultBackend(tolerance float64) *DefaultBackend {
	return &DefaultBackend{Tolerance: tolerance}
}

// Bounds implements Backend.
func (b *DefaultBackend) Bounds(path *Path, paint *Paint) (Rect, bool) {
	if path.IsEmpty() {
		return Rect{}, false
	}

	var r Rect
	var ok bool
	if isStroke(paint) && paint.StrokeWidth > 0 {
		r, ok = b.outlineBounds(path, paint)
	} else {
		// Fills and hairlines cover the path itself.
		r, ok = path.BoundingBox()
	}
	if !ok {
		return Rect{}, false
	}

	return r.Outset(paint.blurOutset()), true
}

// Contains implements Backend.
func (b *DefaultBackend) Contains(path *Path, paint *Paint, p Point) bool {
	if path.IsEmpty() {
		return false
	}

	if paint.blurOutset() > 0 {
		// A blurred shape is hit anywhere inside its blurred extent.
		r, ok := b.Bounds(path, paint)
		return ok && r.Contains(p)
	}

	if isStroke(paint) {
		if paint.StrokeWidth <= 0 {
			return false
		}
		return b.outline(path, paint).Contains(stroke.Point{X: p.X, Y: p.Y})
	}

	rule := FillRuleNonZero
	if paint != nil {
		rule = paint.FillRule
	}
	return path.Contains(p, rule)
}

func isStroke(paint *Paint) bool {
	return paint != nil && paint.Style == Stroke
}

func (b *DefaultBackend) tolerance() float64 {
	if b == nil || b.Tolerance <= 0 {
		return DefaultStrokeTolerance
	}
	return b.Tolerance
}

func (b *DefaultBackend) outline(path *Path, paint *Paint) *stroke.Outline {
	flat := path.Flatten(b.tolerance())
	lines := make([]stroke.Polyline, len(flat))
	for i, pl := range flat {
		pts := make([]stroke.Point, len(pl.Points))
		for j, p := range pl.Points {
			pts[j] = stroke.Point{X: p.X, Y: p.Y}
		}
		lines[i] = stroke.Polyline{Points: pts, Closed: pl.Closed}
	}

	return stroke.NewOutline(stroke.Stroke{
		Width:      paint.StrokeWidth,
		Cap:        stroke.LineCap(paint.StrokeCap),
		Join:       stroke.LineJoin(paint.StrokeJoin),
		MiterLimit: paint.miterLimit(),
	}, lines)
}

func (b *DefaultBackend) outlineBounds(path *Path, paint *Paint) (Rect, bool) {
	lo, hi, ok := b.outline(path, paint).Bounds()
	if !ok {
		return Rect{}, false
	}
	return Rect{Min: Point{X: lo.X, Y: lo.Y}, Max: Point{X: hi.X, Y: hi.Y}}, true
}
