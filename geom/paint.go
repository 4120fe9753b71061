package geom

// PaintStyle selects whether a path is filled or stroked.
type PaintStyle int

const (
	// Fill paints the interior of the path.
	Fill PaintStyle = iota
	// Stroke paints the outline of the path.
	Stroke
)

// String returns the style name.
func (s PaintStyle) String() string {
	if s == Stroke {
		return "stroke"
	}
	return "fill"
}

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

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// DefaultMiterLimit is the miter limit used when a stroke paint leaves
// StrokeMiter unset.
const DefaultMiterLimit = 4.0

// Paint is the subset of drawing state that affects geometry.
type Paint struct {
	Color RGBA
	Style PaintStyle

	// StrokeWidth is the full width of the stroke. Zero strokes draw a
	// hairline with no area.
	StrokeWidth float64
	StrokeCap   LineCap
	StrokeJoin  LineJoin
	StrokeMiter float64

	FillRule FillRule

	// Blur is the sigma of a gaussian mask filter. Non-zero blur grows
	// the painted area by three sigma on every side.
	Blur float64
}

// NewPaint creates a fill paint with default values.
func NewPaint() Paint {
	return Paint{
		Color:       Black,
		Style:       Fill,
		StrokeWidth: 1,
		StrokeMiter: DefaultMiterLimit,
	}
}

// NewStrokePaint creates a stroke paint with the given width.
func NewStrokePaint(width float64) Paint {
	p := NewPaint()
	p.Style = Stroke
	p.StrokeWidth = width
	return p
}

// miterLimit returns the effective miter limit.
func (p *Paint) miterLimit() float64 {
	if p.StrokeMiter <= 0 {
		return DefaultMiterLimit
	}
	return p.StrokeMiter
}

// blurOutset returns how far a mask filter grows the bounds.
func (p *Paint) blurOutset() float64 {
	if p == nil || p.Blur <= 0 {
		return 0
	}
	return 3 * p.Blur
}
