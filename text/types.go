package text

import "github.com/gogpu/rtree/geom"

// Font selects a registered font family at a pixel size.
type Font struct {
	Family string
	Size   float64
}

// Align is the horizontal alignment of a line relative to its anchor.
type Align uint8

const (
	// AlignLeft places the anchor at the left edge of the line.
	AlignLeft Align = iota
	// AlignCenter places the anchor at the horizontal center.
	AlignCenter
	// AlignRight places the anchor at the right edge.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Baseline is the vertical anchoring of a block of lines.
type Baseline uint8

const (
	// BaselineTop anchors the top of the first line.
	BaselineTop Baseline = iota
	// BaselineMiddle anchors the middle of the block.
	BaselineMiddle
	// BaselineBottom anchors the bottom of the last line.
	BaselineBottom
)

// String returns the baseline name.
func (b Baseline) String() string {
	switch b {
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return "top"
	}
}

// Metrics holds the vertical metrics of a font at a size.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	Leading float64
}

// LineHeight returns the distance between consecutive baselines.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.Leading
}

// Measurer measures strings.
//
// Implementations must be safe for concurrent use.
type Measurer interface {
	// GlyphBounds returns the ink rectangle of each glyph, positioned
	// relative to the pen at the start of s and the baseline.
	GlyphBounds(s string, f Font) []geom.Rect

	// GlyphWidths returns the advance width of each glyph.
	GlyphWidths(s string, f Font) []float64

	// Metrics returns the vertical metrics of f.
	Metrics(f Font) Metrics
}

// Width returns the total advance of s.
func Width(m Measurer, s string, f Font) float64 {
	var w float64
	for _, adv := range m.GlyphWidths(s, f) {
		w += adv
	}
	return w
}
