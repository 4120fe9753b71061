package rtree

import (
	"math"
	"testing"

	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/text"
)

const testEpsilon = 1e-9

// monoMeasurer gives every rune an advance of 10 and an ink box from
// -8 to +2 around the baseline. Spaces have no ink.
type monoMeasurer struct{}

func (monoMeasurer) GlyphBounds(s string, _ text.Font) []geom.Rect {
	var rects []geom.Rect
	x := 0.0
	for _, r := range s {
		if r != ' ' {
			rects = append(rects, geom.LTRB(x, -8, x+10, 2))
		}
		x += 10
	}
	return rects
}

func (monoMeasurer) GlyphWidths(s string, _ text.Font) []float64 {
	var widths []float64
	for range s {
		widths = append(widths, 10)
	}
	return widths
}

func (monoMeasurer) Metrics(text.Font) text.Metrics {
	return text.Metrics{Ascent: 8, Descent: 2}
}

func newTestEngine() *Engine {
	return NewEngine(WithMeasurer(monoMeasurer{}))
}

func rect(x, y, w, h float64) Tree {
	return Path(geom.NewPath().Rectangle(x, y, w, h), geom.NewPaint())
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func pointsNear(a, b geom.Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func rectsNear(a, b geom.Rect) bool {
	return pointsNear(a.Min, b.Min) && pointsNear(a.Max, b.Max)
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine()
	if e.Backend() == nil {
		t.Error("Backend() is nil")
	}
	if e.Measurer() == nil {
		t.Error("Measurer() is nil")
	}
	if e.Cache() == nil {
		t.Fatal("Cache() is nil")
	}
	if e.Cache().Len() != 0 {
		t.Errorf("new cache Len() = %d, want 0", e.Cache().Len())
	}
}
