package text

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/rtree/geom"
)

// fontSource is a parsed font file.
//
// The same bytes are parsed twice: x/image reads outlines and metrics,
// go-text shapes. Both parsed forms are read-only and safe for
// concurrent use.
type fontSource struct {
	name   string
	sfnt   *opentype.Font
	shaped *gotext.Font
}

// newFontSource parses TTF or OTF data.
func newFontSource(data []byte) (*fontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	s := &fontSource{sfnt: f, shaped: face.Font}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// glyphBounds returns the ink bounds of a glyph at the pen origin.
func (s *fontSource) glyphBounds(gid sfnt.GlyphIndex, size float64) (geom.Rect, bool) {
	var buf sfnt.Buffer
	bounds, _, err := s.sfnt.GlyphBounds(&buf, gid, floatToFixed(size), font.HintingNone)
	if err != nil || bounds.Empty() {
		return geom.Rect{}, false
	}
	return geom.LTRB(
		fixedToFloat(bounds.Min.X), fixedToFloat(bounds.Min.Y),
		fixedToFloat(bounds.Max.X), fixedToFloat(bounds.Max.Y),
	), true
}

// metrics returns the vertical metrics at size.
func (s *fontSource) metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := s.sfnt.Metrics(&buf, floatToFixed(size), font.HintingNone)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		Leading: max(0, fixedToFloat(m.Height)-ascent-descent),
	}
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
