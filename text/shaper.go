package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/bidi"
)

// shapedGlyph is one positioned glyph of a shaped string.
type shapedGlyph struct {
	id      sfnt.GlyphIndex
	x, y    float64 // offset from the pen position
	advance float64
}

// shaper shapes strings with HarfBuzz.
//
// HarfbuzzShaper has internal mutable state, so instances are pooled;
// font.Face is not safe for concurrent use either, so each call wraps the
// shared font in a fresh face.
type shaper struct {
	pool sync.Pool
}

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// shape returns the glyphs of s in visual order. Mixed-direction text is
// split into bidi runs, each shaped in its own direction.
func (sh *shaper) shape(s string, src *fontSource, size float64) []shapedGlyph {
	if s == "" {
		return nil
	}

	runes := []rune(s)
	face := gotext.NewFace(src.shaped)
	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	defer sh.pool.Put(hb)

	var glyphs []shapedGlyph
	var pen float64
	for _, r := range bidiRuns(s, len(runes)) {
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  r.start,
			RunEnd:    r.end,
			Direction: r.dir,
			Face:      face,
			Size:      floatToFixed(size),
			Script:    detectScript(runes[r.start:r.end]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			glyphs = append(glyphs, shapedGlyph{
				id:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph ids fit in uint16 for sfnt fonts
				x:       pen + fixedToFloat(g.XOffset),
				y:       -fixedToFloat(g.YOffset),
				advance: adv,
			})
			pen += adv
		}
	}
	return glyphs
}

// run is a rune range shaped in a single direction.
type run struct {
	start, end int
	dir        di.Direction
}

// bidiRuns splits s into directional runs in visual order. When the
// bidi algorithm fails the whole string is one left-to-right run.
func bidiRuns(s string, n int) []run {
	whole := []run{{start: 0, end: n, dir: di.DirectionLTR}}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]run, 0, ordering.NumRuns())
	covered := 0
	for i := range ordering.NumRuns() {
		r := ordering.Run(i)
		start, end := r.Pos() // inclusive rune indices
		end = min(end+1, n)
		if start < 0 || start >= end {
			continue
		}
		dir := di.DirectionLTR
		if r.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, run{start: start, end: end, dir: dir})
		covered += end - start
	}
	if covered != n {
		return whole
	}
	return runs
}

// detectScript returns the script of the first non-space rune. This is
// a simple heuristic; runs mixing scripts are shaped with the first.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
