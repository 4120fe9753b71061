package text

import (
	"slices"
	"testing"

	"github.com/gogpu/rtree/geom"
)

// monoMeasurer gives every rune an advance of 10 and an ink box from
// -8 to +2 around the baseline.
type monoMeasurer struct{}

func (monoMeasurer) GlyphBounds(s string, _ Font) []geom.Rect {
	var rects []geom.Rect
	x := 0.0
	for range s {
		rects = append(rects, geom.LTRB(x, -8, x+10, 2))
		x += 10
	}
	return rects
}

func (monoMeasurer) GlyphWidths(s string, _ Font) []float64 {
	var widths []float64
	for range s {
		widths = append(widths, 10)
	}
	return widths
}

func (monoMeasurer) Metrics(Font) Metrics {
	return Metrics{Ascent: 8, Descent: 2, Leading: 2}
}

func TestNewParagraph(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		want     []string
	}{
		{"single line", "hello", 0, []string{"hello"}},
		{"hard breaks", "a\nb\r\nc", 0, []string{"a", "b", "c"}},
		{"empty", "", 0, []string{""}},
		{"fits", "hello world", 200, []string{"hello world"}},
		{"word wrap", "hello world", 60, []string{"hello", "world"}},
		{"several words", "aa bb cc dd", 50, []string{"aa bb", "cc dd"}},
		{"long word falls back to chars", "abcdefgh", 30, []string{"abc", "def", "gh"}},
		{"hyphen", "well-known", 50, []string{"well-", "known"}},
		{"wrap keeps empty lines", "aa bb\n\ncc", 20, []string{"aa", "bb", "", "cc"}},
		{"cjk", "日本語です", 20, []string{"日本", "語で", "す"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParagraph(tt.text, Font{Size: 10}, tt.maxWidth, monoMeasurer{})
			if !slices.Equal(p.Lines(), tt.want) {
				t.Errorf("Lines() = %q, want %q", p.Lines(), tt.want)
			}
			if p.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", p.Len(), len(tt.want))
			}
		})
	}
}

func TestParagraph_All(t *testing.T) {
	p := NewParagraph("a\nb\nc", Font{}, 0, nil)
	var got []string
	for i, line := range p.All() {
		if line != p.Lines()[i] {
			t.Errorf("All() index %d = %q, want %q", i, line, p.Lines()[i])
		}
		got = append(got, line)
	}
	if len(got) != 3 {
		t.Errorf("All() yielded %d lines, want 3", len(got))
	}
}

func TestWidth(t *testing.T) {
	if got := Width(monoMeasurer{}, "abc", Font{}); got != 30 {
		t.Errorf("Width() = %v, want 30", got)
	}
}
