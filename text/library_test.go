package text

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLibrary_Metrics(t *testing.T) {
	lib := NewLibrary()
	m := lib.Metrics(Font{Family: DefaultFamily, Size: 16})

	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Fatalf("Metrics() = %+v, want positive ascent and descent", m)
	}
	if m.Ascent < m.Descent {
		t.Errorf("ascent %v should exceed descent %v", m.Ascent, m.Descent)
	}
	if m.LineHeight() < m.Ascent+m.Descent {
		t.Errorf("LineHeight() = %v, want >= %v", m.LineHeight(), m.Ascent+m.Descent)
	}

	big := lib.Metrics(Font{Family: DefaultFamily, Size: 32})
	if big.Ascent <= m.Ascent {
		t.Errorf("ascent at 32px (%v) should exceed ascent at 16px (%v)", big.Ascent, m.Ascent)
	}

	if got := lib.Metrics(Font{Family: DefaultFamily}); got != (Metrics{}) {
		t.Errorf("zero size Metrics() = %+v, want zero", got)
	}
}

func TestLibrary_GlyphWidths(t *testing.T) {
	lib := NewLibrary()
	f := Font{Family: DefaultFamily, Size: 20}

	widths := lib.GlyphWidths("Hello", f)
	if len(widths) != 5 {
		t.Fatalf("GlyphWidths() returned %d glyphs, want 5", len(widths))
	}
	for i, w := range widths {
		if w <= 0 {
			t.Errorf("glyph %d width = %v, want positive", i, w)
		}
	}

	if Width(lib, "iiii", f) >= Width(lib, "WWWW", f) {
		t.Error("narrow glyphs should be narrower than wide glyphs")
	}
	if lib.GlyphWidths("", f) != nil {
		t.Error("empty string should have no glyphs")
	}
}

func TestLibrary_GlyphBounds(t *testing.T) {
	lib := NewLibrary()
	f := Font{Family: DefaultFamily, Size: 20}

	rects := lib.GlyphBounds("Hg", f)
	if len(rects) != 2 {
		t.Fatalf("GlyphBounds() returned %d rects, want 2", len(rects))
	}

	h, g := rects[0], rects[1]
	if h.Min.Y >= 0 {
		t.Errorf("H top = %v, want above the baseline", h.Min.Y)
	}
	if g.Max.Y <= 0 {
		t.Errorf("g bottom = %v, want below the baseline", g.Max.Y)
	}
	if g.Min.X <= h.Min.X {
		t.Errorf("second glyph x %v should follow the first %v", g.Min.X, h.Min.X)
	}

	if got := lib.GlyphBounds(" ", f); len(got) != 0 {
		t.Errorf("space should have no ink, got %v", got)
	}
}

func TestLibrary_UnknownFamilyFallsBack(t *testing.T) {
	lib := NewLibrary()
	want := lib.GlyphWidths("abc", Font{Family: DefaultFamily, Size: 12})
	got := lib.GlyphWidths("abc", Font{Family: "No Such Font", Size: 12})
	if len(got) != len(want) {
		t.Fatalf("fallback returned %d glyphs, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("glyph %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLibrary_Register(t *testing.T) {
	lib := NewLibrary()

	if err := lib.Register("empty", nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("Register(nil) error = %v, want ErrEmptyFontData", err)
	}
	if err := lib.Register("junk", []byte("not a font")); err == nil {
		t.Error("Register(junk) should fail")
	}
	if err := lib.Register("Body", goregular.TTF); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := lib.SetDefault("Body"); err != nil {
		t.Errorf("SetDefault() error: %v", err)
	}
	if err := lib.SetDefault("missing"); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("SetDefault(missing) error = %v, want ErrUnknownFont", err)
	}

	families := lib.Families()
	if len(families) != 2 || families[0] != "Body" || families[1] != DefaultFamily {
		t.Errorf("Families() = %v", families)
	}
}

func TestLibrary_LoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "custom.ttf"), goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("skip"), 0o600); err != nil {
		t.Fatal(err)
	}

	lib := NewLibrary()
	n, err := lib.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir() error: %v", err)
	}
	if n != 1 {
		t.Errorf("LoadDir() loaded %d fonts, want 1", n)
	}
}

func TestLibrary_CachesShaping(t *testing.T) {
	lib := NewLibrary()
	f := Font{Family: DefaultFamily, Size: 14}

	lib.GlyphWidths("cached", f)
	lib.GlyphWidths("cached", f)

	if s := lib.CacheStats(); s.Hits < 1 {
		t.Errorf("CacheStats() = %+v, want at least one hit", s)
	}
}

func TestLibrary_Concurrent(t *testing.T) {
	lib := NewLibrary()
	f := Font{Family: DefaultFamily, Size: 14}
	want := Width(lib, "concurrent shaping", f)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if got := Width(lib, "concurrent shaping", f); got != want {
					t.Errorf("Width() = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLibrary_Paragraph(t *testing.T) {
	lib := NewLibrary()
	f := Font{Family: DefaultFamily, Size: 16}
	limit := Width(lib, "hello", f) + 1

	p := NewParagraph("hello hello hello", f, limit, lib)
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (lines %q)", p.Len(), p.Lines())
	}
}
