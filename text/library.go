package text

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/rtree/cache"
	"github.com/gogpu/rtree/geom"
)

// DefaultFamily is the family name of the built-in Go Regular font.
const DefaultFamily = "Go"

// defaultShapeCacheCapacity bounds the number of shaped strings kept.
const defaultShapeCacheCapacity = 1024

// Library is a Measurer backed by registered font files.
//
// Families that are not registered fall back to the default family,
// which is Go Regular unless changed with SetDefault.
//
// Library is safe for concurrent use.
type Library struct {
	mu            sync.RWMutex
	fonts         map[string]*fontSource
	defaultFamily string

	shaper *shaper
	shaped *cache.Cache[shapeKey, []shapedGlyph]
}

var _ Measurer = (*Library)(nil)

// LibraryOption configures a Library.
type LibraryOption func(*libraryConfig)

type libraryConfig struct {
	cacheCapacity int
}

// WithShapeCacheCapacity sets how many shaped strings are memoized.
func WithShapeCacheCapacity(n int) LibraryOption {
	return func(c *libraryConfig) {
		c.cacheCapacity = n
	}
}

// NewLibrary creates a library with Go Regular registered as DefaultFamily.
func NewLibrary(opts ...LibraryOption) *Library {
	cfg := libraryConfig{cacheCapacity: defaultShapeCacheCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Library{
		fonts:         make(map[string]*fontSource),
		defaultFamily: DefaultFamily,
		shaper:        newShaper(),
		shaped:        cache.New[shapeKey, []shapedGlyph](cfg.cacheCapacity),
	}

	// The embedded font is known to parse.
	if err := l.Register(DefaultFamily, goregular.TTF); err != nil {
		panic(err)
	}
	return l
}

// Register parses font data and makes it available under family,
// replacing any font previously registered under that name.
func (l *Library) Register(family string, data []byte) error {
	src, err := newFontSource(data)
	if err != nil {
		return fmt.Errorf("text: register %q: %w", family, err)
	}

	l.mu.Lock()
	l.fonts[family] = src
	l.mu.Unlock()

	// Shaped strings of a replaced font are stale.
	l.shaped.Clear()
	return nil
}

// RegisterFile registers the font file at path under family.
func (l *Library) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("text: read font: %w", err)
	}
	return l.Register(family, data)
}

// LoadDir registers every .ttf and .otf file in dir. Each font is
// registered under the family name stored in the file, or under the file
// name without extension when the font has none. It returns the number of
// fonts registered.
func (l *Library) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("text: read font dir: %w", err)
	}

	n := 0
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".ttf" && ext != ".otf") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return n, fmt.Errorf("text: read font: %w", err)
		}
		src, err := newFontSource(data)
		if err != nil {
			return n, fmt.Errorf("text: load %s: %w", e.Name(), err)
		}

		family := src.name
		if family == "" {
			family = strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		}
		l.mu.Lock()
		l.fonts[family] = src
		l.mu.Unlock()
		n++

		Logger().Debug("text: font loaded", "family", family, "file", e.Name())
	}

	if n > 0 {
		l.shaped.Clear()
	}
	return n, nil
}

// SetDefault selects the fallback family for unknown names.
func (l *Library) SetDefault(family string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.fonts[family]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFont, family)
	}
	l.defaultFamily = family
	return nil
}

// Families returns the registered family names in sorted order.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.fonts))
	for name := range l.fonts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CacheStats returns the statistics of the shaped-string cache.
func (l *Library) CacheStats() cache.Stats {
	return l.shaped.Stats()
}

// lookup returns the font for family and the family actually used.
func (l *Library) lookup(family string) (*fontSource, string) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if src, ok := l.fonts[family]; ok {
		return src, family
	}
	Logger().Debug("text: font fallback", "family", family, "default", l.defaultFamily)
	return l.fonts[l.defaultFamily], l.defaultFamily
}

// glyphs shapes s, memoizing the result.
func (l *Library) glyphs(s string, f Font) ([]shapedGlyph, *fontSource) {
	if s == "" || f.Size <= 0 {
		return nil, nil
	}
	src, family := l.lookup(f.Family)
	if src == nil {
		return nil, nil
	}

	key := shapeKey{family: family, size: f.Size, text: s}
	glyphs := l.shaped.GetOrCreate(key, func() []shapedGlyph {
		return l.shaper.shape(s, src, f.Size)
	})
	return glyphs, src
}

// GlyphBounds implements Measurer. Glyphs without ink, such as spaces,
// are omitted.
func (l *Library) GlyphBounds(s string, f Font) []geom.Rect {
	glyphs, src := l.glyphs(s, f)
	if len(glyphs) == 0 {
		return nil
	}

	rects := make([]geom.Rect, 0, len(glyphs))
	for _, g := range glyphs {
		r, ok := src.glyphBounds(g.id, f.Size)
		if !ok {
			continue
		}
		rects = append(rects, r.Transform(geom.Translate(g.x, g.y)))
	}
	return rects
}

// GlyphWidths implements Measurer.
func (l *Library) GlyphWidths(s string, f Font) []float64 {
	glyphs, _ := l.glyphs(s, f)
	if len(glyphs) == 0 {
		return nil
	}

	widths := make([]float64, len(glyphs))
	for i, g := range glyphs {
		widths[i] = g.advance
	}
	return widths
}

// Metrics implements Measurer.
func (l *Library) Metrics(f Font) Metrics {
	if f.Size <= 0 {
		return Metrics{}
	}
	src, _ := l.lookup(f.Family)
	if src == nil {
		return Metrics{}
	}
	return src.metrics(f.Size)
}

// shapeKey identifies a shaped string.
type shapeKey struct {
	family string
	size   float64
	text   string
}

// Hash implements cache.Hashable.
func (k shapeKey) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(k.family)
	_, _ = d.Write([]byte{0})
	var buf [8]byte
	bits := math.Float64bits(k.size)
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(k.text)
	return d.Sum64()
}

// Equal implements cache.Hashable.
func (k shapeKey) Equal(other shapeKey) bool {
	return k == other
}
