// Package text measures strings for layout-aware geometry.
//
// The Measurer interface is what the scene-graph engine consumes: glyph
// ink bounds, glyph advance widths and font metrics. Library is the
// built-in implementation. It parses TrueType and OpenType fonts with
// golang.org/x/image, shapes text with go-text/typesetting (HarfBuzz) so
// kerning and ligatures are reflected in widths, and splits mixed
// direction text into bidi runs before shaping.
//
// Paragraph breaks a string into lines, either at hard newlines or by
// wrapping to a maximum width. LeftInAlign, MultilineBaselineOffset and
// BaselineShift place those lines relative to an anchor point.
//
// # Coordinates
//
// Glyph rectangles use the same y-down convention as package geom: the
// baseline is at y = 0, ink above it has negative y.
package text
