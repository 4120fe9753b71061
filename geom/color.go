package geom

import "errors"

// ErrInvalidHex is returned by ParseHex for malformed color strings.
var ErrInvalidHex = errors.New("geom: invalid hex color")

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ParseHex parses a color from a hex string.
// Supports formats "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with an optional
// leading '#'.
func ParseHex(hex string) (RGBA, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var c [4]uint32
	c[3] = 255

	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			v, ok := hexDigits(hex[i : i+1])
			if !ok {
				return RGBA{}, ErrInvalidHex
			}
			c[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(hex); i += 2 {
			v, ok := hexDigits(hex[i : i+2])
			if !ok {
				return RGBA{}, ErrInvalidHex
			}
			c[i/2] = v
		}
	default:
		return RGBA{}, ErrInvalidHex
	}

	return RGBA{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
		A: float64(c[3]) / 255,
	}, nil
}

func hexDigits(s string) (uint32, bool) {
	var val uint32
	for i := 0; i < len(s); i++ {
		ch := s[i]
		val *= 16
		switch {
		case '0' <= ch && ch <= '9':
			val += uint32(ch - '0')
		case 'a' <= ch && ch <= 'f':
			val += uint32(ch - 'a' + 10)
		case 'A' <= ch && ch <= 'F':
			val += uint32(ch - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
