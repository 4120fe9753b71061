package text

// LeftInAlign returns the left edge of a line of the given width whose
// anchor is at x.
func LeftInAlign(x float64, align Align, width float64) float64 {
	switch align {
	case AlignCenter:
		return x - width/2
	case AlignRight:
		return x - width
	default:
		return x
	}
}

// MultilineBaselineOffset returns how far the first line is moved
// vertically so that a block of n lines of height lineHeight is anchored
// per baseline.
func MultilineBaselineOffset(baseline Baseline, lineHeight float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	switch baseline {
	case BaselineMiddle:
		return -lineHeight * float64(n-1) / 2
	case BaselineBottom:
		return -lineHeight * float64(n-1)
	default:
		return 0
	}
}

// BaselineShift returns the offset from the anchor to the alphabetic
// baseline of a single line.
func BaselineShift(baseline Baseline, m Metrics) float64 {
	switch baseline {
	case BaselineMiddle:
		return (m.Ascent - m.Descent) / 2
	case BaselineBottom:
		return -m.Descent
	default:
		return m.Ascent
	}
}
