package text

import (
	"strings"
	"unicode"
)

// breakClass represents Unicode line breaking classes (UAX #14 simplified).
type breakClass uint8

const (
	// breakOther is the default class for most characters.
	breakOther breakClass = iota
	// breakSpace is for space characters (break after).
	breakSpace
	// breakZero is for zero-width space (break opportunity).
	breakZero
	// breakOpen is for opening punctuation (no break after).
	breakOpen
	// breakClose is for closing punctuation (no break before).
	breakClose
	// breakHyphen is for hyphens (break after).
	breakHyphen
	// breakIdeographic is for CJK ideographs (break before/after).
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u200B': // Zero-width space
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2011', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	return breakOther
}

// isCJKRune returns true if the rune is a CJK character that allows breaking.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// breakOpportunities returns, for each rune index i, whether a line may
// break before rune i. Index 0 is always false.
func breakOpportunities(runes []rune) []bool {
	breaks := make([]bool, len(runes))
	for i := 1; i < len(runes); i++ {
		breaks[i] = canBreakBetween(runes[i-1], runes[i])
	}
	return breaks
}

func canBreakBetween(prev, curr rune) bool {
	prevClass, currClass := classifyRune(prev), classifyRune(curr)

	switch {
	case currClass == breakClose, prevClass == breakOpen:
		return false
	case prevClass == breakZero, prevClass == breakSpace:
		return true
	case prevClass == breakHyphen && currClass != breakHyphen:
		return true
	case currClass == breakIdeographic, prevClass == breakIdeographic:
		return true
	}

	// Break at transitions between letters and punctuation.
	if (unicode.IsLetter(prev) || unicode.IsDigit(prev)) && unicode.IsPunct(curr) &&
		curr != '\'' && curr != '.' && curr != ',' {
		return true
	}
	return unicode.IsPunct(prev) && prev != '\'' && unicode.IsLetter(curr)
}

// wrapLine breaks a single line without newlines into lines no wider
// than maxWidth, first-fit at break opportunities. A word wider than
// maxWidth is broken between characters. Trailing spaces do not count
// towards a line's width and are dropped, as are the spaces at the
// start of a continuation line.
func wrapLine(line string, maxWidth float64, width func(string) float64) []string {
	runes := []rune(line)
	n := len(runes)
	if n == 0 || width(line) <= maxWidth {
		return []string{line}
	}
	breaks := breakOpportunities(runes)

	var lines []string
	start := 0
	for start < n {
		end := -1
		for i := start + 1; i <= n; i++ {
			if i < n && !breaks[i] {
				continue
			}
			if width(trimTrailingSpace(runes[start:i])) > maxWidth {
				break
			}
			end = i
		}
		if end < 0 {
			end = charFallback(runes, start, maxWidth, width)
		}

		lines = append(lines, trimTrailingSpace(runes[start:end]))
		start = end
		for start < n && classifyRune(runes[start]) == breakSpace {
			start++
		}
	}
	return lines
}

// charFallback returns the end of the longest run of characters starting
// at start that fits in maxWidth. At least one character is always taken.
func charFallback(runes []rune, start int, maxWidth float64, width func(string) float64) int {
	end := start + 1
	for end < len(runes) && width(string(runes[start:end+1])) <= maxWidth {
		end++
	}
	return end
}

func trimTrailingSpace(runes []rune) string {
	return strings.TrimRight(string(runes), " \t")
}
