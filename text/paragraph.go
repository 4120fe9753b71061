package text

import (
	"iter"
	"slices"
	"strings"
)

// Paragraph is a string broken into lines for layout.
type Paragraph struct {
	lines []string
}

// NewParagraph splits s into lines at newlines. When maxWidth is positive,
// each line is further wrapped so that no line is wider than maxWidth as
// measured by m, except single characters that cannot fit at all.
func NewParagraph(s string, f Font, maxWidth float64, m Measurer) *Paragraph {
	hard := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if maxWidth <= 0 || m == nil {
		return &Paragraph{lines: hard}
	}

	width := func(line string) float64 {
		return Width(m, line, f)
	}

	lines := make([]string, 0, len(hard))
	for _, line := range hard {
		lines = append(lines, wrapLine(line, maxWidth, width)...)
	}
	return &Paragraph{lines: lines}
}

// Lines returns the laid-out lines. The slice must not be modified.
func (p *Paragraph) Lines() []string {
	return p.lines
}

// Len returns the number of lines.
func (p *Paragraph) Len() int {
	return len(p.lines)
}

// All iterates over the lines with their index.
func (p *Paragraph) All() iter.Seq2[int, string] {
	return slices.All(p.lines)
}
