package rtree

import (
	"github.com/gogpu/rtree/geom"
	"github.com/gogpu/rtree/text"
)

// DrawCommand is the instruction carried by a leaf Node: a PathCommand,
// TextCommand or ImageCommand.
type DrawCommand interface {
	isDrawCommand()
}

// PathCommand draws a vector path.
type PathCommand struct {
	Path  *geom.Path
	Paint geom.Paint
}

// TextCommand draws a string anchored at (X, Y).
type TextCommand struct {
	Text     string
	Font     text.Font
	X, Y     float64
	Align    text.Align
	Baseline text.Baseline

	// MaxWidth wraps lines wider than it. Zero disables wrapping.
	MaxWidth float64

	// LineHeight is the distance between baselines. Zero uses the
	// font's line height.
	LineHeight float64

	Paint geom.Paint
}

// ImageFit selects how an image is fitted into its destination rectangle.
type ImageFit uint8

const (
	// FitFill stretches the image to the rectangle.
	FitFill ImageFit = iota
	// FitContain scales the image to fit inside, keeping its aspect ratio.
	FitContain
	// FitCover scales the image to cover the rectangle, keeping its aspect ratio.
	FitCover
	// FitScaleDown behaves like FitContain but never enlarges.
	FitScaleDown
	// FitNone draws the image at its natural size, centered.
	FitNone
)

var imageFitNames = [...]string{"fill", "contain", "cover", "scale-down", "none"}

// String returns the CSS object-fit name.
func (f ImageFit) String() string {
	if int(f) < len(imageFitNames) {
		return imageFitNames[f]
	}
	return "unknown"
}

// ParseImageFit parses a CSS object-fit name.
func ParseImageFit(s string) (ImageFit, bool) {
	for i, name := range imageFitNames {
		if name == s {
			return ImageFit(i), true
		}
	}
	return FitFill, false
}

// ImageCommand draws an image into Rect. The image itself is identified
// by Source and never decoded here: every fit mode draws within Rect.
type ImageCommand struct {
	Rect   geom.Rect
	Source string
	Fit    ImageFit

	// Paint is optional. Only its mask filter affects geometry.
	Paint *geom.Paint
}

func (PathCommand) isDrawCommand()  {}
func (TextCommand) isDrawCommand()  {}
func (ImageCommand) isDrawCommand() {}
