package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownFont is returned when a family is not registered and no
	// default family is available.
	ErrUnknownFont = errors.New("text: unknown font family")
)
