package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFaces is returned when font data parses but contains no faces.
	ErrNoFaces = errors.New("text: font data contains no faces")
)
