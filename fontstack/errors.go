package fontstack

import "errors"

// Sentinel errors matching the exact failure strings spec.md §6 names for
// the two entry points.
var (
	// ErrOpenFontFile is returned by Load when the blob cannot be parsed.
	ErrOpenFontFile = errors.New("could not open font file")

	// ErrOpenFont is returned by Range when the blob cannot be parsed.
	ErrOpenFont = errors.New("could not open font")
)
