package sdfglyph

import (
	"os"
	"testing"

	"golang.org/x/image/font/sfnt"
)

// testFont parses a system font for use by outline/render tests, skipping
// the test when no TTF/OTF is available on this machine.
func testFont(t *testing.T) *sfnt.Font {
	t.Helper()

	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
		"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		"/System/Library/Fonts/Supplemental/Arial.ttf",
		"/Library/Fonts/Arial.ttf",
		"C:\\Windows\\Fonts\\arial.ttf",
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := sfnt.Parse(data)
		if err != nil {
			continue
		}
		return f
	}

	t.Skip("no TTF/OTF font available on this machine")
	return nil
}
