package fontstack

import (
	"fmt"

	sdfglyph "github.com/gogpu/sdfglyph"
	"github.com/gogpu/sdfglyph/text"
	"golang.org/x/image/font/sfnt"
)

// glyphRecord mirrors the wire Glyph message (spec.md §6).
type glyphRecord struct {
	ID      uint32
	Bitmap  []byte // nil iff Width == 0
	Width   uint32
	Height  uint32
	Left    int32
	Top     int32
	Advance uint32
}

// fontstackRecord mirrors the wire Fontstack message.
type fontstackRecord struct {
	Name   string
	Range  string
	Glyphs []glyphRecord
}

// Range rasterizes every covered codepoint in [start, end] across every
// face in fontBlob and returns the serialized wire bytes (spec.md §4.6).
func Range(fontBlob []byte, start, end uint16) ([]byte, error) {
	source, err := text.NewFontSource(fontBlob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFont, err)
	}
	defer func() { _ = source.Close() }()

	var buf sfnt.Buffer
	params := sdfglyph.DefaultRenderParams()
	rangeLabel := fmt.Sprintf("%d-%d", start, end)

	stacks := make([]fontstackRecord, 0, len(source.Faces()))
	for _, f := range source.Faces() {
		rec := fontstackRecord{
			Name:  faceStackName(f, &buf),
			Range: rangeLabel,
		}

		for c := uint32(start); c <= uint32(end); c++ {
			gid, err := f.GlyphIndex(&buf, rune(c))
			if err != nil || gid == 0 {
				continue
			}

			info := sdfglyph.Render(f, &buf, gid, params)
			g := glyphRecord{
				ID:      c,
				Width:   uint32(info.Width),
				Height:  uint32(info.Height),
				Left:    int32(info.Left),
				Top:     int32(info.Top - info.Ascender),
				Advance: uint32(info.Advance),
			}
			if info.Width > 0 {
				g.Bitmap = info.Bitmap
			}
			rec.Glyphs = append(rec.Glyphs, g)
		}

		stacks = append(stacks, rec)
	}

	return encodeGlyphs(stacks), nil
}

// faceStackName builds "family style", dropping the trailing space when
// the face reports no style (spec.md §4.6 step 3).
func faceStackName(f *sfnt.Font, buf *sfnt.Buffer) string {
	family := text.FamilyName(f, buf)
	style := text.StyleName(f, buf)
	if style == "" {
		return family
	}
	return family + " " + style
}
