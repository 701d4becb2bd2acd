package fontstack

import (
	"fmt"

	"github.com/gogpu/sdfglyph/text"
	"golang.org/x/image/font/sfnt"
)

// FaceInfo is one face's identity and codepoint coverage (spec.md §4.7).
type FaceInfo struct {
	FamilyName string
	StyleName  string // "" when the face reports none.
	Points     []uint32
}

// Load enumerates every face in fontBlob, reporting each face's family
// name, style name, and the sorted, deduplicated list of covered
// codepoints (codepoint 0 excluded).
func Load(fontBlob []byte) ([]FaceInfo, error) {
	source, err := text.NewFontSource(fontBlob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFontFile, err)
	}
	defer func() { _ = source.Close() }()

	faces := source.Faces()
	infos := make([]FaceInfo, 0, len(faces))

	var buf sfnt.Buffer
	for _, f := range faces {
		infos = append(infos, FaceInfo{
			FamilyName: text.FamilyName(f, &buf),
			StyleName:  text.StyleName(f, &buf),
			Points:     coveredCodepoints(f, &buf),
		})
	}
	return infos, nil
}

// unicodeMax is the highest assigned Unicode scalar value.
const unicodeMax = 0x10FFFF

// surrogateStart and surrogateEnd bound the UTF-16 surrogate gap, which is
// never a valid scalar value.
const (
	surrogateStart = 0xD800
	surrogateEnd   = 0xDFFF
)

// coveredCodepoints probes every assigned Unicode scalar value through
// GlyphIndex and keeps the ones that resolve to a real glyph. sfnt has no
// cmap first-char/next-char iterator (the Go analogue of FreeType's
// FT_Get_First_Char/FT_Get_Next_Char), so this bounded linear probe stands
// in for that cmap walk — spec.md §9 constrains the output, not the
// traversal strategy.
func coveredCodepoints(f *sfnt.Font, buf *sfnt.Buffer) []uint32 {
	var points []uint32
	for r := rune(1); r <= unicodeMax; r++ {
		if r >= surrogateStart && r <= surrogateEnd {
			r = surrogateEnd
			continue
		}
		gid, err := f.GlyphIndex(buf, r)
		if err != nil || gid == 0 {
			continue
		}
		points = append(points, uint32(r))
	}
	return points
}
