package sdfglyph

import (
	"errors"

	"github.com/gogpu/sdfglyph/internal/curve"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrNotOutline names the condition of a glyph whose format is not a
// scalable outline (e.g. a bitmap or color glyph). decomposeOutline does
// not return it: such a glyph surfaces as the error sfnt's LoadGlyph
// reports, which Render treats as a per-glyph skip (no bitmap) and never
// passes on to its caller.
var ErrNotOutline = errors.New("sdfglyph: glyph is not a scalable outline")

// decomposeOutline loads gid's outline at ppem and walks its segments into
// closed rings, in font pixel units (26.6 values divided by 64). This plays
// the role of FreeType's move_to/line_to/conic_to/cubic_to callback quartet
// (spec.md §4.2), driven here over golang.org/x/image/font/sfnt's
// already-decomposed Segments instead of C callbacks.
func decomposeOutline(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem fixed.Int26_6) (Rings, error) {
	segs, err := f.LoadGlyph(buf, gid, ppem, &sfnt.LoadGlyphOptions{})
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, nil
	}

	var rings Rings
	var current Ring

	toPoint := func(p fixed.Point26_6) Point {
		return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
	}

	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(current) > 0 {
				rings = append(rings, closeRing(current))
			}
			current = Ring{toPoint(seg.Args[0])}

		case sfnt.SegmentOpLineTo:
			current = append(current, toPoint(seg.Args[0]))

		case sfnt.SegmentOpQuadTo:
			if len(current) == 0 {
				continue
			}
			start := current[len(current)-1]
			ctrl := toPoint(seg.Args[0])
			end := toPoint(seg.Args[1])
			for _, p := range curve.FlattenQuadratic(
				curve.Point{X: start.X, Y: start.Y},
				curve.Point{X: ctrl.X, Y: ctrl.Y},
				curve.Point{X: end.X, Y: end.Y},
			) {
				current = append(current, Point{X: p.X, Y: p.Y})
			}

		case sfnt.SegmentOpCubeTo:
			if len(current) == 0 {
				continue
			}
			start := current[len(current)-1]
			c1 := toPoint(seg.Args[0])
			c2 := toPoint(seg.Args[1])
			end := toPoint(seg.Args[2])
			for _, p := range curve.FlattenCubic(
				curve.Point{X: start.X, Y: start.Y},
				curve.Point{X: c1.X, Y: c1.Y},
				curve.Point{X: c2.X, Y: c2.Y},
				curve.Point{X: end.X, Y: end.Y},
			) {
				current = append(current, Point{X: p.X, Y: p.Y})
			}
		}
	}

	if len(current) > 0 {
		rings = append(rings, closeRing(current))
	}

	return rings, nil
}
