// Package sdfglyph rasterizes scalable font glyphs into signed distance
// field bitmaps. It decomposes a glyph outline into closed polygon rings,
// indexes the outline's edges for fast nearest-edge queries, and sweeps the
// padded glyph canvas computing per-pixel signed distance, quantized to an
// 8-bit channel.
//
// The font-loading boundary lives in the text subpackage; serialization and
// multi-face iteration live in the fontstack subpackage. This package is
// the single-glyph core: outline → rings → distance field.
package sdfglyph

// Point is a 2D coordinate in pixel units. Font-native 26.6 fixed-point
// values are divided by 64 at the outline-decoding boundary; everything in
// this package operates in pixels thereafter.
type Point struct {
	X, Y float64
}

// Ring is a closed polygon: an ordered sequence of points with the first
// point repeated at the end. A ring's winding is whatever the outline
// decoder emits — point-in-polygon testing is winding-agnostic.
type Ring []Point

// Rings is one glyph's complete outline: every contour, outer boundaries
// and holes undistinguished.
type Rings []Ring

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// union returns the smallest box containing both b and other.
func (b Box) union(other Box) Box {
	return Box{
		MinX: min(b.MinX, other.MinX),
		MinY: min(b.MinY, other.MinY),
		MaxX: max(b.MaxX, other.MaxX),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// intersects reports whether b and other overlap, treating touching edges
// as intersecting.
func (b Box) intersects(other Box) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// boundsOf returns the bounding box of every point in rings.
func boundsOf(rings Rings) (Box, bool) {
	first := true
	var b Box
	for _, ring := range rings {
		for _, p := range ring {
			if first {
				b = Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
				first = false
				continue
			}
			b = b.union(Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y})
		}
	}
	return b, !first
}

// translate shifts every point in rings by (dx, dy) in place.
func translate(rings Rings, dx, dy float64) {
	for i := range rings {
		for j := range rings[i] {
			rings[i][j].X += dx
			rings[i][j].Y += dy
		}
	}
}

// closeRing appends the ring's first point if it is not already closed.
func closeRing(r Ring) Ring {
	if len(r) == 0 {
		return r
	}
	if r[0] != r[len(r)-1] {
		r = append(r, r[0])
	}
	return r
}
