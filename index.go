package sdfglyph

import "math"

// Segment is an edge of a flattened outline ring, with its axis-aligned
// bounding box cached for spatial-index insertion.
type Segment struct {
	A, B Point
	box  Box
}

func newSegment(a, b Point) Segment {
	return Segment{
		A: a, B: b,
		box: Box{
			MinX: min(a.X, b.X), MinY: min(a.Y, b.Y),
			MaxX: max(a.X, b.X), MaxY: max(a.Y, b.Y),
		},
	}
}

// cellSize matches the renderer's query radius: a query window of
// half-extent radius covers at most a 3x3 neighborhood of cells, bounding
// the number of buckets examined per sample (spec.md §4.4/§9 — "a simple
// grid... bucketed by integer pixel coordinates" is sanctioned in place of
// an R-tree).
const cellSize = 8.0

// SegmentIndex is a uniform grid over segment bounding boxes, supporting
// "return all segments whose bbox intersects a query box."
type SegmentIndex struct {
	buckets map[[2]int][]int
	segs    []Segment
}

// NewSegmentIndex builds an index over every edge of every ring. Rings are
// expected to already be closed (first point repeated at end).
func NewSegmentIndex(rings Rings) *SegmentIndex {
	idx := &SegmentIndex{buckets: make(map[[2]int][]int)}
	for _, ring := range rings {
		for i := 0; i < len(ring)-1; i++ {
			idx.insert(newSegment(ring[i], ring[i+1]))
		}
	}
	return idx
}

func (idx *SegmentIndex) insert(s Segment) {
	i := len(idx.segs)
	idx.segs = append(idx.segs, s)

	cx0, cy0 := cellOf(s.box.MinX, s.box.MinY)
	cx1, cy1 := cellOf(s.box.MaxX, s.box.MaxY)
	for cx := cx0; cx <= cx1; cx++ {
		for cy := cy0; cy <= cy1; cy++ {
			key := [2]int{cx, cy}
			idx.buckets[key] = append(idx.buckets[key], i)
		}
	}
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / cellSize)), int(math.Floor(y / cellSize))
}

// Query returns every segment whose bounding box intersects box,
// deduplicated.
func (idx *SegmentIndex) Query(box Box) []Segment {
	seen := make(map[int]bool)
	var out []Segment

	cx0, cy0 := cellOf(box.MinX, box.MinY)
	cx1, cy1 := cellOf(box.MaxX, box.MaxY)
	for cx := cx0; cx <= cx1; cx++ {
		for cy := cy0; cy <= cy1; cy++ {
			for _, i := range idx.buckets[[2]int{cx, cy}] {
				if seen[i] {
					continue
				}
				seen[i] = true
				if idx.segs[i].box.intersects(box) {
					out = append(out, idx.segs[i])
				}
			}
		}
	}
	return out
}
