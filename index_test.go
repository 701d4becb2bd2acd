package sdfglyph

import "testing"

func TestSegmentIndexQueryFindsOverlap(t *testing.T) {
	rings := Rings{square(0, 0, 20, 20)}
	idx := NewSegmentIndex(rings)

	got := idx.Query(Box{MinX: -1, MinY: -1, MaxX: 1, MaxY: 1})
	if len(got) == 0 {
		t.Fatal("expected at least one segment near the corner")
	}
}

func TestSegmentIndexQueryExcludesFar(t *testing.T) {
	rings := Rings{square(0, 0, 20, 20)}
	idx := NewSegmentIndex(rings)

	got := idx.Query(Box{MinX: 1000, MinY: 1000, MaxX: 1001, MaxY: 1001})
	if len(got) != 0 {
		t.Errorf("expected no segments far from the ring, got %d", len(got))
	}
}

func TestSegmentIndexDeduplicates(t *testing.T) {
	rings := Rings{square(0, 0, 4, 4)}
	idx := NewSegmentIndex(rings)

	got := idx.Query(Box{MinX: -5, MinY: -5, MaxX: 10, MaxY: 10})
	seen := make(map[[2]Point]bool)
	for _, s := range got {
		key := [2]Point{s.A, s.B}
		if seen[key] {
			t.Errorf("segment %v returned more than once", s)
		}
		seen[key] = true
	}
}
