package sdfglyph

import "testing"

func square(x0, y0, x1, y1 float64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

func TestContainsPointSimpleSquare(t *testing.T) {
	rings := Rings{square(0, 0, 10, 10)}

	cases := []struct {
		p      Point
		inside bool
	}{
		{Point{5, 5}, true},
		{Point{-1, 5}, false},
		{Point{11, 5}, false},
		{Point{5, -1}, false},
	}
	for _, c := range cases {
		if got := containsPoint(rings, c.p); got != c.inside {
			t.Errorf("containsPoint(%v) = %v, want %v", c.p, got, c.inside)
		}
	}
}

func TestContainsPointHole(t *testing.T) {
	// Outer ring and hole are both built by square() with the same (CCW)
	// orientation; XOR accumulation still treats the hole as outside.
	outer := square(0, 0, 20, 20)
	hole := square(5, 5, 15, 15)
	rings := Rings{outer, hole}

	if containsPoint(rings, Point{10, 10}) {
		t.Error("center of hole should be outside the shape")
	}
	if !containsPoint(rings, Point{2, 2}) {
		t.Error("point between outer edge and hole should be inside")
	}
}

func TestDistanceSquaredToSegment(t *testing.T) {
	a := Point{0, 0}
	b := Point{10, 0}

	cases := []struct {
		q    Point
		want float64
	}{
		{Point{5, 0}, 0},
		{Point{5, 3}, 9},
		{Point{-2, 0}, 4},
		{Point{12, 0}, 4},
	}
	for _, c := range cases {
		if got := distanceSquaredToSegment(c.q, a, b); got != c.want {
			t.Errorf("distanceSquaredToSegment(%v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestDistanceSquaredToSegmentZeroLength(t *testing.T) {
	a := Point{3, 4}
	if got := distanceSquaredToSegment(Point{0, 0}, a, a); got != 25 {
		t.Errorf("got %v, want 25", got)
	}
}
