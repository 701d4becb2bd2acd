package curve

import "testing"

func TestFlattenQuadraticEndsAtEndpoint(t *testing.T) {
	start := Point{0, 0}
	ctrl := Point{5, 10}
	end := Point{10, 0}

	pts := FlattenQuadratic(start, ctrl, end)
	if len(pts) == 0 {
		t.Fatal("expected at least one point")
	}
	last := pts[len(pts)-1]
	if last != end {
		t.Errorf("last point = %v, want %v", last, end)
	}
}

func TestFlattenQuadraticCollinearIsOnePoint(t *testing.T) {
	start := Point{0, 0}
	ctrl := Point{5, 0}
	end := Point{10, 0}

	pts := FlattenQuadratic(start, ctrl, end)
	if len(pts) != 1 {
		t.Fatalf("collinear quadratic should flatten to a single point, got %d: %v", len(pts), pts)
	}
	if pts[0] != end {
		t.Errorf("got %v, want %v", pts[0], end)
	}
}

func TestFlattenCubicEndsAtEndpoint(t *testing.T) {
	start := Point{0, 0}
	c1 := Point{0, 10}
	c2 := Point{10, 10}
	end := Point{10, 0}

	pts := FlattenCubic(start, c1, c2, end)
	if len(pts) == 0 {
		t.Fatal("expected at least one point")
	}
	last := pts[len(pts)-1]
	if last != end {
		t.Errorf("last point = %v, want %v", last, end)
	}
}

func TestFlattenCubicCollinearIsOnePoint(t *testing.T) {
	start := Point{0, 0}
	c1 := Point{3, 0}
	c2 := Point{7, 0}
	end := Point{10, 0}

	pts := FlattenCubic(start, c1, c2, end)
	if len(pts) != 1 {
		t.Fatalf("collinear cubic should flatten to a single point, got %d: %v", len(pts), pts)
	}
}

func TestFlattenQuadraticMonotonicApproximation(t *testing.T) {
	start := Point{0, 0}
	ctrl := Point{50, 100}
	end := Point{100, 0}

	pts := FlattenQuadratic(start, ctrl, end)
	// A curve with a tall control point should require multiple
	// subdivisions under the default 0.25 squared distance tolerance.
	if len(pts) < 2 {
		t.Errorf("expected multiple interior vertices for a sharp curve, got %d", len(pts))
	}
	// x(t) is linear in t for this curve, so the vertices must advance
	// monotonically along x.
	prevX := start.X
	for i, p := range pts {
		if p.X <= prevX {
			t.Fatalf("vertex %d at x=%v does not advance past x=%v", i, p.X, prevX)
		}
		prevX = p.X
	}
}
