package sdfglyph

// containsPoint reports whether q lies inside the polygon described by
// rings, using the classic ray-casting crossing-number test with XOR
// accumulation across rings — this is winding-agnostic and correctly
// handles holes regardless of each ring's orientation (spec.md §4.3).
func containsPoint(rings Rings, q Point) bool {
	inside := false
	for _, ring := range rings {
		for i := 0; i < len(ring)-1; i++ {
			p1, p2 := ring[i], ring[i+1]
			if (p1.Y > q.Y) != (p2.Y > q.Y) &&
				q.X < (p2.X-p1.X)*(q.Y-p1.Y)/(p2.Y-p1.Y)+p1.X {
				inside = !inside
			}
		}
	}
	return inside
}

// distanceSquaredToSegment returns the squared Euclidean distance from q to
// the closest point on segment [a, b], clamping the projection parameter to
// [0,1]. A zero-length segment degenerates to point distance.
func distanceSquaredToSegment(q, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		dx, dy := q.X-a.X, q.Y-a.Y
		return dx*dx + dy*dy
	}

	t := ((q.X-a.X)*abx + (q.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	px, py := a.X+t*abx, a.Y+t*aby
	dx, dy := q.X-px, q.Y-py
	return dx*dx + dy*dy
}
