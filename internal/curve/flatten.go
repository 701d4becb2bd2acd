// Package curve flattens quadratic and cubic Bezier curves into polylines
// using the AGG adaptive recursive subdivision algorithm.
package curve

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle with
// the root package's own Point type).
type Point struct {
	X, Y float64
}

const (
	recursionLimit      = 32
	collinearityEpsilon = 1e-30
	angleToleranceEps   = 0.01
	approximationScale  = 1.0
)

// distanceToleranceSquare is (0.5/approximationScale)^2, squared so the hot path
// never takes a square root.
var distanceToleranceSquare = (0.5 / approximationScale) * (0.5 / approximationScale)

// angleTolerance and cuspLimit are both disabled (0) per the reference
// contract; kept as named values because the case-3/case-1/case-2 branches
// below are written against them and changing either changes output bytes.
const (
	angleTolerance = 0.0
	cuspLimit      = 0.0
)

// FlattenQuadratic subdivides a quadratic Bezier (start, ctrl, end) and
// returns the interior vertices followed by end. The caller is expected to
// have already emitted start and to append every returned point.
func FlattenQuadratic(start, ctrl, end Point) []Point {
	var out []Point
	recursiveBezier3(start.X, start.Y, ctrl.X, ctrl.Y, end.X, end.Y, 0, &out)
	out = append(out, end)
	return out
}

// FlattenCubic subdivides a cubic Bezier (start, c1, c2, end) and returns
// the interior vertices followed by end.
func FlattenCubic(start, c1, c2, end Point) []Point {
	var out []Point
	recursiveBezier4(start.X, start.Y, c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y, 0, &out)
	out = append(out, end)
	return out
}

func sqDist(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// recursiveBezier3 implements AGG's curve3_div::recursive_bezier.
func recursiveBezier3(x1, y1, x2, y2, x3, y3 float64, level int, out *[]Point) {
	if level > recursionLimit {
		return
	}

	x12, y12 := (x1+x2)/2, (y1+y2)/2
	x23, y23 := (x2+x3)/2, (y2+y3)/2
	x123, y123 := (x12+x23)/2, (y12+y23)/2

	dx, dy := x3-x1, y3-y1
	d := (x2-x3)*dy - (y2-y3)*dx

	if d > collinearityEpsilon || d < -collinearityEpsilon {
		// Regular case.
		if d*d <= distanceToleranceSquare*(dx*dx+dy*dy) {
			if angleTolerance < angleToleranceEps {
				*out = append(*out, Point{x123, y123})
				return
			}
			da := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
			if da >= math.Pi {
				da = 2*math.Pi - da
			}
			if da < angleTolerance {
				*out = append(*out, Point{x2, y2}, Point{x3, y3})
				return
			}
		}
	} else {
		da := dx*dx + dy*dy
		var d2 float64
		if da == 0 {
			d2 = sqDist(x1, y1, x2, y2)
		} else {
			t := ((x2-x1)*dx + (y2-y1)*dy) / da
			if t > 0 && t < 1 {
				return
			}
			if t <= 0 {
				d2 = sqDist(x2, y2, x1, y1)
			} else if t >= 1 {
				d2 = sqDist(x2, y2, x3, y3)
			} else {
				d2 = sqDist(x2, y2, x1+t*dx, y1+t*dy)
			}
		}
		if d2 < distanceToleranceSquare {
			*out = append(*out, Point{x2, y2})
			return
		}
	}

	recursiveBezier3(x1, y1, x12, y12, x123, y123, level+1, out)
	recursiveBezier3(x123, y123, x23, y23, x3, y3, level+1, out)
}

// recursiveBezier4 implements AGG's curve4_div::recursive_bezier.
func recursiveBezier4(x1, y1, x2, y2, x3, y3, x4, y4 float64, level int, out *[]Point) {
	if level > recursionLimit {
		return
	}

	x12, y12 := (x1+x2)/2, (y1+y2)/2
	x23, y23 := (x2+x3)/2, (y2+y3)/2
	x34, y34 := (x3+x4)/2, (y3+y4)/2
	x123, y123 := (x12+x23)/2, (y12+y23)/2
	x234, y234 := (x23+x34)/2, (y23+y34)/2
	x1234, y1234 := (x123+x234)/2, (y123+y234)/2

	if level > 0 {
		dx, dy := x4-x1, y4-y1

		d2 := math.Abs((x2-x4)*dy - (y2-y4)*dx)
		d3 := math.Abs((x3-x4)*dy - (y3-y4)*dx)

		c2 := d2 > collinearityEpsilon
		c3 := d3 > collinearityEpsilon

		switch {
		case !c2 && !c3:
			// All four points collinear, or p1 == p4.
			if k := dx*dx + dy*dy; k != 0 {
				t2 := ((x2-x1)*dx + (y2-y1)*dy) / k
				t3 := ((x3-x1)*dx + (y3-y1)*dy) / k
				if t2 > 0 && t2 < 1 && t3 > 0 && t3 < 1 {
					// Simple collinear case 1---2---3---4: the end
					// points alone describe the curve.
					return
				}
			}
			if sqDist(x1, y1, x4, y4) < distanceToleranceSquare {
				*out = append(*out, Point{x4, y4})
				return
			}
		case !c2 && c3:
			// p1, p2, p4 collinear; p3 is the one that matters.
			if d3*d3 <= distanceToleranceSquare*(dx*dx+dy*dy) {
				if angleTolerance < angleToleranceEps {
					*out = append(*out, Point{x23, y23})
					return
				}
				a23 := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
				if a23 >= math.Pi {
					a23 = 2*math.Pi - a23
				}
				if a23 < angleTolerance {
					*out = append(*out, Point{x2, y2}, Point{x3, y3})
					return
				}
				if cuspLimit != 0 && a23 > cuspLimit {
					*out = append(*out, Point{x3, y3})
					return
				}
			}
		case c2 && !c3:
			// p1, p3, p4 collinear; p2 is the one that matters.
			if d2*d2 <= distanceToleranceSquare*(dx*dx+dy*dy) {
				if angleTolerance < angleToleranceEps {
					*out = append(*out, Point{x23, y23})
					return
				}
				a23 := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
				if a23 >= math.Pi {
					a23 = 2*math.Pi - a23
				}
				if a23 < angleTolerance {
					*out = append(*out, Point{x2, y2}, Point{x3, y3})
					return
				}
				if cuspLimit != 0 && a23 > cuspLimit {
					*out = append(*out, Point{x2, y2})
					return
				}
			}
		default:
			// Regular case.
			if (d2+d3)*(d2+d3) <= distanceToleranceSquare*(dx*dx+dy*dy) {
				if angleTolerance < angleToleranceEps {
					*out = append(*out, Point{x23, y23})
					return
				}
				a23 := math.Abs(math.Atan2(y3-y2, x3-x2) - math.Atan2(y2-y1, x2-x1))
				if a23 >= math.Pi {
					a23 = 2*math.Pi - a23
				}
				if a23 < angleTolerance {
					*out = append(*out, Point{x2, y2}, Point{x3, y3})
					return
				}
				if cuspLimit != 0 && a23 > cuspLimit {
					*out = append(*out, Point{x3, y3})
					return
				}
			}
		}
	}

	recursiveBezier4(x1, y1, x12, y12, x123, y123, x1234, y1234, level+1, out)
	recursiveBezier4(x1234, y1234, x234, y234, x34, y34, x4, y4, level+1, out)
}
