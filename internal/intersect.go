package internal

import "math"

// Find where two segments meet, following the determinant form of Cramer's
// rule for the two infinite lines:
//
//	det = (x1-x2)(y3-y4) - (y1-y2)(x3-x4)
//
// A zero determinant means the lines are parallel or collinear (zero length
// segments land here too), and no intersection is reported, even when
// collinear segments overlap. Otherwise the line intersection is accepted
// only if it lies inside both segments' bounding boxes, inclusive, checked
// one axis at a time.
func FindIntersection(a, b *Segment) (Point, bool) {
	x1, y1, x2, y2 := a.Start.X, a.Start.Y, a.End.X, a.End.Y
	x3, y3, x4, y4 := b.Start.X, b.Start.Y, b.End.X, b.End.Y

	det := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if det == 0 {
		return Point{}, false
	}

	aCross := x1*y2 - y1*x2
	bCross := x3*y4 - y3*x4
	p := Point{
		X: (aCross*(x3-x4) - (x1-x2)*bCross) / det,
		Y: (aCross*(y3-y4) - (y1-y2)*bCross) / det,
	}

	if !a.boundsContain(p) || !b.boundsContain(p) {
		return Point{}, false
	}
	return p, true
}

func (s *Segment) boundsContain(p Point) bool {
	return between(p.X, s.Start.X, s.End.X) && between(p.Y, s.Start.Y, s.End.Y)
}

func between(v, a, b float64) bool {
	return math.Min(a, b) <= v && v <= math.Max(a, b)
}

func (s *Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}

// The endpoints ordered by x (then y), so that Left is where the sweep meets
// the segment first.
func (s *Segment) Normalized() (left, right Point) {
	if s.End.Less(s.Start) {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// Slope from the left endpoint to the right one. Vertical segments have
// infinite slope, which sorts them above every other segment through the
// same point. Zero length segments have zero slope.
func (s *Segment) Slope() float64 {
	left, right := s.Normalized()
	if left == right {
		return 0
	}
	if left.X == right.X {
		return math.Inf(1)
	}
	return (right.Y - left.Y) / (right.X - left.X)
}

// The y value of the segment's line at x. Vertical segments report their
// lower endpoint. Outside the segment's x range this extrapolates the line.
func (s *Segment) SolveForY(x float64) float64 {
	left, right := s.Normalized()
	if left.X == right.X {
		return left.Y
	}
	if x == left.X {
		return left.Y
	}
	if x == right.X {
		return right.Y
	}
	return left.Y + (x-left.X)*(right.Y-left.Y)/(right.X-left.X)
}
