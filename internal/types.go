package internal

// Points are values. Equality is exact everywhere except where a function
// says it uses Tolerance, since hull agreement depends on returning the
// caller's coordinates untouched.
type Point struct {
	X float64
	Y float64
}

// A segment is the flat (x1, y1, x2, y2) tuple given by the caller. Nothing
// requires Start to be left of End; the sweep normalizes when it builds
// events.
type Segment struct {
	Start Point
	End   Point
}

// An intersection found during the sweep. X is the sweep position at which
// the pair became adjacent, not the x of the intersection point.
type Intersection struct {
	X     float64
	Point Point
}

type Polygon struct {
	Points []Point
}

type PointStack []Point

type PointSet map[Point]struct{}
