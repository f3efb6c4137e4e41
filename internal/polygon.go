package internal

import (
	"math"
	"sort"
)

// Twice the signed area (shoelace). Positive for counterclockwise polygons.
func (poly Polygon) doubleSignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum
}

func (poly Polygon) SignedArea() float64 {
	return poly.doubleSignedArea() / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.doubleSignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.doubleSignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Inclusive containment for a convex polygon in either winding. Points on
// an edge (within Tolerance, scaled by the edge length) count as inside.
// Flat polygons (two points, or all points collinear) contain exactly the
// points on their segments.
func (poly Polygon) ContainsConvex(p Point) bool {
	switch len(poly.Points) {
	case 0:
		return false
	case 1:
		return poly.Points[0] == p
	}

	area := poly.doubleSignedArea()
	flat := len(poly.Points) == 2 || area == 0
	sign := 1.0
	if area < 0 {
		sign = -1
	}
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if a == b {
			continue
		}
		slack := Tolerance * math.Sqrt(a.DistanceSquared(b))
		c := sign * Cross(a, b, p)
		if flat && math.Abs(c) > slack {
			return false
		}
		if !flat && c < -slack {
			return false
		}
	}
	if flat {
		return poly.boundsContain(p)
	}
	return true
}

func (poly Polygon) boundsContain(p Point) bool {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, q := range poly.Points {
		minX = math.Min(minX, q.X)
		minY = math.Min(minY, q.Y)
		maxX = math.Max(maxX, q.X)
		maxY = math.Max(maxY, q.Y)
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func (poly Polygon) Centroid() Point {
	var c Point
	if len(poly.Points) == 0 {
		return c
	}
	for _, p := range poly.Points {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(poly.Points))
	return Point{c.X / n, c.Y / n}
}

// Sort the points counterclockwise by angle around their centroid. Brute
// force and quickhull give their hulls sorted by x; this turns such a hull
// back into a boundary traversal. The input is not modified.
func OrderCounterClockwise(points []Point) []Point {
	result := make([]Point, len(points))
	copy(result, points)
	if len(result) < 3 {
		return result
	}
	center := Polygon{result}.Centroid()
	sort.SliceStable(result, func(i, j int) bool {
		ai := math.Atan2(result[i].Y-center.Y, result[i].X-center.X)
		aj := math.Atan2(result[j].Y-center.Y, result[j].X-center.X)
		if ai == aj {
			return result[i].DistanceSquared(center) < result[j].DistanceSquared(center)
		}
		return ai < aj
	})
	return result
}
