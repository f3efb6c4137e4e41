package internal

import (
	"math"
	"sort"
)

const Tolerance = 1e-9

// Tolerance based equality. Only used by validity checks, never by the hull
// algorithms themselves.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Cross product of o->a and o->b. Positive when o, a, b make a left
// (counterclockwise) turn, negative for a right turn, zero when collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Lexicographic order: by X, then by Y.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) DistanceSquared(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return dx*dx + dy*dy
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func SortPoints(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		return points[i].Less(points[j])
	})
}

// Copy the points, sort them lexicographically, and drop exact duplicates.
func sortedUnique(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	SortPoints(sorted)

	unique := sorted[:0]
	for i, p := range sorted {
		if i > 0 && p == sorted[i-1] {
			continue
		}
		unique = append(unique, p)
	}
	return unique
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop panics on an empty stack. Callers always check Len first.
func (s *PointStack) Pop() Point {
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

// The top of the stack, and the point right under it
func (s *PointStack) Top() (under, top Point) {
	n := len(*s)
	return (*s)[n-2], (*s)[n-1]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Has(p Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Has(p) {
			return false
		}
	}
	return true
}

func NewPointSet(points []Point) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}
