package internal

// Andrew's monotone chain. Same turn rule as the Graham scan, but both
// chains are built in a single buffer: the lower chain left to right, then
// the upper chain right to left on top of it, never popping below the lower
// chain's end.
func Monotone(points []Point) []Point {
	if hull, ok := trivialHull(points); ok {
		return hull
	}
	sorted := sortedUnique(points)
	n := len(sorted)

	hull := make([]Point, 2*n)
	k := 0
	for i := 0; i < n; i++ {
		for k >= 2 && Cross(hull[k-2], hull[k-1], sorted[i]) <= 0 {
			k--
		}
		hull[k] = sorted[i]
		k++
	}

	lowerLen := k + 1
	for i := n - 2; i >= 0; i-- {
		for k >= lowerLen && Cross(hull[k-2], hull[k-1], sorted[i]) <= 0 {
			k--
		}
		hull[k] = sorted[i]
		k++
	}

	// The last point is the first point again
	return hull[:k-1]
}
