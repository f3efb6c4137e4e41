package internal

// Brute force hull. An ordered pair (i, j) of distinct points is a hull edge
// when no other point makes a strict right turn from i to j. This is O(n³)
// and only meant for small inputs, or as a baseline to compare the other
// algorithms against.
//
// Points in the middle of a hull edge pass the test too, so unlike the other
// algorithms, the result includes collinear boundary points. The result is
// sorted by x, then y.
func BruteForceHull(points []Point) []Point {
	if hull, ok := trivialHull(points); ok {
		return hull
	}

	hullPoints := make(PointSet)
	for i, a := range points {
		for j, b := range points {
			if i == j || a == b {
				continue
			}
			if isHullEdge(points, a, b) {
				hullPoints.Add(a)
				hullPoints.Add(b)
			}
		}
	}

	hull := make([]Point, 0, len(hullPoints))
	for p := range hullPoints {
		hull = append(hull, p)
	}
	SortPoints(hull)
	return hull
}

func isHullEdge(points []Point, a, b Point) bool {
	for _, p := range points {
		if p == a || p == b {
			continue
		}
		if isRightTurn(a, b, p) {
			return false
		}
	}
	return true
}

func isRightTurn(a, b, c Point) bool {
	return Cross(a, b, c) < 0
}
