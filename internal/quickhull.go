package internal

// Quickhull. The lexicographically smallest and largest points split the
// rest into the points left of that diagonal and the points right of it.
// Each side is then worked from an explicit stack instead of recursion: for
// an edge and the points strictly outside it, the farthest point is on the
// hull, and the two new edges it makes take the points strictly outside
// them. Everything else is inside the triangle and drops out.
//
// The result is sorted by x, then y.
func Quickhull(points []Point) []Point {
	if hull, ok := trivialHull(points); ok {
		return hull
	}
	sorted := sortedUnique(points)
	first := sorted[0]
	last := sorted[len(sorted)-1]

	hull := []Point{first, last}
	stack := []quickhullTask{
		{first, last, outside(first, last, sorted)},
		{last, first, outside(last, first, sorted)},
	}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(task.points) == 0 {
			continue
		}

		farthest := task.points[0]
		farthestDistance := Cross(task.a, task.b, farthest)
		for _, p := range task.points[1:] {
			if d := Cross(task.a, task.b, p); d > farthestDistance {
				farthest = p
				farthestDistance = d
			}
		}
		hull = append(hull, farthest)

		stack = append(stack,
			quickhullTask{task.a, farthest, outside(task.a, farthest, task.points)},
			quickhullTask{farthest, task.b, outside(farthest, task.b, task.points)},
		)
	}

	SortPoints(hull)
	return hull
}

// An edge from a to b, and the candidate points strictly to its left
type quickhullTask struct {
	a, b   Point
	points []Point
}

func outside(a, b Point, points []Point) []Point {
	var result []Point
	for _, p := range points {
		if Cross(a, b, p) > 0 {
			result = append(result, p)
		}
	}
	return result
}
