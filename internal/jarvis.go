package internal

// Jarvis march (gift wrapping). Starting from the leftmost point, repeatedly
// wrap to the point that has no other point strictly to its right, which
// walks the hull counterclockwise. Among collinear candidates the farthest
// wins, so points in the middle of an edge are skipped. O(n·h).
//
// Vertices already wrapped are never candidates again, except the start.
// With near-collinear float input the turn test is not transitive, and
// without that rule the wrap can cycle without ever returning to the start.
func Jarvis(points []Point) []Point {
	if hull, ok := trivialHull(points); ok {
		return hull
	}
	unique := sortedUnique(points)

	// sortedUnique puts the leftmost (then lowest) point first
	start := unique[0]
	hull := []Point{}
	wrapped := NewPointSet(nil)
	current := start
	for {
		hull = append(hull, current)
		wrapped.Add(current)
		// Each step wraps a new vertex or closes, so this can't happen
		if len(hull) > len(unique) {
			fatalf("jarvis march did not close after %d points", len(hull))
		}

		next := current
		for _, candidate := range unique {
			if candidate == current || (candidate != start && wrapped.Has(candidate)) {
				continue
			}
			if next == current {
				next = candidate
				continue
			}
			turn := Cross(current, next, candidate)
			if turn < 0 || (turn == 0 && current.DistanceSquared(candidate) > current.DistanceSquared(next)) {
				next = candidate
			}
		}

		current = next
		if current == start {
			break
		}
	}
	return hull
}
