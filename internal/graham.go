package internal

// Graham scan over points sorted by x, building the lower and upper halves of
// the hull on a stack. A point is popped while it fails to make a strict left
// turn, so collinear boundary points are dropped. The result is
// counterclockwise, starting from the lowest point lexicographically.
func Graham(points []Point) []Point {
	if hull, ok := trivialHull(points); ok {
		return hull
	}
	sorted := sortedUnique(points)

	lower := scanChain(sorted, 1)
	upper := scanChain(sorted, -1)

	// The last point of each chain is the first point of the other
	hull := make([]Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// Walk the sorted points forward (step 1) or backward (step -1), keeping
// only left turns.
func scanChain(sorted []Point, step int) PointStack {
	chain := make(PointStack, 0, len(sorted))
	i := 0
	if step < 0 {
		i = len(sorted) - 1
	}
	for ; i >= 0 && i < len(sorted); i += step {
		p := sorted[i]
		for chain.Len() >= 2 {
			under, top := chain.Top()
			if Cross(under, top, p) > 0 {
				break
			}
			chain.Pop()
		}
		chain.Push(p)
	}
	return chain
}
