package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a hull is valid. The rules are:
// 1. The hull has no duplicate points.
// 2. Every hull point is one of the input points.
// 3. Traced counterclockwise, the hull is convex: no right turns.
// 4. Every input point is inside or on the hull.
func AssertValidHull(t *testing.T, points []Point, hull []Point) {
	t.Helper()
	hullSet := NewPointSet(hull)
	require.Len(t, hullSet, len(hull), "hull has duplicate points: %v", hull)

	inputSet := NewPointSet(points)
	for _, p := range hull {
		require.True(t, inputSet.Has(p), "hull point %v is not an input point", p)
	}

	ordered := Polygon{OrderCounterClockwise(hull)}
	if len(ordered.Points) >= 3 && ordered.Area() > 0 {
		for i, a := range ordered.Points {
			b := ordered.Points[CircularIndex(i+1, len(ordered.Points))]
			c := ordered.Points[CircularIndex(i+2, len(ordered.Points))]
			require.GreaterOrEqual(t, Cross(a, b, c), -Tolerance, "hull turns right at %v", b)
		}
	}

	for _, p := range points {
		assert.True(t, ordered.ContainsConvex(p), "point %v is outside the hull %v", p, hull)
	}
}

// Assert that a hull is traced counterclockwise as returned.
func AssertCounterClockwise(t *testing.T, hull []Point) {
	t.Helper()
	if len(hull) < 3 {
		return
	}
	assert.True(t, Polygon{hull}.IsCCW(), "hull is not counterclockwise: %v", hull)
}
