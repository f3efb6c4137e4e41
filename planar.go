// Plane sweep segment intersection and convex hulls for Go.
//
// This package finds intersections among a set of 2D line segments with a
// left to right sweep, and computes the convex hull of a 2D point set with
// any of five algorithms: Graham scan, Jarvis march, brute force, quickhull
// and monotone chain.
package planar

import "github.com/osuushi/planar/internal"

type Point = internal.Point
type Segment = internal.Segment
type Intersection = internal.Intersection
type Algorithm = internal.Algorithm

const (
	GrahamScan    = internal.GrahamScan
	JarvisMarch   = internal.JarvisMarch
	BruteForce    = internal.BruteForce
	QuickHull     = internal.QuickHull
	MonotoneChain = internal.MonotoneChain
)

// Every algorithm, in a stable order.
var Algorithms = internal.Algorithms

// Find intersections between segments with a plane sweep. Only segments that
// become neighbors on the sweep line are tested, and collinear overlaps are
// never reported. The same pair can be reported more than once.
//
// Segment endpoints may be given in either order.
func DetectIntersections(segments []Segment) (result []Intersection, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.DetectIntersections(segments), nil
}

// Compute the convex hull of a point set with the given algorithm.
//
// Fewer than three points are returned unchanged. Graham scan, Jarvis march
// and monotone chain return the hull counterclockwise; brute force and
// quickhull return it sorted by x (see OrderCounterClockwise). Brute force
// also keeps points lying on a hull edge.
func ConvexHull(points []Point, algorithm Algorithm) (result []Point, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.ConvexHull(points, algorithm)
}

// Sort hull points counterclockwise around their centroid.
func OrderCounterClockwise(points []Point) []Point {
	return internal.OrderCounterClockwise(points)
}

func ParseAlgorithm(name string) (Algorithm, error) {
	return internal.ParseAlgorithm(name)
}
