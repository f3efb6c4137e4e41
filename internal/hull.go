package internal

import (
	"strings"

	"github.com/pkg/errors"
)

// Five ways to compute a convex hull. They all return the same set of
// vertices for the same input, with one exception: brute force keeps points
// lying on a hull edge, where the others drop them.
//
// Graham scan, Jarvis march and monotone chain give the hull
// counterclockwise. Brute force and quickhull give it sorted by x; use
// OrderCounterClockwise to trace those as a polygon.

type Algorithm int

const (
	GrahamScan Algorithm = iota
	JarvisMarch
	BruteForce
	QuickHull
	MonotoneChain
)

var Algorithms = []Algorithm{GrahamScan, JarvisMarch, BruteForce, QuickHull, MonotoneChain}

var algorithmNames = map[Algorithm]string{
	GrahamScan:    "graham",
	JarvisMarch:   "jarvis",
	BruteForce:    "bruteforce",
	QuickHull:     "quickhull",
	MonotoneChain: "monotone",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for algorithm, algorithmName := range algorithmNames {
		if algorithmName == name {
			return algorithm, nil
		}
	}
	return 0, errors.Errorf("unknown convex hull algorithm %q", name)
}

type hullFunc func([]Point) []Point

func (a Algorithm) implementation() (hullFunc, bool) {
	switch a {
	case GrahamScan:
		return Graham, true
	case JarvisMarch:
		return Jarvis, true
	case BruteForce:
		return BruteForceHull, true
	case QuickHull:
		return Quickhull, true
	case MonotoneChain:
		return Monotone, true
	}
	return nil, false
}

func ConvexHull(points []Point, algorithm Algorithm) ([]Point, error) {
	hull, ok := algorithm.implementation()
	if !ok {
		return nil, errors.Errorf("unknown convex hull algorithm %d", int(algorithm))
	}
	return hull(points), nil
}

// Inputs with fewer than three points come back as they are. Larger inputs
// with fewer than three distinct points come back deduplicated and sorted,
// since there's no polygon to build. Otherwise ok is false and the algorithm
// should run.
func trivialHull(points []Point) (hull []Point, ok bool) {
	if len(points) < 3 {
		hull = make([]Point, len(points))
		copy(hull, points)
		return hull, true
	}
	unique := sortedUnique(points)
	if len(unique) < 3 {
		return unique, true
	}
	return nil, false
}
