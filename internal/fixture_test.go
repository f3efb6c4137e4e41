package internal

import (
	"embed"
	"log"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into point sets and segment sets. This is
// not a full (or even correct) svg parser. Every <circle> center is a point,
// and every <line> is a segment. If anything goes wrong, it dies.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixtureRoot(name string) *svgparser.Element {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rootEl
}

func LoadPointFixture(name string) []Point {
	circles := loadFixtureRoot(name).FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		points = append(points, Point{
			X: parseAttribute(name, circle, "cx"),
			Y: parseAttribute(name, circle, "cy"),
		})
	}
	return points
}

func LoadSegmentFixture(name string) []Segment {
	lines := loadFixtureRoot(name).FindAll("line")
	if len(lines) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}
	segments := make([]Segment, 0, len(lines))
	for _, line := range lines {
		segments = append(segments, Segment{
			Start: Point{parseAttribute(name, line, "x1"), parseAttribute(name, line, "y1")},
			End:   Point{parseAttribute(name, line, "x2"), parseAttribute(name, line, "y2")},
		})
	}
	return segments
}

func parseAttribute(fixture string, el *svgparser.Element, attribute string) float64 {
	value, err := strconv.ParseFloat(el.Attributes[attribute], 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q in fixture %q: %v", attribute, el.Attributes[attribute], fixture, err)
	}
	return value
}

// Some ad hoc fixtures

func UnitSquareWithCenter() []Point {
	return []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0.5, 0.5}}
}

// Uniformly scattered points. Collinear triples are practically impossible.
func RandomCloud(seed int64, n int) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: r.Float64() * 400, Y: r.Float64() * 400}
	}
	return points
}

// Points on a small integer grid, so there are plenty of duplicates and
// collinear points, all with exact arithmetic.
func RandomLattice(seed int64, n, size int) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: float64(r.Intn(size)), Y: float64(r.Intn(size))}
	}
	return points
}

func RandomSegments(seed int64, n int) []Segment {
	r := rand.New(rand.NewSource(seed))
	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{
			Start: Point{X: r.Float64() * 100, Y: r.Float64() * 100},
			End:   Point{X: r.Float64() * 100, Y: r.Float64() * 100},
		}
	}
	return segments
}

// Segments with integer endpoints on a size x size grid. Shared endpoints,
// vertical and zero-length segments, and several segments crossing at one
// point are all common.
func RandomGridSegments(seed int64, n, size int) []Segment {
	r := rand.New(rand.NewSource(seed))
	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{
			Start: Point{X: float64(r.Intn(size)), Y: float64(r.Intn(size))},
			End:   Point{X: float64(r.Intn(size)), Y: float64(r.Intn(size))},
		}
	}
	return segments
}

// Half the points lie on y = 3x + 0.1 (as nearly as floats allow), the rest
// are scattered below it, so the line is a hull edge. Turn tests between the
// line's points come out with arbitrary tiny signs.
func NearCollinearCloud(seed int64, n int) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		x := r.Float64() * 10
		if i%2 == 0 {
			points[i] = Point{X: x, Y: 3*x + 0.1}
		} else {
			points[i] = Point{X: x, Y: r.Float64() * (3*x + 0.1)}
		}
	}
	return points
}
