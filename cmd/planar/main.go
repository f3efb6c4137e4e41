package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/planar"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the library. Input on stdin is one point "x y" per line for hull,
// or one segment "x1 y1 x2 y2" per line for intersect. Blank lines and lines
// starting with # are skipped. Results are printed one per line.

var (
	app = kingpin.New("planar", "Convex hulls and segment intersections from stdin.")

	hullCommand   = app.Command("hull", "Print the convex hull of the points on stdin.")
	hullAlgorithm = hullCommand.Flag("algorithm", "Hull algorithm: graham, jarvis, bruteforce, quickhull or monotone.").
			Short('a').Default("graham").String()
	hullCCW = hullCommand.Flag("ccw", "Reorder the hull counterclockwise (for bruteforce and quickhull).").Bool()

	intersectCommand = app.Command("intersect", "Print intersections between the segments on stdin.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var err error
	switch command {
	case hullCommand.FullCommand():
		err = runHull(os.Stdin, os.Stdout)
	case intersectCommand.FullCommand():
		err = runIntersect(os.Stdin, os.Stdout)
	}
	app.FatalIfError(err, "")
}

func runHull(in io.Reader, out io.Writer) error {
	algorithm, err := planar.ParseAlgorithm(*hullAlgorithm)
	if err != nil {
		return err
	}

	var points []planar.Point
	err = readRecords(in, 2, func(v []float64) {
		points = append(points, planar.Point{X: v[0], Y: v[1]})
	})
	if err != nil {
		return err
	}

	hull, err := planar.ConvexHull(points, algorithm)
	if err != nil {
		return err
	}
	if *hullCCW {
		hull = planar.OrderCounterClockwise(hull)
	}
	for _, p := range hull {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}
	return nil
}

func runIntersect(in io.Reader, out io.Writer) error {
	var segments []planar.Segment
	err := readRecords(in, 4, func(v []float64) {
		segments = append(segments, planar.Segment{
			Start: planar.Point{X: v[0], Y: v[1]},
			End:   planar.Point{X: v[2], Y: v[3]},
		})
	})
	if err != nil {
		return err
	}

	intersections, err := planar.DetectIntersections(segments)
	if err != nil {
		return err
	}
	for _, i := range intersections {
		fmt.Fprintf(out, "%g %g (sweep x=%g)\n", i.Point.X, i.Point.Y, i.X)
	}
	return nil
}

// Scan lines of whitespace separated numbers, each with exactly n fields.
func readRecords(in io.Reader, n int, record func([]float64)) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != n {
			return errors.Errorf("line %d: expected %d numbers, got %d", lineNumber, n, len(fields))
		}
		values := make([]float64, n)
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return errors.Wrapf(err, "line %d", lineNumber)
			}
			values[i] = value
		}
		record(values)
	}
	return errors.Wrap(scanner.Err(), "reading stdin")
}
