package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only. The drawings print to the terminal
// (iTerm only), and the tests call them when dbg.Enabled is set.

// Padding around the shapes so points on the bounds stay visible
const dbgDrawPadding = 40

type dbgBounds struct {
	minX, minY, maxX, maxY float64
}

func newDbgBounds() dbgBounds {
	return dbgBounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *dbgBounds) add(p Point) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

// Set up a black canvas with the origin at the bottom left, scaled and
// translated so the bounds fill it.
func (b dbgBounds) context(scale float64) *gg.Context {
	if math.IsInf(b.minX, 1) { // nothing was added
		b = dbgBounds{0, 0, 1, 1}
	}
	width := int(scale*(b.maxX-b.minX)) + dbgDrawPadding*2
	height := int(scale*(b.maxY-b.minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)
	return c
}

func dbgShow(c *gg.Context, path string) {
	if err := c.SavePNG(path); err != nil {
		return
	}
	imgcat.CatFile(path, os.Stdout)
}

// Draw an input point set with its hull outlined. The hull is reordered
// counterclockwise first, so x-sorted hulls draw correctly.
func dbgDrawHull(points, hull []Point, scale float64) {
	bounds := newDbgBounds()
	for _, p := range points {
		bounds.add(p)
	}
	c := bounds.context(scale)
	c.SetLineWidth(2 / scale)

	ordered := OrderCounterClockwise(hull)
	if len(ordered) > 0 {
		c.MoveTo(ordered[0].X, ordered[0].Y)
		for _, p := range ordered[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	c.SetRGB(1, 0, 0)
	for _, p := range hull {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}
	dbgShow(c, "/tmp/planar_hull.png")
}

// Draw segments, with the reported intersections as red dots.
func dbgDrawSegments(segments []Segment, intersections []Intersection, scale float64) {
	bounds := newDbgBounds()
	for _, s := range segments {
		bounds.add(s.Start)
		bounds.add(s.End)
	}
	c := bounds.context(scale)
	c.SetLineWidth(2 / scale)

	c.SetRGB(0, 1, 1)
	for _, s := range segments {
		c.DrawLine(s.Start.X, s.Start.Y, s.End.X, s.End.Y)
		c.Stroke()
	}
	c.SetRGB(1, 0, 0)
	for _, i := range intersections {
		c.DrawCircle(i.Point.X, i.Point.Y, 4/scale)
		c.Fill()
	}
	dbgShow(c, "/tmp/planar_segments.png")
}
