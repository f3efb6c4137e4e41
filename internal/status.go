package internal

import (
	"fmt"

	"github.com/google/btree"
	"github.com/osuushi/planar/internal/dbg"
)

// The sweep status: every segment whose left event has been handled and
// whose right event hasn't, ordered bottom to top by where it crosses the
// sweep line.
//
// The ordering is evaluated at the current sweep x, so it changes as the
// sweep advances. Between two events the relative order of active segments
// only changes where they cross, and crossings are not events here, so the
// tree can go stale. The tree must never be searched or mutated while stale,
// so every move of the sweep line checks the stored order at the new x and
// rebuilds the tree when any adjacent pair is out of order.

// Low degree, since the status rarely holds more than a few dozen segments.
const statusDegree = 8

type activeSegment struct {
	*Segment
	index int // input order, the final tiebreak
	slope float64
}

func newActiveSegment(segment *Segment, index int) *activeSegment {
	return &activeSegment{segment, index, segment.Slope()}
}

func (a *activeSegment) String() string {
	left, right := a.Normalized()
	return fmt.Sprintf("%s#%d (%g, %g)-(%g, %g)", dbg.Name(a.Segment), a.index, left.X, left.Y, right.X, right.Y)
}

type status struct {
	x        float64
	tree     *btree.BTreeG[*activeSegment]
	rebuilds int
}

func newStatus() *status {
	s := &status{}
	s.tree = btree.NewG[*activeSegment](statusDegree, s.less)
	return s
}

// Order by y at the sweep line. Segments meeting at the sweep line are
// ordered by slope, which is their order just right of it.
func (s *status) less(a, b *activeSegment) bool {
	ya := a.SolveForY(s.x)
	yb := b.SolveForY(s.x)
	if ya != yb {
		return ya < yb
	}
	if a.slope != b.slope {
		return a.slope < b.slope
	}
	return a.index < b.index
}

func (s *status) Len() int {
	return s.tree.Len()
}

// Move the sweep line. Afterwards the tree is ordered at x.
func (s *status) MoveTo(x float64) {
	if x == s.x {
		return
	}
	s.x = x
	if !s.ordered() {
		s.rebuild()
	}
}

// Whether the stored order still holds at the current x.
func (s *status) ordered() bool {
	ok := true
	var prev *activeSegment
	s.tree.Ascend(func(item *activeSegment) bool {
		if prev != nil && !s.less(prev, item) {
			ok = false
			return false
		}
		prev = item
		return true
	})
	return ok
}

func (s *status) Insert(a *activeSegment) {
	if _, replaced := s.tree.ReplaceOrInsert(a); replaced {
		fatalf("segment %s inserted into the sweep status twice", a)
	}
}

// Remove a segment, returning its neighbors from just before removal.
func (s *status) Remove(a *activeSegment) (below, above *activeSegment) {
	below, above = s.Neighbors(a)
	if _, ok := s.tree.Delete(a); !ok {
		fatalf("segment %s could not be removed from the sweep status", a)
	}
	return below, above
}

// Find the segments directly below and above a segment in the status. Either
// may be nil.
func (s *status) Neighbors(a *activeSegment) (below, above *activeSegment) {
	if found, ok := s.tree.Get(a); !ok || found != a {
		fatalf("segment %s is not active at x=%g", a, s.x)
	}
	s.tree.DescendLessOrEqual(a, func(item *activeSegment) bool {
		if item == a {
			return true
		}
		below = item
		return false
	})
	s.tree.AscendGreaterOrEqual(a, func(item *activeSegment) bool {
		if item == a {
			return true
		}
		above = item
		return false
	})
	return below, above
}

// Reinsert everything at the current sweep x. Items are collected by walking
// the nodes, not by searching, so a stale tree gives them all up.
func (s *status) rebuild() {
	items := s.Segments()
	s.tree.Clear(false)
	for _, item := range items {
		s.tree.ReplaceOrInsert(item)
	}
	s.rebuilds++
	dbg.Printf("rebuilt sweep status at x=%g (%d segments)", s.x, len(items))
}

// Bottom to top, for tests and traces.
func (s *status) Segments() []*activeSegment {
	var result []*activeSegment
	s.tree.Ascend(func(item *activeSegment) bool {
		result = append(result, item)
		return true
	})
	return result
}
