package internal

import (
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar/internal/dbg"
)

// Plane sweep for segment intersections. Every segment becomes a left and a
// right event. A vertical line sweeps the events left to right while the
// status holds the segments it currently crosses. Intersections are only
// tested between segments that become adjacent in the status: a new segment
// against its neighbors when it's inserted, and the two neighbors of a
// segment against each other when it's removed.
//
// Crossings are not turned into events, so this reports each intersecting
// pair that is ever adjacent at an insertion or removal. A pair can be found
// twice; results are not deduplicated.

type EventKind int

const (
	LeftEvent EventKind = iota
	RightEvent
)

func (k EventKind) String() string {
	switch k {
	case LeftEvent:
		return "left"
	case RightEvent:
		return "right"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	X       float64
	Segment *Segment
	Kind    EventKind
	active  *activeSegment
}

func (e Event) String() string {
	return fmt.Sprintf("%s event at x=%g for %s", e.Kind, e.X, e.active)
}

// Colored variant for terminal traces only.
func (e Event) traceString() string {
	kind := aurora.Green(e.Kind.String())
	if e.Kind == RightEvent {
		kind = aurora.Red(e.Kind.String())
	}
	return fmt.Sprintf("%s event at x=%g for %s", kind, e.X, e.active)
}

// Build the sorted event list. Endpoints are normalized so that the left
// event is always at the smaller x, whichever order the caller gave them in.
// Events are ordered by x, then left before right (so segments touching at a
// shared x are active together), then by input order.
func BuildEvents(segments []Segment) []Event {
	events := make([]Event, 0, 2*len(segments))
	for i := range segments {
		segment := &segments[i]
		active := newActiveSegment(segment, i)
		left, right := segment.Normalized()
		events = append(events,
			Event{X: left.X, Segment: segment, Kind: LeftEvent, active: active},
			Event{X: right.X, Segment: segment, Kind: RightEvent, active: active},
		)
	}

	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.active.index < b.active.index
	})
	return events
}

// Find intersections between segments with a left to right plane sweep. The
// segments are not modified, and the results refer to copies of their
// coordinates.
func DetectIntersections(segments []Segment) []Intersection {
	return sweep(segments, nil)
}

// The sweep itself. If afterEvent is non-nil, it sees the status after each
// event has been handled.
func sweep(segments []Segment, afterEvent func(Event, *status)) []Intersection {
	// Work on a copy so the status can hold stable pointers
	owned := make([]Segment, len(segments))
	copy(owned, segments)

	events := BuildEvents(owned)
	status := newStatus()
	intersections := []Intersection{}

	report := func(x float64, a, b *activeSegment) {
		if a == nil || b == nil {
			return
		}
		if p, ok := FindIntersection(a.Segment, b.Segment); ok {
			dbg.Printf("  %s crosses %s at (%g, %g)", a, b, p.X, p.Y)
			intersections = append(intersections, Intersection{X: x, Point: p})
		}
	}

	for _, event := range events {
		if dbg.Enabled {
			dbg.Printf("%s (%d active)", event.traceString(), status.Len())
		}
		status.MoveTo(event.X)
		switch event.Kind {
		case LeftEvent:
			status.Insert(event.active)
			below, above := status.Neighbors(event.active)
			report(event.X, below, event.active)
			report(event.X, event.active, above)
		case RightEvent:
			below, above := status.Remove(event.active)
			report(event.X, below, above)
		}
		if afterEvent != nil {
			afterEvent(event, status)
		}
	}

	if status.Len() != 0 {
		fatalf("sweep finished with %d active segments", status.Len())
	}
	return intersections
}
