package timeline

import (
	"fmt"
	"sort"
)

// Note is a played note span in seconds. Only the boundaries matter to the
// timeline; pitch and velocity stay with the caller.
type Note struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Event is a single boundary in the on/off stream. Delta is +1 for a note-on
// and -1 for a note-off.
type Event struct {
	Time  float64 `json:"time"`
	Delta int     `json:"delta"`
}

// Builder turns a note collection into a chronologically ordered on/off
// event stream suitable for a left-to-right sweep.
type Builder struct{}

// NewBuilder creates a new timeline builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build emits two events per note (start -> +1, end -> -1) and stable-sorts
// them by time. On equal times note-offs are ordered before note-ons, so a
// note ending exactly as another begins is never counted as an overlap.
// The returned stream always holds exactly 2*len(notes) events and a sweep
// over it never goes below zero active notes.
func (b *Builder) Build(notes []Note) ([]Event, error) {
	if len(notes) < 2 {
		return nil, fmt.Errorf("timeline: need at least 2 notes, got %d", len(notes))
	}

	events := make([]Event, 0, 2*len(notes))
	for _, n := range notes {
		events = append(events,
			Event{Time: n.Start, Delta: +1},
			Event{Time: n.End, Delta: -1},
		)
	}

	// Explicit comparator: time ascending, then delta ascending. The delta
	// tie-break is load-bearing, see Build doc.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		return events[i].Delta < events[j].Delta
	})

	return events, nil
}
