package timeline

import (
	"sort"

	"github.com/desh2608/spyder/turn"
)

// event is one endpoint of a turn: a +1 (open) at Start or a -1 (close) at
// End, carrying the speaker it belongs to.
type event struct {
	t       float64
	delta   int
	speaker string
}

// Build converts a turn.TurnList-shaped slice of turns into a Timeline
// whose regions partition [min-start, max-end] and whose Speakers sets
// enumerate exactly the turns active at each point.
//
// Algorithm: collect every turn endpoint as an event, sort primarily by
// time and, at equal times, closings before openings (so a zero-length gap
// between touching turns never emits a spurious region). Sweep left to
// right maintaining a speaker -> active-cover-count map; between
// consecutive distinct event times, emit a Region carrying the set of
// speakers whose count is currently positive. Adjacent regions with
// identical speaker sets are merged.
//
// An empty input produces an empty Timeline. Build never itself rejects a
// Turn; turn.New/turn.NewTurnList is responsible for Turn-level validation
// before turns reach this function.
//
// Complexity: O(n log n) for the event sort, O(n) for the sweep.
func Build(turns []turn.Turn) Timeline {
	if len(turns) == 0 {
		return fromSorted(nil)
	}

	events := make([]event, 0, len(turns)*2)
	for _, t := range turns {
		events = append(events, event{t: t.Start, delta: +1, speaker: t.Speaker})
		events = append(events, event{t: t.End, delta: -1, speaker: t.Speaker})
	}

	// Closings (delta -1) sort before openings (delta +1) at equal times,
	// so [0,1],[1,2] never produces a zero-length region at t=1.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].t != events[j].t {
			return events[i].t < events[j].t
		}
		return events[i].delta < events[j].delta
	})

	active := make(map[string]int)
	regions := make([]Region, 0, len(events))

	i := 0
	for i < len(events) {
		cur := events[i].t
		// Apply every event at this instant before emitting the next span.
		for i < len(events) && events[i].t == cur {
			active[events[i].speaker] += events[i].delta
			if active[events[i].speaker] <= 0 {
				delete(active, events[i].speaker)
			}
			i++
		}
		if i >= len(events) {
			break
		}
		next := events[i].t
		if next > cur {
			regions = append(regions, Region{Start: cur, End: next, Speakers: snapshot(active)})
		}
	}

	return fromSorted(mergeAdjacent(regions))
}

// BuildFromList is sugar for Build(tl.Turns()).
func BuildFromList(tl turn.TurnList) Timeline {
	return Build(tl.Turns())
}

func snapshot(active map[string]int) map[string]struct{} {
	out := make(map[string]struct{}, len(active))
	for spk := range active {
		out[spk] = struct{}{}
	}
	return out
}
