// Package timeline turns overlapping labeled intervals (turn.TurnList) into
// a canonical partition of time: a sorted, disjoint sequence of Regions,
// each tagged with the set of speakers active during it.
//
// The pipeline a caller runs, in order, is:
//
//	Build            TurnList -> Timeline
//	IntersectUEM     restrict to scoring domain
//	Subtract         forgive boundary neighborhoods (collar)
//	Filter           restrict to a region class
//
// Every step returns a new Timeline; none mutate their input.
package timeline

import (
	"sort"
)

// Region is a maximal span of time during which the active speaker set is
// constant. Speakers may be empty (silence).
type Region struct {
	Start    float64
	End      float64
	Speakers map[string]struct{}
}

// Duration returns End-Start.
func (r Region) Duration() float64 { return r.End - r.Start }

// HasSpeaker reports whether spk is active in r.
func (r Region) HasSpeaker(spk string) bool {
	_, ok := r.Speakers[spk]
	return ok
}

// Kind classifies a Region by its active-speaker count, for Filter.
type Kind int

const (
	// All matches every region unconditionally.
	All Kind = iota
	// Single matches regions with exactly one active speaker.
	Single
	// Overlap matches regions with two or more active speakers.
	Overlap
	// NonOverlap matches regions with zero or one active speaker.
	NonOverlap
)

// ParseKind maps a region-filter name (as accepted by the CLI's --regions
// flag) to a Kind. Unknown names return ok=false so callers can surface
// ErrInvalidArgument with their own context.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "all":
		return All, true
	case "single":
		return Single, true
	case "overlap":
		return Overlap, true
	case "nonoverlap":
		return NonOverlap, true
	default:
		return All, false
	}
}

func (k Kind) String() string {
	switch k {
	case Single:
		return "single"
	case Overlap:
		return "overlap"
	case NonOverlap:
		return "nonoverlap"
	default:
		return "all"
	}
}

// matches reports whether a region with the given speaker count belongs to
// this Kind's class.
func (k Kind) matches(nSpeakers int) bool {
	switch k {
	case Single:
		return nSpeakers == 1
	case Overlap:
		return nSpeakers >= 2
	case NonOverlap:
		return nSpeakers <= 1
	default:
		return true
	}
}

// Timeline is an ordered, non-overlapping sequence of Regions. Invariants:
// sorted by Start, pairwise disjoint, and adjacent regions never carry an
// equal speaker set (such pairs are merged by every constructor in this
// package).
type Timeline struct {
	regions []Region
}

// Regions returns a defensive copy of the underlying region slice.
func (t Timeline) Regions() []Region {
	cp := make([]Region, len(t.regions))
	copy(cp, t.regions)
	return cp
}

// Len reports the number of regions.
func (t Timeline) Len() int { return len(t.regions) }

// TotalDuration sums Duration() over every region.
func (t Timeline) TotalDuration() float64 {
	var sum float64
	for _, r := range t.regions {
		sum += r.Duration()
	}
	return sum
}

// fromSorted wraps an already-sorted, already-merged region slice. Internal
// constructors (Build, IntersectUEM, Subtract, Filter) are the only
// callers; it performs no validation of its own.
func fromSorted(regions []Region) Timeline {
	return Timeline{regions: regions}
}

// mergeAdjacent collapses consecutive regions with identical speaker sets
// and drops zero-duration regions, re-establishing the Timeline invariant
// after a construction or filtering pass.
//
// Complexity: O(n * s) where s is the average speaker-set size (set
// equality check).
func mergeAdjacent(regions []Region) []Region {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.Start >= r.End {
			continue
		}
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.End == r.Start && sameSet(last.Speakers, r.Speakers) {
				last.End = r.End
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// sortRegions orders regions by Start, breaking ties by End, which is the
// order every builder in this package already produces but is re-asserted
// defensively before merge passes.
func sortRegions(regions []Region) {
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Start != regions[j].Start {
			return regions[i].Start < regions[j].Start
		}
		return regions[i].End < regions[j].End
	})
}
