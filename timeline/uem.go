package timeline

import "sort"

// UEM is a sorted list of disjoint (start, end) intervals: the scoring
// domain. Construct via NewUEM, which sorts and merges overlapping input
// intervals rather than rejecting them, since UEM files in practice are
// hand-edited and occasionally contain touching/overlapping spans.
type UEM struct {
	intervals []Interval
}

// Interval is a closed time span [Start, End].
type Interval struct {
	Start float64
	End   float64
}

// NewUEM builds a UEM from possibly-unsorted, possibly-overlapping
// intervals, merging any that touch or overlap.
//
// Complexity: O(n log n).
func NewUEM(intervals ...Interval) UEM {
	if len(intervals) == 0 {
		return UEM{}
	}
	cp := make([]Interval, len(intervals))
	copy(cp, intervals)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Start < cp[j].Start })

	merged := make([]Interval, 0, len(cp))
	merged = append(merged, cp[0])
	for _, iv := range cp[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return UEM{intervals: merged}
}

// Intervals returns a defensive copy of the merged, sorted intervals.
func (u UEM) Intervals() []Interval {
	cp := make([]Interval, len(u.intervals))
	copy(cp, u.intervals)
	return cp
}

// Empty reports whether the UEM carries no scoring domain at all.
func (u UEM) Empty() bool { return len(u.intervals) == 0 }

// TotalDuration sums End-Start over every interval.
func (u UEM) TotalDuration() float64 {
	var sum float64
	for _, iv := range u.intervals {
		sum += iv.End - iv.Start
	}
	return sum
}

// Synthesize builds the default UEM when none is supplied: a single
// interval spanning [min-start, max-end] over the union of ref and hyp.
func Synthesize(refStart, refEnd float64, refOK bool, hypStart, hypEnd float64, hypOK bool) UEM {
	if !refOK && !hypOK {
		return UEM{}
	}
	if !refOK {
		return NewUEM(Interval{Start: hypStart, End: hypEnd})
	}
	if !hypOK {
		return NewUEM(Interval{Start: refStart, End: refEnd})
	}
	start := refStart
	if hypStart < start {
		start = hypStart
	}
	end := refEnd
	if hypEnd > end {
		end = hypEnd
	}
	return NewUEM(Interval{Start: start, End: end})
}

// IntersectUEM restricts t to the scoring domain u: every region is
// clipped against every overlapping UEM interval, emitting a sub-region
// with the same Speakers set; portions outside u are discarded. Adjacent
// equal-label regions are re-merged afterward.
//
// Complexity: O(n + m) via a merge-style sweep over t's regions and u's
// intervals, both already sorted by Start.
func (t Timeline) IntersectUEM(u UEM) Timeline {
	if u.Empty() || t.Len() == 0 {
		return fromSorted(nil)
	}

	var out []Region
	j := 0
	for _, r := range t.regions {
		// Advance j past UEM intervals that end before r starts.
		for j < len(u.intervals) && u.intervals[j].End <= r.Start {
			j++
		}
		k := j
		for k < len(u.intervals) && u.intervals[k].Start < r.End {
			start := r.Start
			if u.intervals[k].Start > start {
				start = u.intervals[k].Start
			}
			end := r.End
			if u.intervals[k].End < end {
				end = u.intervals[k].End
			}
			if start < end {
				out = append(out, Region{Start: start, End: end, Speakers: r.Speakers})
			}
			k++
		}
	}
	sortRegions(out)
	return fromSorted(mergeAdjacent(out))
}
