package timeline

import (
	"sort"

	"github.com/desh2608/spyder/turn"
)

// CollarIntervals builds the forbidden-interval set for a given collar
// (seconds) around every boundary — start and end — of every turn in
// refTurns. Overlapping forbidden intervals are merged. Every reference
// turn boundary contributes, including boundaries that sit inside an
// overlapping turn of another speaker.
//
// collar == 0 returns nil: no boundary is forgiven.
//
// Complexity: O(n log n).
func CollarIntervals(refTurns []turn.Turn, collar float64) []Interval {
	if collar <= 0 || len(refTurns) == 0 {
		return nil
	}
	raw := make([]Interval, 0, len(refTurns)*2)
	for _, t := range refTurns {
		raw = append(raw, Interval{Start: t.Start - collar, End: t.Start + collar})
		raw = append(raw, Interval{Start: t.End - collar, End: t.End + collar})
	}
	sort.Slice(raw, func(i, j int) bool { return raw[i].Start < raw[j].Start })

	merged := make([]Interval, 0, len(raw))
	merged = append(merged, raw[0])
	for _, iv := range raw[1:] {
		last := &merged[len(merged)-1]
		if iv.Start <= last.End {
			if iv.End > last.End {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Subtract removes every forbidden interval from t, splitting regions that
// straddle a forbidden interval's edge and dropping the portion that falls
// inside it. A forbidden interval's own boundary points are excluded from
// the result, not just its interior.
//
// Complexity: O(n + m): both t's regions and forbidden are sorted by Start,
// so a single shared cursor into forbidden suffices across all regions.
func (t Timeline) Subtract(forbidden []Interval) Timeline {
	if len(forbidden) == 0 {
		return t
	}
	var out []Region
	j := 0
	for _, r := range t.regions {
		for j < len(forbidden) && forbidden[j].End <= r.Start {
			j++
		}
		cur := r.Start
		for k := j; k < len(forbidden) && forbidden[k].Start < r.End; k++ {
			if forbidden[k].Start > cur {
				out = append(out, Region{Start: cur, End: forbidden[k].Start, Speakers: r.Speakers})
			}
			if forbidden[k].End > cur {
				cur = forbidden[k].End
			}
		}
		if cur < r.End {
			out = append(out, Region{Start: cur, End: r.End, Speakers: r.Speakers})
		}
	}
	sortRegions(out)
	return fromSorted(mergeAdjacent(out))
}
