package timeline

// Filter selects the sub-regions of refTimeline whose speaker-count class
// matches kind, then restricts both refTimeline and hypTimeline to the
// union of those spans. The class is always evaluated against the
// reference regions, never the hypothesis.
//
// Complexity: O(n + m).
func Filter(kind Kind, refTimeline, hypTimeline Timeline) (Timeline, Timeline) {
	if kind == All {
		return refTimeline, hypTimeline
	}

	var allowed []Interval
	for _, r := range refTimeline.regions {
		if kind.matches(len(r.Speakers)) {
			allowed = append(allowed, Interval{Start: r.Start, End: r.End})
		}
	}
	allowedUEM := UEM{intervals: allowed}

	return refTimeline.IntersectUEM(allowedUEM), hypTimeline.IntersectUEM(allowedUEM)
}
