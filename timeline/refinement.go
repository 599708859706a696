package timeline

import "sort"

// Joint is one span of the common refinement of two Timelines: the
// coarsest partition of time finer than both inputs. Ref and Hyp carry
// whichever speaker set (possibly empty) is active in each source timeline
// over [Start, End).
type Joint struct {
	Start float64
	End   float64
	Ref   map[string]struct{}
	Hyp   map[string]struct{}
}

// CommonRefinement merges ref and hyp into their joint partition: the
// boundary points of both are collected, and each resulting span is tagged
// with the (possibly empty) active speaker set from each side. Both the
// cost-matrix builder (package assignment) and the scorer (package score)
// walk this structure, so it lives here once.
//
// Complexity: O((n+m) log(n+m)) for the boundary sort, O(n+m) for the sweep.
func CommonRefinement(ref, hyp Timeline) []Joint {
	bounds := make([]float64, 0, 2*(len(ref.regions)+len(hyp.regions)))
	for _, r := range ref.regions {
		bounds = append(bounds, r.Start, r.End)
	}
	for _, r := range hyp.regions {
		bounds = append(bounds, r.Start, r.End)
	}
	if len(bounds) == 0 {
		return nil
	}
	sort.Float64s(bounds)
	uniq := bounds[:1]
	for _, b := range bounds[1:] {
		if b != uniq[len(uniq)-1] {
			uniq = append(uniq, b)
		}
	}

	out := make([]Joint, 0, len(uniq)-1)
	ri, hi := 0, 0
	for i := 0; i+1 < len(uniq); i++ {
		start, end := uniq[i], uniq[i+1]
		mid := (start + end) / 2

		for ri < len(ref.regions) && ref.regions[ri].End <= mid {
			ri++
		}
		var refSet map[string]struct{}
		if ri < len(ref.regions) && ref.regions[ri].Start <= mid && mid < ref.regions[ri].End {
			refSet = ref.regions[ri].Speakers
		}

		for hi < len(hyp.regions) && hyp.regions[hi].End <= mid {
			hi++
		}
		var hypSet map[string]struct{}
		if hi < len(hyp.regions) && hyp.regions[hi].Start <= mid && mid < hyp.regions[hi].End {
			hypSet = hyp.regions[hi].Speakers
		}

		if len(refSet) == 0 && len(hypSet) == 0 {
			continue
		}
		out = append(out, Joint{Start: start, End: end, Ref: refSet, Hyp: hypSet})
	}
	return out
}
