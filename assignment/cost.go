package assignment

import (
	"github.com/desh2608/spyder/timeline"
)

// BuildCostMatrix enumerates reference and hypothesis speakers in order of
// first appearance, then accumulates overlap duration into a dense cost
// matrix via one joint sweep over the common refinement of ref and hyp,
// rather than iterating every (ref-region, hyp-region) pair independently.
// A speaker active in an overlap sub-region receives the full sub-region
// duration regardless of how many other speakers are also active there
// (duration is not divided among them).
//
// Complexity: O((|ref|+|hyp|)*(m+n)) where m, n are the ref/hyp speaker
// counts, dominated by the per-joint-span double loop over active speakers.
func BuildCostMatrix(ref, hyp timeline.Timeline, refSpeakers, hypSpeakers []string) CostMatrix {
	refIdx := indexOf(refSpeakers)
	hypIdx := indexOf(hypSpeakers)

	cm := NewCostMatrix(refSpeakers, hypSpeakers)
	for _, j := range timeline.CommonRefinement(ref, hyp) {
		d := j.End - j.Start
		if d <= 0 || len(j.Ref) == 0 || len(j.Hyp) == 0 {
			continue
		}
		for rSpk := range j.Ref {
			ri, ok := refIdx[rSpk]
			if !ok {
				continue
			}
			for hSpk := range j.Hyp {
				hi, ok := hypIdx[hSpk]
				if !ok {
					continue
				}
				cm.Add(ri, hi, d)
			}
		}
	}
	return cm
}

func indexOf(labels []string) map[string]int {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		idx[l] = i
	}
	return idx
}
