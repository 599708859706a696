package spyder

import (
	"github.com/desh2608/spyder/assignment"
	"github.com/desh2608/spyder/score"
	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
)

// ComputeDER computes the Diarization Error Rate between ref and hyp: how
// well hyp reproduces ref, decomposed into missed speech, false alarm, and
// speaker confusion. It is a pure function of its inputs: single-threaded,
// synchronous, no shared mutable state.
//
// Pipeline: turn.TurnList -> timeline.Build (for ref and hyp independently)
// -> IntersectUEM -> Subtract (CollarIntervals) -> Filter -> assignment.BuildCostMatrix +
// Solve -> score.Score.
//
// Complexity: O((|ref|+|hyp|) log(|ref|+|hyp|) + k^3) where k is the larger
// of the two speaker counts (dominated by the Hungarian solve).
func ComputeDER(ref, hyp turn.TurnList, opts ...Option) (score.Metrics, error) {
	cfg := newConfig(opts...)
	if cfg.collar < 0 {
		return score.Metrics{}, ErrInvalidArgument
	}
	if cfg.regions < All || cfg.regions > NonOverlap {
		return score.Metrics{}, ErrInvalidArgument
	}

	uem := cfg.uem
	if uem == nil {
		rStart, rEnd, rOK := ref.Bounds()
		hStart, hEnd, hOK := hyp.Bounds()
		synthesized := timeline.Synthesize(rStart, rEnd, rOK, hStart, hEnd, hOK)
		uem = &synthesized
	}

	refTl := timeline.BuildFromList(ref).IntersectUEM(*uem)
	hypTl := timeline.BuildFromList(hyp).IntersectUEM(*uem)

	if collar := CollarIntervals(ref, cfg.collar); len(collar) > 0 {
		refTl = refTl.Subtract(collar)
		hypTl = hypTl.Subtract(collar)
	}

	refTl, hypTl = timeline.Filter(cfg.regions, refTl, hypTl)

	refSpeakers := ref.Speakers()
	hypSpeakers := hyp.Speakers()

	cm := assignment.BuildCostMatrix(refTl, hypTl, refSpeakers, hypSpeakers)
	asn := assignment.Solve(cm)

	return score.Score(refTl, hypTl, refSpeakers, hypSpeakers, asn), nil
}

// CollarIntervals is sugar over timeline.CollarIntervals for the reference
// turn list; ComputeDER uses it to build the collar's forbidden intervals.
func CollarIntervals(ref turn.TurnList, collar float64) []timeline.Interval {
	return timeline.CollarIntervals(ref.Turns(), collar)
}
