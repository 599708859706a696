package score

import (
	"github.com/desh2608/spyder/assignment"
	"github.com/desh2608/spyder/timeline"
)

// Score walks the common refinement of ref and hyp (already cut down to the
// scoring domain by UEM/collar/region-filter) under asn, the resolved
// reference-to-hypothesis speaker assignment, and accumulates miss,
// false-alarm, confusion and duration per the NIST md-eval convention.
//
// Conceptually the hypothesis timeline is relabeled through asn first
// (unmatched hypothesis speakers becoming ghost labels that never equal a
// reference label); this implementation achieves the same result without
// literally rewriting region labels, by comparing each reference speaker's
// assigned hypothesis label against the joint span's hypothesis set
// directly.
//
// Complexity: O(n+m) over the common refinement.
func Score(ref, hyp timeline.Timeline, refLabels, hypLabels []string, asn assignment.Assignment) Metrics {
	refToHyp := make(map[string]string, len(refLabels))
	for r, label := range refLabels {
		if h := asn.RefToHyp[r]; h >= 0 {
			refToHyp[label] = hypLabels[h]
		}
	}
	hypToRef := make(map[string]string, len(asn.HypToRef))
	for label, mapped := range refToHyp {
		hypToRef[mapped] = label
	}

	var duration, miss, falarm, conf float64
	for _, j := range timeline.CommonRefinement(ref, hyp) {
		d := j.End - j.Start
		if d <= 0 {
			continue
		}
		nr, nh := len(j.Ref), len(j.Hyp)
		if nr == 0 && nh == 0 {
			continue
		}

		matched := 0
		for r := range j.Ref {
			if mapped, ok := refToHyp[r]; ok {
				if _, present := j.Hyp[mapped]; present {
					matched++
				}
			}
		}

		if nr > nh {
			miss += d * float64(nr-nh)
		}
		if nh > nr {
			falarm += d * float64(nh-nr)
		}
		minRH := nr
		if nh < minRH {
			minRH = nh
		}
		conf += d * float64(minRH-matched)
		duration += d * float64(nr)
	}

	m := Metrics{Duration: duration, RefMap: refToHyp, HypMap: hypToRef}
	if duration == 0 {
		return m
	}
	m.Miss = miss / duration
	m.Falarm = falarm / duration
	m.Conf = conf / duration
	m.DER = m.Miss + m.Falarm + m.Conf
	return m
}
