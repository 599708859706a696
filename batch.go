package spyder

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/desh2608/spyder/score"
	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
)

// ComputeDERBatch scores every recording in ref against hyp, folding the
// per-recording Metrics into a duration-weighted "Overall" entry. It is the
// library-level analogue of the CLI's multi-file mode.
//
// Recordings are iterated in sorted-id order so results (and any warnings
// logged) are reproducible across runs. A recording id present in ref but
// absent from hyp is handled as follows:
//
//   - skipMissing == true: the recording is logged and excluded entirely.
//   - skipMissing == false: hyp for that recording is treated as empty, so
//     all of its reference speech counts as missed. A hyp-only recording
//     (present in hyp but not ref) is always silently ignored — the stated
//     asymmetry is intentional, not a bug.
//
// uemByRecording is optional; a recording absent from it gets the default
// synthesized UEM. logger may be nil, in which case warnings are simply not
// emitted.
//
// Complexity: O(R) ComputeDER calls, R = len(ref); each call's own cost per
// der.go's ComputeDER.
func ComputeDERBatch(
	ref, hyp map[string]turn.TurnList,
	uemByRecording map[string]timeline.UEM,
	skipMissing bool,
	logger *log.Logger,
	opts ...Option,
) (map[string]score.Metrics, error) {
	ids := make([]string, 0, len(ref))
	for id := range ref {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make(map[string]score.Metrics, len(ids)+1)
	var totalDuration, totalMiss, totalFalarm, totalConf float64

	for _, id := range ids {
		refTurns := ref[id]
		hypTurns, ok := hyp[id]
		if !ok {
			if skipMissing {
				logf(logger, "skipping recording: missing from hypothesis", "recording", id)
				continue
			}
			logf(logger, "recording missing from hypothesis, scoring as empty", "recording", id, "err", ErrMissingRecording)
			hypTurns = turn.TurnList{}
		}

		recOpts := append([]Option(nil), opts...)
		if u, ok := uemByRecording[id]; ok {
			recOpts = append(recOpts, WithUEM(u))
		}

		m, err := ComputeDER(refTurns, hypTurns, recOpts...)
		if err != nil {
			return nil, err
		}
		if m.Duration == 0 {
			logf(logger, "empty scoring domain", "recording", id, "err", ErrEmptyScoringDomain)
		}

		results[id] = m
		totalDuration += m.Duration
		totalMiss += m.Duration * m.Miss
		totalFalarm += m.Duration * m.Falarm
		totalConf += m.Duration * m.Conf
	}

	overall := score.Metrics{Duration: totalDuration}
	if totalDuration > 0 {
		overall.Miss = totalMiss / totalDuration
		overall.Falarm = totalFalarm / totalDuration
		overall.Conf = totalConf / totalDuration
		overall.DER = overall.Miss + overall.Falarm + overall.Conf
	}
	results["Overall"] = overall

	return results, nil
}

func logf(logger *log.Logger, msg string, kv ...interface{}) {
	if logger == nil {
		return
	}
	logger.Warn(msg, kv...)
}
