// Package turn defines Turn and TurnList: the immutable labeled time
// interval that every downstream package (timeline, assignment, score)
// builds on.
//
// A Turn attributes a half-open-in-spirit interval [Start, End) to a
// speaker label. Speaker labels are opaque strings compared by exact
// match; there is no notion of speaker identity beyond that. A TurnList
// is a sequence of Turns, in no required order, belonging to one recording: it may contain
// overlaps between different speakers, and between turns of the same
// speaker, freely.
package turn

import (
	"errors"
	"math"
)

// ErrInvalidTurn indicates a Turn failed its start<end / finite / non-negative
// invariant. Callers should treat this as a fatal input error.
var ErrInvalidTurn = errors.New("turn: invalid turn")

// Turn is a labeled time interval attributed to one speaker.
//
// Invariant: 0 <= Start < End, both finite. Turn is a value type; once
// constructed via New it is never mutated.
type Turn struct {
	Speaker string
	Start   float64
	End     float64
}

// New validates and constructs a Turn.
//
// Complexity: O(1).
func New(speaker string, start, end float64) (Turn, error) {
	t := Turn{Speaker: speaker, Start: start, End: end}
	if err := t.Validate(); err != nil {
		return Turn{}, err
	}
	return t, nil
}

// Validate reports whether t satisfies the Turn invariant.
func (t Turn) Validate() error {
	if math.IsNaN(t.Start) || math.IsNaN(t.End) || math.IsInf(t.Start, 0) || math.IsInf(t.End, 0) {
		return ErrInvalidTurn
	}
	if t.Start < 0 || t.End < 0 {
		return ErrInvalidTurn
	}
	if !(t.Start < t.End) {
		return ErrInvalidTurn
	}
	return nil
}

// Duration returns End-Start.
func (t Turn) Duration() float64 {
	return t.End - t.Start
}

// TurnList is an ordered sequence of Turns belonging to one recording.
// No ordering invariant is required at construction; downstream sweep-line
// code (package timeline) imposes its own ordering internally.
type TurnList struct {
	turns []Turn
}

// NewTurnList constructs a TurnList from raw turns, validating each one.
// Returns ErrInvalidTurn, unwrapped, on the first violation; the error does
// not identify which turn failed.
//
// Complexity: O(n).
func NewTurnList(turns ...Turn) (TurnList, error) {
	for _, t := range turns {
		if err := t.Validate(); err != nil {
			return TurnList{}, err
		}
	}
	cp := make([]Turn, len(turns))
	copy(cp, turns)
	return TurnList{turns: cp}, nil
}

// Turns returns a defensive copy of the underlying slice.
func (tl TurnList) Turns() []Turn {
	cp := make([]Turn, len(tl.turns))
	copy(cp, tl.turns)
	return cp
}

// Len reports the number of turns.
func (tl TurnList) Len() int { return len(tl.turns) }

// Empty reports whether the list has no turns.
func (tl TurnList) Empty() bool { return len(tl.turns) == 0 }

// Bounds returns the [min start, max end] span covered by the list.
// The second return value is false for an empty list.
func (tl TurnList) Bounds() (start, end float64, ok bool) {
	if len(tl.turns) == 0 {
		return 0, 0, false
	}
	start = tl.turns[0].Start
	end = tl.turns[0].End
	for _, t := range tl.turns[1:] {
		if t.Start < start {
			start = t.Start
		}
		if t.End > end {
			end = t.End
		}
	}
	return start, end, true
}

// Speakers returns the distinct speaker labels present, in order of first
// appearance — the ordering later used to intern dense ids for the cost
// matrix (package assignment).
func (tl TurnList) Speakers() []string {
	seen := make(map[string]struct{}, len(tl.turns))
	out := make([]string, 0, len(tl.turns))
	for _, t := range tl.turns {
		if _, ok := seen[t.Speaker]; !ok {
			seen[t.Speaker] = struct{}{}
			out = append(out, t.Speaker)
		}
	}
	return out
}
