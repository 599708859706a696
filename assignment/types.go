// Package assignment builds the reference-speaker x hypothesis-speaker
// overlap cost matrix and solves the minimum-cost bipartite assignment over
// it, which is what package score needs to resolve "which hypothesis
// speaker is this reference speaker" before counting errors.
package assignment

import (
	"gonum.org/v1/gonum/mat"
)

// CostMatrix is a dense |RefLabels| x |HypLabels| matrix of non-negative
// overlap durations, backed by gonum's mat.Dense for row/column accessors
// over a flat numeric buffer. CostMatrix[r,h] is the total scoring-domain
// time where reference speaker
// RefLabels[r] and hypothesis speaker HypLabels[h] are simultaneously
// active.
type CostMatrix struct {
	data      *mat.Dense
	RefLabels []string
	HypLabels []string
}

// NewCostMatrix allocates a zero-filled |refLabels| x |hypLabels| matrix.
// Either label slice may be empty; a degenerate, zero-row or zero-column
// matrix is valid and simply holds no data.
func NewCostMatrix(refLabels, hypLabels []string) CostMatrix {
	rows, cols := len(refLabels), len(hypLabels)
	var data *mat.Dense
	if rows > 0 && cols > 0 {
		data = mat.NewDense(rows, cols, nil)
	}
	return CostMatrix{data: data, RefLabels: append([]string(nil), refLabels...), HypLabels: append([]string(nil), hypLabels...)}
}

// Dims returns (rows, cols).
func (m CostMatrix) Dims() (int, int) {
	return len(m.RefLabels), len(m.HypLabels)
}

// At returns C[r,h].
func (m CostMatrix) At(r, h int) float64 {
	if m.data == nil {
		return 0
	}
	return m.data.At(r, h)
}

// Add accumulates d into C[r,h].
func (m CostMatrix) Add(r, h int, d float64) {
	if m.data == nil {
		return
	}
	m.data.Set(r, h, m.data.At(r, h)+d)
}
