package assignment_test

import (
	"testing"

	"github.com/desh2608/spyder/assignment"
	"github.com/stretchr/testify/require"
)

func TestSolveDiagonalPreferred(t *testing.T) {
	cm := assignment.NewCostMatrix([]string{"A", "B"}, []string{"X", "Y"})
	cm.Add(0, 0, 10) // A-X
	cm.Add(1, 1, 10) // B-Y
	cm.Add(0, 1, 1)
	cm.Add(1, 0, 1)

	asn := assignment.Solve(cm)
	require.Equal(t, 0, asn.RefToHyp[0])
	require.Equal(t, 1, asn.RefToHyp[1])
}

func TestSolveRectangularPadsWithPhantoms(t *testing.T) {
	cm := assignment.NewCostMatrix([]string{"A", "B", "C"}, []string{"X"})
	cm.Add(0, 0, 1)
	cm.Add(1, 0, 9)
	cm.Add(2, 0, 2)

	asn := assignment.Solve(cm)
	require.Equal(t, 0, asn.RefToHyp[1]) // B matched to X (best overlap)
	require.Equal(t, -1, asn.RefToHyp[0])
	require.Equal(t, -1, asn.RefToHyp[2])
	require.Equal(t, 1, asn.HypToRef[0])
}

func TestSolveEmptyMatrix(t *testing.T) {
	cm := assignment.NewCostMatrix(nil, nil)
	asn := assignment.Solve(cm)
	require.Empty(t, asn.RefToHyp)
	require.Empty(t, asn.HypToRef)
}

func TestSolveOptimalityAgainstBruteForce(t *testing.T) {
	// Small 3x3 instance, brute force all 6 permutations to confirm Solve
	// finds the maximum-weight one.
	refLabels := []string{"A", "B", "C"}
	hypLabels := []string{"X", "Y", "Z"}
	weights := [3][3]float64{
		{5, 1, 2},
		{3, 6, 1},
		{2, 2, 7},
	}
	cm := assignment.NewCostMatrix(refLabels, hypLabels)
	for r := 0; r < 3; r++ {
		for h := 0; h < 3; h++ {
			cm.Add(r, h, weights[r][h])
		}
	}

	best := 0.0
	perm := []int{0, 1, 2}
	permute(perm, 0, func(p []int) {
		total := weights[0][p[0]] + weights[1][p[1]] + weights[2][p[2]]
		if total > best {
			best = total
		}
	})

	asn := assignment.Solve(cm)
	got := 0.0
	for r, h := range asn.RefToHyp {
		if h >= 0 {
			got += weights[r][h]
		}
	}
	require.InDelta(t, best, got, 1e-9)
}

func permute(a []int, k int, visit func([]int)) {
	if k == len(a) {
		visit(a)
		return
	}
	for i := k; i < len(a); i++ {
		a[k], a[i] = a[i], a[k]
		permute(a, k+1, visit)
		a[k], a[i] = a[i], a[k]
	}
}
