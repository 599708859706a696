package assignment

import "math"

// Assignment is a partial injective function from reference-speaker index
// to hypothesis-speaker index. A reference index whose RefToHyp entry is
// -1 is unmatched: its time counts entirely as error against
// whatever hypothesis speaker (if any) is active there.
type Assignment struct {
	// RefToHyp[r] is the hypothesis index matched to reference index r, or
	// -1 if r is unmatched.
	RefToHyp []int
	// HypToRef is the inverse of RefToHyp, same convention.
	HypToRef []int
}

// Solve computes the maximum-weight bipartite matching on cm: equivalently
// the minimum-cost assignment on -cm, padded to a square k=max(m,n) matrix
// with zero-weight phantom rows/columns for whichever side is smaller. The
// classical O(k^3) Hungarian algorithm is used. The result is deterministic
// for a given label order: rows are inserted in increasing index order and
// each column scan keeps the lowest-index column among equal reduced costs.
// Indices follow RefLabels/HypLabels order (first appearance), not
// lexicographic label order.
//
// Complexity: O(k^3) time, O(k^2) space, k = max(m,n).
func Solve(cm CostMatrix) Assignment {
	m, n := cm.Dims()
	if m == 0 || n == 0 {
		return Assignment{RefToHyp: negOnes(m), HypToRef: negOnes(n)}
	}

	k := m
	if n > k {
		k = n
	}

	// 1-indexed cost matrix for the classic Hungarian recurrence; padding
	// entries are 0 (a no-op match for the maximization problem, since
	// real weights are >= 0 so cost = -weight <= 0 always beats a phantom).
	a := make([][]float64, k+1)
	for i := range a {
		a[i] = make([]float64, k+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			a[i][j] = -cm.At(i-1, j-1)
		}
	}

	const inf = math.MaxFloat64 / 2
	u := make([]float64, k+1)
	v := make([]float64, k+1)
	p := make([]int, k+1) // p[j] = row matched to column j, 0 = unmatched
	way := make([]int, k+1)

	for i := 1; i <= k; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, k+1)
		used := make([]bool, k+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= k; j++ {
				if used[j] {
					continue
				}
				cur := a[i0][j] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= k; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	refToHyp := negOnes(m)
	hypToRef := negOnes(n)
	for j := 1; j <= k; j++ {
		i := p[j]
		if i == 0 {
			continue
		}
		r, h := i-1, j-1
		if r < m && h < n {
			refToHyp[r] = h
			hypToRef[h] = r
		}
	}
	return Assignment{RefToHyp: refToHyp, HypToRef: hypToRef}
}

func negOnes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = -1
	}
	return out
}
