package assignment_test

import (
	"testing"

	"github.com/desh2608/spyder/assignment"
	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
	"github.com/stretchr/testify/require"
)

func TestBuildCostMatrixOverlapNotDivided(t *testing.T) {
	a, _ := turn.New("A", 0, 10)
	x, _ := turn.New("X", 0, 5)
	y, _ := turn.New("Y", 0, 5)

	ref := timeline.Build([]turn.Turn{a})
	hyp := timeline.Build([]turn.Turn{x, y})

	cm := assignment.BuildCostMatrix(ref, hyp, []string{"A"}, []string{"X", "Y"})
	require.Equal(t, 5.0, cm.At(0, 0))
	require.Equal(t, 5.0, cm.At(0, 1))
}

func TestBuildCostMatrixDisjointIsZero(t *testing.T) {
	a, _ := turn.New("A", 0, 5)
	b, _ := turn.New("B", 5, 10)

	ref := timeline.Build([]turn.Turn{a})
	hyp := timeline.Build([]turn.Turn{b})

	cm := assignment.BuildCostMatrix(ref, hyp, []string{"A"}, []string{"B"})
	require.Equal(t, 0.0, cm.At(0, 0))
}
