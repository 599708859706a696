package timeline_test

import (
	"testing"

	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
	"github.com/stretchr/testify/require"
)

func TestCollarIntervalsMergesOverlappingWindows(t *testing.T) {
	turns := []turn.Turn{mustTurn(t, "A", 0, 1)}
	ivs := timeline.CollarIntervals(turns, 0.6)
	// boundaries at 0 and 1, collar 0.6 => [-0.6,0.6] and [0.4,1.6] overlap, merge.
	require.Len(t, ivs, 1)
	require.InDelta(t, -0.6, ivs[0].Start, 1e-9)
	require.InDelta(t, 1.6, ivs[0].End, 1e-9)
}

func TestCollarIntervalsZeroIsNoop(t *testing.T) {
	turns := []turn.Turn{mustTurn(t, "A", 0, 1)}
	require.Nil(t, timeline.CollarIntervals(turns, 0))
}

func TestSubtractSplitsRegion(t *testing.T) {
	turns := []turn.Turn{mustTurn(t, "A", 0, 10)}
	tl := timeline.Build(turns)
	forbidden := []timeline.Interval{{Start: 4, End: 6}}
	out := tl.Subtract(forbidden)
	require.Equal(t, 8.0, out.TotalDuration())
	regions := out.Regions()
	require.Len(t, regions, 2)
	require.Equal(t, 0.0, regions[0].Start)
	require.Equal(t, 4.0, regions[0].End)
	require.Equal(t, 6.0, regions[1].Start)
	require.Equal(t, 10.0, regions[1].End)
}
