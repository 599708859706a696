package timeline_test

import (
	"testing"

	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
	"github.com/stretchr/testify/require"
)

func mustTurn(t *testing.T, spk string, start, end float64) turn.Turn {
	t.Helper()
	tn, err := turn.New(spk, start, end)
	require.NoError(t, err)
	return tn
}

func TestBuildTouchingTurnsNoGapRegion(t *testing.T) {
	turns := []turn.Turn{
		mustTurn(t, "A", 0, 1),
		mustTurn(t, "B", 1, 2),
	}
	tl := timeline.Build(turns)
	regions := tl.Regions()
	require.Len(t, regions, 2)
	require.Equal(t, 0.0, regions[0].Start)
	require.Equal(t, 1.0, regions[0].End)
	require.True(t, regions[0].HasSpeaker("A"))
	require.Equal(t, 1.0, regions[1].Start)
	require.Equal(t, 2.0, regions[1].End)
	require.True(t, regions[1].HasSpeaker("B"))
}

func TestBuildOverlapProducesUnionRegion(t *testing.T) {
	turns := []turn.Turn{
		mustTurn(t, "A", 0, 10),
		mustTurn(t, "B", 5, 10),
	}
	tl := timeline.Build(turns)
	regions := tl.Regions()
	require.Len(t, regions, 2)
	require.True(t, regions[0].HasSpeaker("A"))
	require.Len(t, regions[0].Speakers, 1)
	require.True(t, regions[1].HasSpeaker("A"))
	require.True(t, regions[1].HasSpeaker("B"))
	require.Len(t, regions[1].Speakers, 2)
}

func TestBuildSameSpeakerTwoOverlappingTurnsStaysOneLabel(t *testing.T) {
	turns := []turn.Turn{
		mustTurn(t, "A", 0, 5),
		mustTurn(t, "A", 3, 8),
	}
	tl := timeline.Build(turns)
	require.Equal(t, 1, tl.Len())
	for _, r := range tl.Regions() {
		require.Len(t, r.Speakers, 1)
	}
	require.Equal(t, 8.0, tl.TotalDuration())
}

func TestBuildEmpty(t *testing.T) {
	tl := timeline.Build(nil)
	require.Equal(t, 0, tl.Len())
}
