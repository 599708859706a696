package timeline_test

import (
	"testing"

	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
	"github.com/stretchr/testify/require"
)

func TestFilterOverlapRestrictsToMultiSpeakerRegions(t *testing.T) {
	ref := []turn.Turn{mustTurn(t, "A", 0, 10), mustTurn(t, "B", 5, 10)}
	hyp := []turn.Turn{mustTurn(t, "A", 0, 10)}

	refTl := timeline.Build(ref)
	hypTl := timeline.Build(hyp)

	filteredRef, filteredHyp := timeline.Filter(timeline.Overlap, refTl, hypTl)
	require.Equal(t, 5.0, filteredRef.TotalDuration())
	require.Equal(t, 5.0, filteredHyp.TotalDuration())
}

func TestFilterAllIsIdentity(t *testing.T) {
	ref := []turn.Turn{mustTurn(t, "A", 0, 10)}
	refTl := timeline.Build(ref)
	r, h := timeline.Filter(timeline.All, refTl, refTl)
	require.Equal(t, refTl.TotalDuration(), r.TotalDuration())
	require.Equal(t, refTl.TotalDuration(), h.TotalDuration())
}

func TestParseKind(t *testing.T) {
	for _, name := range []string{"all", "single", "overlap", "nonoverlap"} {
		k, ok := timeline.ParseKind(name)
		require.True(t, ok)
		require.Equal(t, name, k.String())
	}
	_, ok := timeline.ParseKind("bogus")
	require.False(t, ok)
}
