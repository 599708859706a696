package rttm_test

import (
	"strings"
	"testing"

	"github.com/desh2608/spyder/rttm"
	"github.com/stretchr/testify/require"
)

func TestParseRTTMBasic(t *testing.T) {
	const input = `SPEAKER rec1 1 0.0 5.0 <NA> <NA> A <NA> <NA>
SPEAKER rec1 1 5.0 3.5 <NA> <NA> B <NA> <NA>
SPEAKER rec2 1 0.0 2.0 <NA> <NA> A <NA> <NA>
`
	byRecording, err := rttm.ParseRTTM(strings.NewReader(input), "test.rttm")
	require.NoError(t, err)
	require.Len(t, byRecording, 2)

	rec1 := byRecording["rec1"]
	require.Equal(t, 2, rec1.Len())
	start, end, ok := rec1.Bounds()
	require.True(t, ok)
	require.Equal(t, 0.0, start)
	require.Equal(t, 8.5, end)
}

func TestParseRTTMSkipsCommentsAndBlankLines(t *testing.T) {
	const input = `; a comment
# another comment

SPEAKER rec1 1 0.0 1.0 <NA> <NA> A <NA> <NA>
`
	byRecording, err := rttm.ParseRTTM(strings.NewReader(input), "test.rttm")
	require.NoError(t, err)
	require.Len(t, byRecording, 1)
}

func TestParseRTTMTooFewFields(t *testing.T) {
	const input = "SPEAKER rec1 1 0.0 1.0\n"
	_, err := rttm.ParseRTTM(strings.NewReader(input), "bad.rttm")
	require.Error(t, err)

	var perr *rttm.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "bad.rttm", perr.File)
	require.Equal(t, 1, perr.Line)
}

func TestParseRTTMInvalidTurnReportsLine(t *testing.T) {
	const input = `SPEAKER rec1 1 0.0 5.0 <NA> <NA> A <NA> <NA>
SPEAKER rec1 1 3.0 -1.0 <NA> <NA> B <NA> <NA>
`
	_, err := rttm.ParseRTTM(strings.NewReader(input), "bad.rttm")
	require.Error(t, err)

	var perr *rttm.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
}

func TestParseUEMBasic(t *testing.T) {
	const input = `rec1 1 0.0 10.0
rec1 1 10.0 20.0
rec2 1 0.0 5.0
`
	byRecording, err := rttm.ParseUEM(strings.NewReader(input), "test.uem")
	require.NoError(t, err)
	require.Len(t, byRecording, 2)
	require.Equal(t, 20.0, byRecording["rec1"].TotalDuration())
	require.Equal(t, 5.0, byRecording["rec2"].TotalDuration())
}

func TestParseUEMRejectsBackwardsInterval(t *testing.T) {
	const input = "rec1 1 10.0 5.0\n"
	_, err := rttm.ParseUEM(strings.NewReader(input), "bad.uem")
	require.Error(t, err)
}
