// Package rttm parses the RTTM and UEM text formats into turn.TurnList and
// timeline.UEM values, and loads YAML batch manifests describing multiple
// recordings at once. It is pure I/O glue: nothing here touches the
// scoring core directly.
package rttm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
)

// ParseError reports a malformed RTTM/UEM line with enough context to find
// it again: the source file name and the 1-based line number.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var errTooFewFields = fmt.Errorf("fewer than 8 whitespace-separated fields")

var errTooFewUEMFields = fmt.Errorf("fewer than 4 whitespace-separated fields")

// ParseRTTM reads RTTM records keyed by recording id. Relevant fields by
// position: [1] recording_id, [3] start (sec), [4] duration (sec),
// [7] speaker_id; end = start + duration. Other fields (type, channel,
// orthography, confidence, slat) are ignored. Blank lines and lines
// starting with ';' or '#' are skipped.
//
// Complexity: O(n) in the number of non-blank lines.
func ParseRTTM(r io.Reader, fileName string) (map[string]turn.TurnList, error) {
	turnsByRecording := make(map[string][]turn.Turn)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 8 {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: errTooFewFields}
		}

		recordingID := fields[1]
		start, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: fmt.Errorf("bad start time %q: %w", fields[3], err)}
		}
		dur, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: fmt.Errorf("bad duration %q: %w", fields[4], err)}
		}
		speaker := fields[7]

		t, err := turn.New(speaker, start, start+dur)
		if err != nil {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: err}
		}
		turnsByRecording[recordingID] = append(turnsByRecording[recordingID], t)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: fileName, Line: lineNo, Err: err}
	}

	out := make(map[string]turn.TurnList, len(turnsByRecording))
	for id, turns := range turnsByRecording {
		tl, err := turn.NewTurnList(turns...)
		if err != nil {
			return nil, &ParseError{File: fileName, Err: err}
		}
		out[id] = tl
	}
	return out, nil
}

// ParseRTTMFile opens path and delegates to ParseRTTM.
func ParseRTTMFile(path string) (map[string]turn.TurnList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseRTTM(f, path)
}

// ParseUEM reads UEM records keyed by recording id: whitespace-separated
// "recording_id channel start end" lines, channel ignored. Multiple lines
// for the same recording id accumulate into one timeline.UEM (intervals
// merged per timeline.NewUEM).
func ParseUEM(r io.Reader, fileName string) (map[string]timeline.UEM, error) {
	intervalsByRecording := make(map[string][]timeline.Interval)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: errTooFewUEMFields}
		}

		recordingID := fields[0]
		start, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: fmt.Errorf("bad start time %q: %w", fields[2], err)}
		}
		end, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: fmt.Errorf("bad end time %q: %w", fields[3], err)}
		}
		if !(start < end) {
			return nil, &ParseError{File: fileName, Line: lineNo, Err: fmt.Errorf("UEM interval start %v not before end %v", start, end)}
		}
		intervalsByRecording[recordingID] = append(intervalsByRecording[recordingID], timeline.Interval{Start: start, End: end})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: fileName, Line: lineNo, Err: err}
	}

	out := make(map[string]timeline.UEM, len(intervalsByRecording))
	for id, intervals := range intervalsByRecording {
		out[id] = timeline.NewUEM(intervals...)
	}
	return out, nil
}

// ParseUEMFile opens path and delegates to ParseUEM.
func ParseUEMFile(path string) (map[string]timeline.UEM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseUEM(f, path)
}
