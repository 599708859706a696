// Command spyder scores a hypothesis RTTM file against a reference RTTM
// file and prints the Diarization Error Rate, optionally broken down
// per-recording.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desh2608/spyder"
	"github.com/desh2608/spyder/rttm"
	"github.com/desh2608/spyder/timeline"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("spyder", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: spyder <ref_rttm> <hyp_rttm> [flags]")
		fs.PrintDefaults()
	}

	uemPath := fs.StringP("uem", "u", "", "UEM file restricting the scoring domain")
	perFile := fs.BoolP("per-file", "p", false, "print one row per recording, not just Overall")
	skipMissing := fs.BoolP("skip-missing", "s", false, "skip recordings absent from the hypothesis instead of scoring them as fully missed")
	regionName := fs.StringP("regions", "r", "all", "region class to score: all|single|overlap|nonoverlap")
	collar := fs.Float64P("collar", "c", 0.0, "boundary-forgiveness collar in seconds")
	printSpeakerMap := fs.BoolP("print-speaker-map", "m", false, "log the resolved reference/hypothesis speaker assignment per recording")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	runID := uuid.New().String()
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true}).With("run", runID)

	kind, ok := spyder.ParseRegionFilter(*regionName)
	if !ok {
		logger.Error("invalid region filter", "regions", *regionName)
		return 1
	}
	if *collar < 0 {
		logger.Error("collar must be >= 0", "collar", *collar)
		return 1
	}

	refPath, hypPath := fs.Arg(0), fs.Arg(1)
	refByRecording, err := rttm.ParseRTTMFile(refPath)
	if err != nil {
		logger.Error("failed to parse reference RTTM", "file", refPath, "err", err)
		return 1
	}
	hypByRecording, err := rttm.ParseRTTMFile(hypPath)
	if err != nil {
		logger.Error("failed to parse hypothesis RTTM", "file", hypPath, "err", err)
		return 1
	}

	var uemByRecording map[string]timeline.UEM
	if *uemPath != "" {
		uemByRecording, err = rttm.ParseUEMFile(*uemPath)
		if err != nil {
			logger.Error("failed to parse UEM", "file", *uemPath, "err", err)
			return 1
		}
	}

	opts := []spyder.Option{spyder.WithRegions(kind), spyder.WithCollar(*collar)}

	results, err := spyder.ComputeDERBatch(
		refByRecording,
		hypByRecording,
		uemByRecording,
		*skipMissing,
		logger,
		opts...,
	)
	if err != nil {
		logger.Error("scoring failed", "err", err)
		return 1
	}

	if *printSpeakerMap {
		for id, m := range results {
			if id == "Overall" {
				continue
			}
			logger.Info("speaker map", "recording", id, "ref_map", m.RefMap, "hyp_map", m.HypMap)
		}
	}

	printTable(os.Stdout, results, *perFile)
	return 0
}
