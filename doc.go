// Package spyder computes the Diarization Error Rate (DER) between a
// reference and a hypothesis speaker-diarization segmentation.
//
// Given two collections of labeled time intervals ("turns") it scores how
// well the hypothesis reproduces the reference, decomposing the error into
// missed speech, false alarm, and speaker confusion, optionally restricted
// to a scoring region (UEM), with an optional tolerance collar around turn
// boundaries, and optionally filtered to a region class (all / single /
// overlap / nonoverlap).
//
// Everything is organized under subpackages, leaves first:
//
//	turn/       — Turn, TurnList: the labeled-interval data model
//	timeline/   — sweep-line partitioning, UEM intersection, collar, region filter
//	assignment/ — cost matrix + Hungarian (Kuhn-Munkres) speaker assignment
//	score/      — the scorer: miss / false-alarm / confusion accumulation
//	rttm/       — RTTM/UEM parsing and YAML batch manifests
//
// Quick pipeline:
//
//	turns -> timeline.Build -> IntersectUEM -> Subtract (collar) -> Filter
//	      -> assignment.BuildCostMatrix -> assignment.Solve -> score.Score
//
// ComputeDER is the single entry point gluing all of the above; ComputeDERBatch
// scores many recordings and folds them into a duration-weighted "Overall".
//
//	go get github.com/desh2608/spyder
package spyder
