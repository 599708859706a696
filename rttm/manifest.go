package rttm

import (
	"fmt"
	"os"

	"github.com/desh2608/spyder/timeline"
	"github.com/desh2608/spyder/turn"
	"gopkg.in/yaml.v3"
)

// ManifestEntry names one recording's ref/hyp/uem RTTM/UEM files. UEM is
// optional; when blank, ComputeDER/ComputeDERBatch synthesize one.
type ManifestEntry struct {
	ID  string `yaml:"id"`
	Ref string `yaml:"ref"`
	Hyp string `yaml:"hyp"`
	UEM string `yaml:"uem,omitempty"`
}

// Manifest is a YAML batch manifest: an alternative to the single
// ref-RTTM/hyp-RTTM-with-multiple-recording-ids convention, naming each
// recording's ref/hyp/uem files explicitly instead of relying on matching
// recording ids across two flat RTTM files.
type Manifest struct {
	Recordings []ManifestEntry `yaml:"recordings"`
}

// LoadManifest reads and parses a YAML manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("rttm: parsing manifest %s: %w", path, err)
	}
	return m, nil
}

// LoadBatch resolves every entry in a Manifest, reading each recording's
// ref/hyp/uem files and assembling the per-recording maps ComputeDERBatch
// expects.
//
// Complexity: O(E) file reads, E = len(m.Recordings).
func LoadBatch(m Manifest) (ref, hyp map[string]turn.TurnList, uem map[string]timeline.UEM, err error) {
	ref = make(map[string]turn.TurnList, len(m.Recordings))
	hyp = make(map[string]turn.TurnList, len(m.Recordings))
	uem = make(map[string]timeline.UEM, len(m.Recordings))

	for _, entry := range m.Recordings {
		refTurns, err := loadSingleRTTM(entry.Ref, entry.ID)
		if err != nil {
			return nil, nil, nil, err
		}
		ref[entry.ID] = refTurns

		hypTurns, err := loadSingleRTTM(entry.Hyp, entry.ID)
		if err != nil {
			return nil, nil, nil, err
		}
		hyp[entry.ID] = hypTurns

		if entry.UEM == "" {
			continue
		}
		byRecording, err := ParseUEMFile(entry.UEM)
		if err != nil {
			return nil, nil, nil, err
		}
		if u, ok := byRecording[entry.ID]; ok {
			uem[entry.ID] = u
		}
	}
	return ref, hyp, uem, nil
}

// loadSingleRTTM parses path and returns only the recording id entry,
// treating an id absent from the file as having no turns at all (rather
// than an error), since a manifest entry may legitimately point at an
// RTTM file holding just that one recording.
func loadSingleRTTM(path, id string) (turn.TurnList, error) {
	byRecording, err := ParseRTTMFile(path)
	if err != nil {
		return turn.TurnList{}, err
	}
	return byRecording[id], nil
}
