// Package report shapes raw diarization turns into the result envelope.
package report

import (
	"sort"

	"github.com/transcriper/diarize/internal/types"
)

// The upstream pipeline exposes no per-turn confidence. The placeholder
// is part of the output contract and must not become a real metric.
const placeholderConfidence = 1.0

// Build projects turns into speaker segments, stably sorted by start
// time, and fills in the envelope totals.
func Build(turns []types.Turn, modelVersion, deviceUsed string) types.Result {
	speakers := make([]types.SpeakerSegment, 0, len(turns))
	for _, turn := range turns {
		speakers = append(speakers, types.SpeakerSegment{
			Speaker:    turn.Speaker,
			StartTime:  turn.Start,
			EndTime:    turn.End,
			Duration:   turn.End - turn.Start,
			Confidence: placeholderConfidence,
		})
	}
	sort.SliceStable(speakers, func(i, j int) bool {
		return speakers[i].StartTime < speakers[j].StartTime
	})

	distinct := make(map[string]struct{}, len(speakers))
	for _, s := range speakers {
		distinct[s.Speaker] = struct{}{}
	}

	return types.Result{
		Success:       true,
		Speakers:      speakers,
		TotalSpeakers: len(distinct),
		TotalSegments: len(speakers),
		ModelVersion:  modelVersion,
		DeviceUsed:    deviceUsed,
	}
}
