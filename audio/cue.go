package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue identifies a feedback sound
type Cue int

const (
	// CueGenerate is a rising two-note chime played when a map is requested
	CueGenerate Cue = iota
	// CueReject is a short low buzz played when a submission is dropped
	CueReject
)

type cueDef struct {
	name  string
	notes []Note
	gain  float64 // Relative to the player volume
}

var cues = map[Cue]cueDef{
	// E5 then A5
	CueGenerate: {
		name: "generate",
		notes: []Note{
			{Freq: 659.25, Wave: WaveSquare, Length: 90 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 30 * time.Millisecond},
			{Freq: 880, Wave: WaveSine, Length: 220 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 160 * time.Millisecond},
		},
		gain: 1,
	},
	CueReject: {
		name: "reject",
		notes: []Note{
			{Freq: 110, Wave: WaveSaw, Length: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond},
		},
		gain: 0.6,
	},
}

// String returns the cue name
func (c Cue) String() string {
	if d, ok := cues[c]; ok {
		return d.name
	}
	return "unknown"
}

// Duration returns the length of the cue
func (c Cue) Duration() time.Duration {
	var total time.Duration
	for _, n := range cues[c].notes {
		total += n.Length
	}
	return total
}

// NewCue synthesizes cue at rate scaled by volume in [0, 1]; nil for unknown cues
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	d, ok := cues[c]
	if !ok {
		return nil
	}
	return melody(d.notes, volume*d.gain, rate)
}
