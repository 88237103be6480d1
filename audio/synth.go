package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects a tone shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// at returns the wave value for phase in [0, 1)
func (w Wave) at(phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Note is one shaped tone of a cue
// Attack and Release are linear ramps inside Length
type Note struct {
	Freq    float64
	Wave    Wave
	Length  time.Duration
	Attack  time.Duration
	Release time.Duration
}

// tone streams a single Note
type tone struct {
	wave    Wave
	step    float64 // phase advance per sample
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

// NewTone renders n at rate
func NewTone(n Note, rate beep.SampleRate) beep.Streamer {
	return &tone{
		wave:    n.Wave,
		step:    n.Freq / float64(rate),
		total:   rate.N(n.Length),
		attack:  rate.N(n.Attack),
		release: rate.N(n.Release),
	}
}

// gain is the envelope level at the current sample
func (t *tone) gain() float64 {
	g := 1.0
	if t.pos < t.attack {
		g = float64(t.pos) / float64(t.attack)
	}
	if left := t.total - t.pos; left < t.release {
		g = math.Min(g, float64(left)/float64(t.release))
	}
	return g
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for ; n < len(samples) && t.pos < t.total; n++ {
		v := t.wave.at(t.phase) * t.gain()
		samples[n] = [2]float64{v, v}
		t.phase += t.step
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// melody plays notes back to back at a linear volume in [0, 1]
func melody(notes []Note, volume float64, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = NewTone(n, rate)
	}
	s := beep.Seq(parts...)
	// effects.Volume is logarithmic; zero maps to Silent since Log2(0) is -Inf
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
