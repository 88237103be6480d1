package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

// SampleRate is the speaker output rate
const SampleRate = beep.SampleRate(48000)

// Player mixes cues onto the speaker
// A disabled player, or one whose speaker failed to open, accepts every call silently
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	ready   bool
	played  int
	log     zerolog.Logger
}

// NewPlayer creates a player; nothing touches the audio device until Init
func NewPlayer(enabled bool, volume float64, log zerolog.Logger) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
		log:     log.With().Str("component", "audio").Logger(),
	}
}

// Init opens the speaker; failure leaves the player silent and is returned for logging
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.enabled = false
		p.log.Warn().Err(err).Msg("speaker unavailable, audio disabled")
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Play queues cue on the mixer
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := NewCue(c, SampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Played returns the number of cues sent to the speaker
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences pending cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
