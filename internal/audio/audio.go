// Package audio synthesizes the game's sound effects. All sounds are
// generated oscillators; there are no audio assets to load.
package audio

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// WaveType selects the oscillator wave shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration. The frequency
// ramps linearly from freq to endFreq over the duration, which gives the
// falling-pitch sweeps their character; set both equal for a steady tone.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing the given wave at freq for
// the duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates a streamer whose frequency ramps from startFreq to
// endFreq over the duration.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		// Linear fade-out over the tail keeps clicks out of short effects.
		remaining := float64(o.duration-o.position) / float64(o.duration)
		if remaining < 0.25 {
			val *= remaining / 0.25
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Player owns the speaker and mixes effect streams into it. A nil Player
// is valid and silent, so drivers without audio (SSH sessions) can skip
// the nil checks.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewPlayer creates an uninitialized player. Call Init before playing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Safe to call more than once.
func (p *Player) Init() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences and shuts the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetMuted toggles output without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Fire plays the interceptor launch chirp.
func (p *Player) Fire() {
	p.play(gain(NewSweep(880, 1320, 70*time.Millisecond, WaveSquare, sampleRate), -1.2))
}

// Detonate plays the blast noise burst.
func (p *Player) Detonate() {
	p.play(gain(NewOscillator(0, 220*time.Millisecond, WaveNoise, sampleRate), -0.6))
}

// BaseHit plays the low thud of a lost base.
func (p *Player) BaseHit() {
	p.play(gain(NewSweep(160, 55, 350*time.Millisecond, WaveSine, sampleRate), 0))
}

// LevelUp plays a short rising arpeggio step.
func (p *Player) LevelUp() {
	p.play(gain(NewSweep(440, 880, 180*time.Millisecond, WaveSine, sampleRate), -0.8))
}

// GameOver plays the falling sweep.
func (p *Player) GameOver() {
	p.play(gain(NewSweep(660, 80, 900*time.Millisecond, WaveSquare, sampleRate), -1.0))
}

func (p *Player) play(s beep.Streamer) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// gain wraps a streamer with a volume adjustment in base-2 exponents
// (negative is quieter).
func gain(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volume,
	}
}
