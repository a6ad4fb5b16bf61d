// Package audio plays the game's sound effects through the system speaker.
// The effects are synthesized, so no asset files are needed.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-ballgame/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// sweep is a sine whose frequency glides linearly from start to end.
type sweep struct {
	start, end float64
	phase      float64
	pos, total int
}

func newSweep(start, end float64, d time.Duration) *sweep {
	return &sweep{start: start, end: end, total: sampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		t := float64(s.pos) / float64(s.total)
		freq := s.start + (s.end-s.start)*t
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v

		s.phase += freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// noise is white noise with a seeded source.
type noise struct {
	rng        *rand.Rand
	pos, total int
}

func newNoise(d time.Duration, seed int64) *noise {
	return &noise{rng: rand.New(rand.NewSource(seed)), total: sampleRate.N(d)}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		v := n.rng.Float64()*2 - 1
		samples[i][0], samples[i][1] = v, v
		n.pos++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// decay fades a stream linearly to silence over d.
type decay struct {
	s          beep.Streamer
	pos, total int
}

func newDecay(s beep.Streamer, d time.Duration) *decay {
	return &decay{s: beep.Take(sampleRate.N(d), s), total: sampleRate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1 - float64(d.pos)/float64(d.total)
		if g < 0 {
			g = 0
		}
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// pluck is a short decaying sine.
func pluck(freq float64) beep.Streamer {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return volume(newDecay(tone, 90*time.Millisecond), 0.5)
}

// Effect builds a fresh streamer for the sound, or nil for an unknown id.
func Effect(id core.SoundID) beep.Streamer {
	switch id {
	case core.SoundPluck1:
		return pluck(660)
	case core.SoundPluck2:
		return pluck(784)
	case core.SoundExplosion:
		return volume(newDecay(newNoise(400*time.Millisecond, 1), 400*time.Millisecond), 0.6)
	case core.SoundLaser:
		return volume(newDecay(newSweep(1400, 500, 150*time.Millisecond), 150*time.Millisecond), 0.4)
	default:
		return nil
	}
}
