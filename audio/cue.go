package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/aspire/vmath"
)

// Cue identifies a transition event worth a tone
type Cue int

const (
	CueNone Cue = iota
	// CueSettledStart fires when the transition returns to the sphere
	CueSettledStart
	// CueSettledEnd fires when the transition reaches the logo
	CueSettledEnd
)

func (c Cue) String() string {
	switch c {
	case CueSettledStart:
		return "settled-start"
	case CueSettledEnd:
		return "settled-end"
	}
	return "none"
}

// Tone describes a short enveloped sine
type Tone struct {
	Freq     float64
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Volume   float64
}

// ToneFor returns the tone played for a cue
func ToneFor(c Cue) (Tone, bool) {
	switch c {
	case CueSettledStart:
		return Tone{Freq: 660, Duration: 120 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 60 * time.Millisecond, Volume: 0.4}, true
	case CueSettledEnd:
		return Tone{Freq: 880, Duration: 160 * time.Millisecond, Attack: 5 * time.Millisecond, Release: 90 * time.Millisecond, Volume: 0.4}, true
	}
	return Tone{}, false
}

// Stream builds the finite streamer for the tone
func (t Tone) Stream(rate beep.SampleRate) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("sine %.0fHz: %w", t.Freq, err)
	}
	return fade(sine, rate.N(t.Duration), rate.N(t.Attack), rate.N(t.Release), vmath.Clamp01(t.Volume)), nil
}

// fade plays total samples of s scaled by gain with half-cosine ramps at both ends
// Ramps longer than the tone are shortened, attack first
func fade(s beep.Streamer, total, attack, release int, gain float64) beep.Streamer {
	total = max(total, 0)
	attack = min(max(attack, 0), total)
	release = min(max(release, 0), total-attack)

	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		if left := total - pos; len(samples) > left {
			samples = samples[:left]
		}
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			g := gain * ramp(pos, attack) * ramp(total-pos, release)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok && pos < total
	})
}

// ramp rises from 0 to 1 over width samples, 1 beyond
func ramp(pos, width int) float64 {
	if width <= 0 || pos >= width {
		return 1
	}
	return 0.5 - 0.5*math.Cos(math.Pi*float64(pos)/float64(width))
}
