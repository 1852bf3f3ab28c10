// Package audio synthesises the game's sound cues with beep and plays
// them through the system speaker.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation. rng feeds
// the noise wave and may be nil for tonal waves.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rng,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay ramps gain exponentially from 1 to 0.01 over the stream length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

// NewDecay shapes s with an exponential fade over duration.
func NewDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		if d.position < d.total {
			gain = math.Pow(0.01, float64(d.position)/float64(d.total))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// lowpass is a one-pole low-pass filter.
type lowpass struct {
	streamer beep.Streamer
	alpha    float64
	prev     [2]float64
}

// NewLowpass filters s above cutoff Hz.
func NewLowpass(s beep.Streamer, cutoff float64, rate beep.SampleRate) beep.Streamer {
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / float64(rate)
	return &lowpass{streamer: s, alpha: dt / (rc + dt)}
}

func (l *lowpass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = l.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			l.prev[c] += l.alpha * (samples[i][c] - l.prev[c])
			samples[i][c] = l.prev[c]
		}
	}
	return n, ok
}

func (l *lowpass) Err() error { return l.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero volume is
// rendered silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// delayed starts s after offset of silence.
func delayed(s beep.Streamer, offset time.Duration, rate beep.SampleRate) beep.Streamer {
	if offset <= 0 {
		return s
	}
	return beep.Seq(beep.Silence(rate.N(offset)), s)
}
