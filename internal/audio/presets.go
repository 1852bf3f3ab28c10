package audio

import (
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/core-defense/internal/core"
)

// tone is a decaying oscillator at a fixed volume.
func tone(freq float64, wave WaveType, d time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(NewDecay(NewOscillator(freq, d, wave, rate, nil), d, rate), vol)
}

// noiseBurst is low-passed noise with the same decay.
func noiseBurst(d time.Duration, vol float64, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	n := NewOscillator(0, d, WaveNoise, rate, rng)
	return newVolume(NewDecay(NewLowpass(n, 1000, rate), d, rate), vol)
}

// arpeggio plays freqs one after another, each starting step after the
// previous one and ringing for d.
func arpeggio(freqs []float64, wave WaveType, step, d time.Duration, vol float64, rate beep.SampleRate) beep.Streamer {
	voices := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		voices[i] = delayed(tone(f, wave, d, vol, rate), time.Duration(i)*step, rate)
	}
	return beep.Mix(voices...)
}

// Sound builds the streamer for a cue at unit master volume. It returns
// nil for cues without a sound. rng provides pitch variation and noise.
func Sound(cue core.Cue, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch cue {
	case core.CueShoot:
		return tone(300+rng.Float64()*50, WaveTriangle, 100*time.Millisecond, 0.3, rate)
	case core.CueHit:
		return tone(100, WaveSquare, 100*time.Millisecond, 0.2, rate)
	case core.CueCrit:
		return tone(600, WaveSaw, 150*time.Millisecond, 0.3, rate)
	case core.CueExplosion:
		return noiseBurst(300*time.Millisecond, 0.5, rate, rng)
	case core.CueCollect:
		return tone(800+rng.Float64()*200, WaveSine, 100*time.Millisecond, 0.1, rate)
	case core.CueLevelUp:
		return arpeggio([]float64{440, 554, 659, 880}, WaveSquare, 100*time.Millisecond, 300*time.Millisecond, 0.2, rate)
	case core.CueChest:
		return arpeggio([]float64{1000, 1200, 1500}, WaveSine, 150*time.Millisecond, 500*time.Millisecond, 0.3, rate)
	case core.CueBossAlarm:
		return arpeggio([]float64{220, 165, 220, 165}, WaveSaw, 250*time.Millisecond, 250*time.Millisecond, 0.3, rate)
	case core.CueGameOver:
		return beep.Mix(
			tone(100, WaveSaw, time.Second, 0.5, rate),
			noiseBurst(500*time.Millisecond, 0.5, rate, rng),
		)
	default:
		return nil
	}
}
