package audio

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/core-defense/internal/config"
	"github.com/vovakirdan/core-defense/internal/core"
)

const testRate = beep.SampleRate(44100)

const chunk = 512

// render drains s into memory, stopping at limit samples.
func render(s beep.Streamer, limit int) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, chunk)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	return out
}

func rms(samples [][2]float64) float64 {
	var sum float64
	for _, s := range samples {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestOscillatorWaves(t *testing.T) {
	waves := []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise}
	for _, w := range waves {
		osc := NewOscillator(440, 50*time.Millisecond, w, testRate, rand.New(rand.NewSource(1)))
		samples := render(osc, testRate.N(time.Second))
		if len(samples) != testRate.N(50*time.Millisecond) {
			t.Errorf("wave %d: %d samples, want %d", w, len(samples), testRate.N(50*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d = %v out of range", w, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", w, osc.Err())
		}
	}
}

func TestDecayFadesOut(t *testing.T) {
	d := 100 * time.Millisecond
	s := NewDecay(NewOscillator(200, d, WaveSquare, testRate, nil), d, testRate)
	samples := render(s, testRate.N(time.Second))

	if math.Abs(samples[0][0]) != 1 {
		t.Errorf("first sample = %v, want full scale", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.011 {
		t.Errorf("last sample = %v, want faded to about 0.01", last)
	}
}

func TestLowpassAttenuatesHighFrequencies(t *testing.T) {
	d := 200 * time.Millisecond
	low := render(NewLowpass(NewOscillator(100, d, WaveSine, testRate, nil), 1000, testRate), testRate.N(time.Second))
	high := render(NewLowpass(NewOscillator(10000, d, WaveSine, testRate, nil), 1000, testRate), testRate.N(time.Second))

	if rms(high) > rms(low)*0.5 {
		t.Errorf("10 kHz rms %v not attenuated against 100 Hz rms %v", rms(high), rms(low))
	}
}

func TestSoundForEveryCue(t *testing.T) {
	tests := []struct {
		cue  core.Cue
		want time.Duration
	}{
		{core.CueShoot, 100 * time.Millisecond},
		{core.CueHit, 100 * time.Millisecond},
		{core.CueCrit, 150 * time.Millisecond},
		{core.CueExplosion, 300 * time.Millisecond},
		{core.CueCollect, 100 * time.Millisecond},
		{core.CueLevelUp, 600 * time.Millisecond},
		{core.CueChest, 800 * time.Millisecond},
		{core.CueBossAlarm, time.Second},
		{core.CueGameOver, time.Second},
	}
	if len(tests) != len(core.AllCues()) {
		t.Fatalf("table covers %d cues, want %d", len(tests), len(core.AllCues()))
	}

	rng := rand.New(rand.NewSource(7))
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := Sound(tt.cue, testRate, rng)
			if s == nil {
				t.Fatal("no sound")
			}
			samples := render(s, testRate.N(5*time.Second))
			want := testRate.N(tt.want)
			if len(samples) < want || len(samples) > want+chunk {
				t.Errorf("length = %d samples, want about %d", len(samples), want)
			}
			peak := 0.0
			for _, v := range samples {
				peak = math.Max(peak, math.Abs(v[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak = %v, want in (0, 1]", peak)
			}
		})
	}

	if Sound(core.CueNone, testRate, rng) != nil {
		t.Error("CueNone produced a sound")
	}
}

func TestVolumeZeroIsSilent(t *testing.T) {
	s := newVolume(NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate, nil), 0)
	for _, v := range render(s, testRate.N(time.Second)) {
		if v[0] != 0 {
			t.Fatalf("sample %v from silent volume", v)
		}
	}
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p := NewPlayer(config.AudioConfig{Enabled: false, MasterVolume: 1, SampleRate: 44100})
	if err := p.Init(); err != nil {
		t.Fatalf("Init() on disabled player: %v", err)
	}
	p.Play(core.CueExplosion)
	if p.mixer.Len() != 0 {
		t.Error("disabled player queued a sound")
	}
	p.Close()

	var nilPlayer *Player
	nilPlayer.Play(core.CueHit)
	nilPlayer.Close()
}
