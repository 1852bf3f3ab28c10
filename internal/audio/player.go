package audio

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/core-defense/internal/config"
	"github.com/vovakirdan/core-defense/internal/core"
)

// maxVoices caps simultaneous sounds; cues beyond it are dropped.
const maxVoices = 16

// Player plays sound cues on the local speaker. The zero value and a
// Player built from a disabled config are silent.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	rng         *rand.Rand
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before Play.
func NewPlayer(cfg config.AudioConfig) *Player {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	return &Player{
		cfg:   cfg,
		rate:  rate,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker. It is a no-op when audio is disabled.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the sound for cue.
func (p *Player) Play(cue core.Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Sound(cue, p.rate, p.rng)
	if s == nil {
		return
	}

	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(newVolume(s, p.cfg.MasterVolume))
	}
	speaker.Unlock()
}

// Close silences every queued sound.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
