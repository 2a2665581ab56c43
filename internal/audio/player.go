package audio

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/skyland/internal/core"
)

// ErrNoDevice is returned by Init when the speaker cannot be opened.
var ErrNoDevice = errors.New("audio: no output device")

// Player plays cues through a single mixer attached to the speaker.
// Until Init succeeds, and after Close, Play is a no-op.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
}

var _ core.CuePlayer = (*Player)(nil)

// NewPlayer creates a player. Call Init to open the device.
func NewPlayer(cfg Config, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Init opens the speaker. A disabled config is not an error; the player
// simply stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	sr := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio ready", "sample_rate", p.cfg.SampleRate, "volume", p.cfg.MasterVolume)
	return nil
}

// Enabled reports whether cues are audible.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play starts a cue and returns immediately.
func (p *Player) Play(cue core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Synthesize(cue, p.cfg)
	if s == nil {
		p.logger.Warn("unknown cue", "cue", cue)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all cues and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
