package audio

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/reef-arcade/event"
)

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays cues; implementations never block the caller
type Player interface {
	Play(c event.Cue)
}

// Nop discards every cue
type Nop struct{}

func (Nop) Play(event.Cue) {}

var ErrDisabled = errors.New("audio: disabled by configuration")

// Manager mixes cues onto the system speaker
type Manager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	log         *slog.Logger
	initialized bool
}

func NewManager(cfg Config, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{cfg: cfg, mixer: &beep.Mixer{}, log: log}
}

// Init opens the speaker; callers fall back to Nop on error
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.cfg.Enabled {
		return ErrDisabled
	}
	if m.initialized {
		return nil
	}
	rate := beep.SampleRate(m.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	m.log.Debug("audio initialized", "sample_rate", m.cfg.SampleRate)
	return nil
}

// Play queues a cue onto the mixer
func (m *Manager) Play(c event.Cue) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s := Build(c, m.cfg)
	if s == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Close silences and releases the speaker
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}

// Open returns a speaker-backed player, or Nop when audio is unavailable
func Open(cfg Config, log *slog.Logger) (Player, func()) {
	m := NewManager(cfg, log)
	if err := m.Init(); err != nil {
		if !errors.Is(err, ErrDisabled) {
			m.log.Warn("audio unavailable, continuing silent", "error", err)
		}
		return Nop{}, func() {}
	}
	return m, m.Close
}
