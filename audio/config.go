package audio

import "github.com/lixenwraith/reef-arcade/event"

// Config controls synthesis and playback
type Config struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"` // 0.0-1.0
	SampleRate   int                `toml:"sample_rate"`
	Effects      map[string]float64 `toml:"effects"` // Per-cue volume keyed by cue name
}

// DefaultConfig enables audio at a moderate level
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		Effects: map[string]float64{
			event.CueEnemyHit.String():  0.6,
			event.CueExplosion.String(): 0.8,
			event.CueWhoosh.String():    0.6,
		},
	}
}

// Volume returns the effective linear volume of a cue
func (c Config) Volume(cue event.Cue) float64 {
	v := 1.0
	if ev, ok := c.Effects[cue.String()]; ok {
		v = ev
	}
	return v * c.MasterVolume
}
