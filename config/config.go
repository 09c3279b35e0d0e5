// Package config resolves run settings from defaults, a TOML file and the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/reef-arcade/audio"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/survival"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "REEF_ARCADE_"

// Mode selects which engine a run drives
type Mode string

const (
	ModePuzzle   Mode = "puzzle"
	ModeSurvival Mode = "survival"
)

// Spectator feed encodings
const (
	FormatMsgpack = "msgpack"
	FormatJSON    = "json"
)

var (
	ErrInvalidMode     = errors.New("config: mode must be puzzle or survival")
	ErrInvalidLevel    = errors.New("config: puzzle level must be at least 1")
	ErrInvalidTheme    = errors.New("config: unknown survival theme")
	ErrInvalidTickRate = errors.New("config: tick rate must be between 1 and 240")
	ErrInvalidVolume   = errors.New("config: master volume must be within [0, 1]")
	ErrInvalidFormat   = errors.New("config: spectate format must be msgpack or json")
)

type Puzzle struct {
	Level int `toml:"level"`
}

type Survival struct {
	// Theme is one of survival.Themes; empty picks one at random
	Theme string `toml:"theme"`
}

type Log struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

type Spectate struct {
	// Addr enables the spectator feed when non-empty, e.g. ":8080"
	Addr   string `toml:"addr"`
	Format string `toml:"format"`
}

// Config is the resolved run configuration
type Config struct {
	Mode     Mode         `toml:"mode"`
	Seed     uint64       `toml:"seed"` // 0 seeds from the clock
	TickRate int          `toml:"tick_rate"`
	Puzzle   Puzzle       `toml:"puzzle"`
	Survival Survival     `toml:"survival"`
	Audio    audio.Config `toml:"audio"`
	Log      Log          `toml:"log"`
	Spectate Spectate     `toml:"spectate"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Mode:     ModeSurvival,
		TickRate: parameter.TickRate,
		Puzzle:   Puzzle{Level: 1},
		Audio:    audio.DefaultConfig(),
		Log:      Log{Dir: "logs"},
		Spectate: Spectate{Format: FormatMsgpack},
	}
}

// Load layers the TOML file at path (optional) and environment overrides over Default
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadFile decodes path over the current values; unknown keys are rejected
func (c *Config) LoadFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config: %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overrides fields from REEF_ARCADE_* variables through lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	num := func(key string, set func(string) error) {
		if v, ok := lookup(EnvPrefix + key); ok {
			if err := set(v); err != nil {
				errs = append(errs, fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err))
			}
		}
	}

	var mode string
	str("MODE", &mode)
	if mode != "" {
		c.Mode = Mode(mode)
	}
	str("THEME", &c.Survival.Theme)
	str("LOG_DIR", &c.Log.Dir)
	str("SPECTATE_ADDR", &c.Spectate.Addr)
	str("SPECTATE_FORMAT", &c.Spectate.Format)

	num("LEVEL", func(v string) (err error) { c.Puzzle.Level, err = strconv.Atoi(v); return })
	num("TICK_RATE", func(v string) (err error) { c.TickRate, err = strconv.Atoi(v); return })
	num("SEED", func(v string) (err error) { c.Seed, err = strconv.ParseUint(v, 10, 64); return })
	num("DEBUG", func(v string) (err error) { c.Log.Debug, err = strconv.ParseBool(v); return })
	num("AUDIO", func(v string) (err error) { c.Audio.Enabled, err = strconv.ParseBool(v); return })
	num("VOLUME", func(v string) (err error) { c.Audio.MasterVolume, err = strconv.ParseFloat(v, 64); return })

	return errors.Join(errs...)
}

// Validate reports every out-of-range value at once
func (c Config) Validate() error {
	var errs []error
	if c.Mode != ModePuzzle && c.Mode != ModeSurvival {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode))
	}
	if c.Puzzle.Level < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidLevel, c.Puzzle.Level))
	}
	if c.Survival.Theme != "" && !slices.Contains(survival.Themes, c.Survival.Theme) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTheme, c.Survival.Theme))
	}
	if c.TickRate < 1 || c.TickRate > 240 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidTickRate, c.TickRate))
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("%w: %g", ErrInvalidVolume, c.Audio.MasterVolume))
	}
	if c.Spectate.Format != FormatMsgpack && c.Spectate.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Spectate.Format))
	}
	return errors.Join(errs...)
}
