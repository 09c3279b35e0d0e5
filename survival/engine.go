package survival

import (
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/lixenwraith/reef-arcade/event"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/status"
	"github.com/lixenwraith/reef-arcade/vmath"
)

// Themes are the cosmetic map palettes; they never affect simulation
var Themes = []string{"grassland", "desert", "ice_field", "lava", "abyss", "toxic_swamp", "void"}

// Engine owns one survival run
// Not safe for concurrent use; the host loop serializes all calls
type Engine struct {
	state State
	input Input

	rng     vmath.Rand
	log     *slog.Logger
	metrics *status.Registry
	events  event.Queue
}

type Option func(*Engine)

func WithRand(r vmath.Rand) Option { return func(e *Engine) { e.rng = r } }

func WithLogger(l *slog.Logger) Option { return func(e *Engine) { e.log = l } }

func WithMetrics(r *status.Registry) Option { return func(e *Engine) { e.metrics = r } }

// WithTheme selects the map palette; empty picks one at random
func WithTheme(name string) Option { return func(e *Engine) { e.state.Theme = name } }

// New creates an engine with a fresh run
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, o := range opts {
		o(e)
	}
	if e.rng == nil {
		e.rng = vmath.NewTimeRand()
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if e.metrics == nil {
		e.metrics = status.NewRegistry()
	}
	e.Reset()
	return e
}

// Reset starts a new run keeping the configured theme
func (e *Engine) Reset() {
	theme := e.state.Theme
	if theme == "" {
		theme = Themes[e.rng.Intn(len(Themes))]
	}
	e.state = State{
		Theme:    theme,
		Facing:   1,
		HP:       parameter.PlayerStartHP,
		MaxHP:    parameter.PlayerStartHP,
		XPNext:   parameter.StartXPNext,
		Level:    1,
		Phase:    PhasePlaying,
		Weapons:  []Slot{{Kind: Bubble, Level: 1}},
		LastFire: make(map[Kind]uint64),
	}
	e.input = Input{}
	e.events.Consume()
	e.log.Debug("survival run started", "theme", theme)
}

// Steer sets the held direction used by Advance
func (e *Engine) Steer(in Input) { e.input = in }

// Advance runs one tick with the held direction
func (e *Engine) Advance() { e.Step(e.input) }

// Step runs one fixed tick; ignored while paused or over
func (e *Engine) Step(in Input) {
	s := &e.state
	if s.Phase.Paused() {
		return
	}
	s.Tick++
	e.metrics.Inc(status.SurvivalTicks)

	e.move(in)
	e.bossCycle()
	e.spawn()
	e.steerActors()
	if s.HP <= 0 {
		e.gameOver()
		return
	}
	e.pulseOrbitals()
	e.fireWeapons()
	e.updateProjectiles()
	e.cleanup()
	e.collectGems()
	e.decay()

	e.metrics.Gauges.Get(status.SurvivalActors).Set(float64(len(s.Actors)))
	e.metrics.Gauges.Get(status.SurvivalProjectiles).Set(float64(len(s.Projectiles)))
}

// move scrolls the world beneath the player; diagonals are normalized
func (e *Engine) move(in Input) {
	dir := vmath.V(vmath.Clamp(in.X, -1, 1), vmath.Clamp(in.Y, -1, 1))
	if dir.IsZero() {
		return
	}
	if dir.LenSq() > 1 {
		dir = dir.Normalize()
	}
	e.state.Player = e.state.Player.Add(dir.Scale(parameter.PlayerSpeed))
	if f := vmath.Sign(dir.X); f != 0 {
		e.state.Facing = f
	}
}

func (e *Engine) gameOver() {
	s := &e.state
	s.HP = 0
	s.Phase = PhaseGameOver
	e.events.Sound(event.CueExplosion)
	e.events.Push(event.Event{Type: event.EventTerminal, Payload: event.Terminal{
		Outcome: event.OutcomeGameOver, Score: s.Score(),
	}})
	e.log.Debug("run over", "level", s.Level, "tick", s.Tick)
}

func (e *Engine) popup(pos vmath.Vec2, text string) {
	e.state.Popups = append(e.state.Popups, Popup{Pos: pos, Text: text, Life: parameter.PopupTicks})
}

// decay ages hit feedback and floating text
func (e *Engine) decay() {
	s := &e.state
	for i := range s.Actors {
		if s.Actors[i].Flash > 0 {
			s.Actors[i].Flash--
		}
	}
	s.Popups = slices.DeleteFunc(s.Popups, func(p Popup) bool { return p.Life <= 1 })
	for i := range s.Popups {
		s.Popups[i].Life--
		s.Popups[i].Pos.Y -= parameter.PopupRise
	}
}

// Phase returns the lifecycle state
func (e *Engine) Phase() Phase { return e.state.Phase }

// Snapshot deep-copies the run state
func (e *Engine) Snapshot() State {
	s := e.state
	s.Weapons = slices.Clone(s.Weapons)
	s.Offer = slices.Clone(s.Offer)
	s.Actors = slices.Clone(s.Actors)
	s.Projectiles = slices.Clone(s.Projectiles)
	s.Gems = slices.Clone(s.Gems)
	s.Popups = slices.Clone(s.Popups)
	s.LastFire = maps.Clone(s.LastFire)
	return s
}

// Drain returns and clears pending events
func (e *Engine) Drain() []event.Event { return e.events.Consume() }

// Terminal reports GAMEOVER
func (e *Engine) Terminal() bool { return e.state.Phase == PhaseGameOver }

// Score is level reached times ScorePerLevel
func (e *Engine) Score() int { return e.state.Score() }
