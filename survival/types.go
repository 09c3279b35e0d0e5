package survival

import (
	"errors"

	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/physics"
	"github.com/lixenwraith/reef-arcade/vmath"
)

var (
	ErrNoOffer     = errors.New("survival: no upgrade offer pending")
	ErrOptionRange = errors.New("survival: upgrade option out of range")
	ErrNotPlaying  = errors.New("survival: simulation is not running")
)

// ActorKind distinguishes hostile actors
type ActorKind int

const (
	ActorMob ActorKind = iota
	ActorBoss
	ActorChest
)

func (k ActorKind) String() string {
	switch k {
	case ActorMob:
		return "mob"
	case ActorBoss:
		return "boss"
	case ActorChest:
		return "chest"
	}
	return "unknown"
}

// Actor is a mob, boss or chest in world coordinates
type Actor struct {
	ID        int             `msgpack:"id" json:"id"`
	Kind      ActorKind       `msgpack:"kind" json:"kind"`
	Species   int             `msgpack:"species" json:"species"`
	Pos       vmath.Vec2      `msgpack:"pos" json:"pos"`
	HP        float64         `msgpack:"hp" json:"hp"`
	MaxHP     float64         `msgpack:"max_hp" json:"max_hp"`
	Scale     float64         `msgpack:"scale" json:"scale"`
	Speed     float64         `msgpack:"speed" json:"speed"`
	Flash     int             `msgpack:"flash" json:"flash"` // Ticks of hit feedback left
	Knockback physics.Kinetic `msgpack:"-" json:"-"`
}

// Flashing reports active hit feedback
func (a *Actor) Flashing() bool { return a.Flash > 0 }

// Projectile is a travelling shot or a stationary area effect
type Projectile struct {
	ID     int        `msgpack:"id" json:"id"`
	Kind   Kind       `msgpack:"kind" json:"kind"`
	Pos    vmath.Vec2 `msgpack:"pos" json:"pos"`
	Vel    vmath.Vec2 `msgpack:"vel" json:"vel"`
	Life   int        `msgpack:"life" json:"life"`
	Max    int        `msgpack:"max" json:"max"`
	Damage float64    `msgpack:"damage" json:"damage"`
	Pierce int        `msgpack:"pierce" json:"pierce"` // 0 = not piercing
	Angle  float64    `msgpack:"angle" json:"angle"`
}

// Gem is an experience pickup
type Gem struct {
	ID    int        `msgpack:"id" json:"id"`
	Pos   vmath.Vec2 `msgpack:"pos" json:"pos"`
	Value int        `msgpack:"value" json:"value"`
}

// Popup is floating feedback text in world coordinates
type Popup struct {
	Pos  vmath.Vec2 `msgpack:"pos" json:"pos"`
	Text string     `msgpack:"text" json:"text"`
	Life int        `msgpack:"life" json:"life"`
}

// Phase is the run lifecycle state
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseLevelUp
	PhaseBossReward
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseLevelUp:
		return "level_up"
	case PhaseBossReward:
		return "boss_reward"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Paused reports whether Step is ignored
func (p Phase) Paused() bool { return p != PhasePlaying }

// Boss tracks the boss encounter state machine
type Boss struct {
	Active    bool `msgpack:"active" json:"active"`
	Remaining int  `msgpack:"remaining" json:"remaining"` // Countdown ticks
}

// Choice is one upgrade offer entry
type Choice struct {
	Kind  Kind `msgpack:"kind" json:"kind"`
	Level int  `msgpack:"level" json:"level"` // Level the slot will have once applied
}

// Input is one tick of directional intent; components in [-1, 1]
type Input struct {
	X, Y float64
}

// State is the complete, serializable run state
type State struct {
	Theme  string     `msgpack:"theme" json:"theme"`
	Player vmath.Vec2 `msgpack:"player" json:"player"` // World position; the view centers here
	Facing int        `msgpack:"facing" json:"facing"` // -1 left, 1 right
	HP     float64    `msgpack:"hp" json:"hp"`
	MaxHP  float64    `msgpack:"max_hp" json:"max_hp"`
	XP     int        `msgpack:"xp" json:"xp"`
	XPNext int        `msgpack:"xp_next" json:"xp_next"`
	Level  int        `msgpack:"level" json:"level"`
	Phase  Phase      `msgpack:"phase" json:"phase"`
	Boss   Boss       `msgpack:"boss" json:"boss"`
	Tick   uint64     `msgpack:"tick" json:"tick"`

	Weapons     []Slot       `msgpack:"weapons" json:"weapons"`
	Offer       []Choice     `msgpack:"offer" json:"offer"`
	Actors      []Actor      `msgpack:"actors" json:"actors"`
	Projectiles []Projectile `msgpack:"projectiles" json:"projectiles"`
	Gems        []Gem        `msgpack:"gems" json:"gems"`
	Popups      []Popup      `msgpack:"popups" json:"popups"`

	// LastFire holds the tick each weapon last fired; absent fires immediately
	LastFire    map[Kind]uint64 `msgpack:"last_fire" json:"-"`
	LastOrbital uint64          `msgpack:"last_orbital" json:"-"`
	LastHitCue  uint64          `msgpack:"last_hit_cue" json:"-"`
	NextID      int             `msgpack:"next_id" json:"-"`
}

// Offset is the world scroll applied beneath the fixed player
func (s *State) Offset() vmath.Vec2 { return s.Player.Neg() }

// Score reports the final score as a function of level reached
func (s *State) Score() int { return s.Level * parameter.ScorePerLevel }

func (s *State) weapon(k Kind) int {
	for i, w := range s.Weapons {
		if w.Kind == k {
			return i
		}
	}
	return -1
}

func (s *State) newID() int {
	s.NextID++
	return s.NextID
}
