package survival

import (
	"time"

	"github.com/lixenwraith/reef-arcade/parameter"
)

// Kind is one of the fixed weapon archetypes
type Kind int

const (
	Bubble Kind = iota
	Garlic
	Hoop
	Book
	Axe
	Lightning
	Boomerang
	Satellite
	Fireball
	IceShard
	MagicWand
	Shotgun
	Mine
	Laser
	Dagger
	HolyWater
	Cross
	Shield
	Bow
	Poison
	Tesla
	Tornado
	Meteor
	Scythe
	Turret
	BlackHole

	KindCount
)

// Category selects the firing pattern of an archetype
type Category int

const (
	CategoryOrbital Category = iota
	CategoryChain
	CategoryArea
	CategoryRadial
	CategorySpread
	CategoryBurst
	CategoryDirected
)

// HitMode selects how a projectile resolves contact with actors
type HitMode int

const (
	// HitStandard deals full damage once per contact and spends pierce
	HitStandard HitMode = iota
	// HitImpact deals double damage to everything in range then terminates
	HitImpact
	// HitLinger procs half damage at a fixed per-tick chance and persists
	HitLinger
	// HitContact deals full damage every tick without spending itself
	HitContact
)

// Spec is the static definition of an archetype
type Spec struct {
	Name     string
	Icon     string
	Category Category
	Hit      HitMode
	Cooldown time.Duration
	Damage   float64 // Base damage, scaled by slot level
	Speed    float64
	Life     int // Ticks
	Pierce   int // 0 = none
	Area     bool
	Orbit    float64 // Orbital radius at level 1; 0 for non-orbitals
}

var specs = [KindCount]Spec{
	Bubble:    directed("bubble", "🫧", 500, 0, 0, 0),
	Garlic:    orbital("garlic", "🧄", 80),
	Hoop:      orbital("hoop", "⭕", 100),
	Book:      {Name: "book", Icon: "📖", Category: CategoryBurst, Cooldown: 1500 * time.Millisecond, Damage: 20, Speed: parameter.BookSpeed, Life: parameter.BookLife, Pierce: parameter.BookPierce},
	Axe:       directed("axe", "🪓", 1000, 5, 0, 5),
	Lightning: chain("lightning", "⚡", 2000),
	Boomerang: directed("boomerang", "🪃", 1200, 0, 100, 99),
	Satellite: orbital("satellite", "🛰", 120),
	Fireball:  directed("fireball", "🔥", 800, 0, 0, 0),
	IceShard:  directed("ice_shard", "❄", 600, 0, 0, 0),
	MagicWand: directed("magic_wand", "🪄", 400, 0, 0, 0),
	Shotgun:   {Name: "shotgun", Icon: "💥", Category: CategorySpread, Cooldown: 1500 * time.Millisecond, Damage: 15, Speed: parameter.SpreadSpeed, Life: parameter.SpreadLife, Pierce: parameter.DirectedPierce},
	Mine:      area("mine", "💣", 2000, HitImpact, false),
	Laser:     {Name: "laser", Icon: "🔦", Category: CategoryDirected, Hit: HitLinger, Cooldown: 2500 * time.Millisecond, Damage: 20, Speed: 25, Life: 30, Pierce: 8},
	Dagger:    directed("dagger", "🗡", 200, 0, 0, 0),
	HolyWater: area("holy_water", "💧", 3000, HitLinger, true),
	Cross:     directed("cross", "✝", 1500, 10, 0, 99),
	Shield:    orbital("shield", "🛡", 70),
	Bow:       directed("bow", "🏹", 1000, 15, 0, 2),
	Poison:    area("poison", "☠", 2000, HitLinger, true),
	Tesla:     chain("tesla", "🔌", 4000),
	Tornado:   radial("tornado", "🌪", 4000, 2),
	Meteor:    area("meteor", "☄", 5000, HitImpact, true),
	Scythe:    radial("scythe", "🌙", 2000, 1),
	Turret:    area("turret", "🗼", 8000, HitContact, false),
	BlackHole: area("black_hole", "🕳", 8000, HitLinger, true),
}

func orbital(name, icon string, radius float64) Spec {
	return Spec{Name: name, Icon: icon, Category: CategoryOrbital, Damage: 5, Orbit: radius}
}

func chain(name, icon string, cdMs int) Spec {
	return Spec{Name: name, Icon: icon, Category: CategoryChain, Cooldown: time.Duration(cdMs) * time.Millisecond, Damage: 50}
}

func area(name, icon string, cdMs int, hit HitMode, wide bool) Spec {
	return Spec{Name: name, Icon: icon, Category: CategoryArea, Hit: hit, Cooldown: time.Duration(cdMs) * time.Millisecond, Damage: 30, Life: parameter.AreaLife, Area: wide}
}

func radial(name, icon string, cdMs int, speed float64) Spec {
	return Spec{Name: name, Icon: icon, Category: CategoryRadial, Hit: HitLinger, Cooldown: time.Duration(cdMs) * time.Millisecond, Damage: 15, Speed: speed, Life: parameter.RadialLife, Pierce: parameter.FullPierce, Area: true}
}

// directed fills zero overrides with the single-shot defaults
func directed(name, icon string, cdMs int, speed float64, life, pierce int) Spec {
	if speed == 0 {
		speed = parameter.DirectedSpeed
	}
	if life == 0 {
		life = parameter.DirectedLife
	}
	if pierce == 0 {
		pierce = parameter.DirectedPierce
	}
	return Spec{Name: name, Icon: icon, Category: CategoryDirected, Cooldown: time.Duration(cdMs) * time.Millisecond, Damage: 20, Speed: speed, Life: life, Pierce: pierce}
}

// SpecOf returns the static definition of k
func SpecOf(k Kind) Spec { return specs[k] }

func (k Kind) String() string {
	if k >= 0 && k < KindCount {
		return specs[k].Name
	}
	return "unknown"
}

// Slot is an owned weapon at a level
type Slot struct {
	Kind  Kind `msgpack:"kind" json:"kind"`
	Level int  `msgpack:"level" json:"level"`
}

// Damage scales base damage linearly with level
func (s Slot) Damage() float64 {
	return specs[s.Kind].Damage * float64(s.Level)
}

// CooldownTicks converts the level-scaled cooldown into simulation ticks
func (s Slot) CooldownTicks() float64 {
	cd := specs[s.Kind].Cooldown.Seconds() * parameter.TickRate
	return cd / (1 + float64(s.Level-1)*parameter.CooldownLevelStep)
}

// OrbitRadius is the damage radius of an orbital at this level
func (s Slot) OrbitRadius() float64 {
	r := specs[s.Kind].Orbit
	if s.Kind == Garlic {
		r += 10 * float64(s.Level)
	}
	return r
}

// HitRadius is the collision radius for projectiles of kind k
func HitRadius(k Kind) float64 {
	if specs[k].Area {
		return parameter.AreaHitRadius
	}
	return parameter.HitRadius
}
