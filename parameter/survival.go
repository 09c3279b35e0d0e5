package parameter

// Player
const (
	// PlayerStartHP is the initial and maximum health
	PlayerStartHP = 100.0

	// PlayerSpeed is world scroll per tick under full input
	PlayerSpeed = 4.0

	// StartXPNext is the experience threshold at level 1
	StartXPNext = 20

	// XPGrowth multiplies the threshold on every level-up (floored)
	XPGrowth = 1.2

	// ContactRadius is the distance inside which an actor drains the player
	ContactRadius = 30.0

	// ContactDrain is HP lost per tick per touching actor
	ContactDrain = 0.2

	// ScorePerLevel converts reached level into final score
	ScorePerLevel = 100
)

// Spawner
const (
	// SpawnChance is the per-tick probability of a mob spawn
	SpawnChance = 0.1

	// SpawnRadius is the ring distance from the player where mobs appear
	SpawnRadius = 600.0

	// SpawnCapBase and SpawnCapPerLevel bound the live actor count
	SpawnCapBase     = 50
	SpawnCapPerLevel = 2

	// MobHPPerLevel scales mob health with character level
	MobHPPerLevel = 15.0

	// MobBaseSpeed plus a uniform [0,1) bonus is mob speed
	MobBaseSpeed = 1.0

	// ChestChance is the per-tick probability of a stationary chest spawn
	ChestChance = 0.002

	// ChestHP is chest health regardless of level
	ChestHP = 40.0

	// ChestGemValue is the experience value of a chest drop
	ChestGemValue = 5

	// MobSpecies is the number of cosmetic mob variants
	MobSpecies = 5
)

// Boss Cycle
const (
	// BossLevelInterval gates boss encounters to multiples of this level
	BossLevelInterval = 10

	// BossHPPerLevel scales boss health with character level
	BossHPPerLevel = 1000.0

	// BossScale is the boss size multiplier
	BossScale = 3.5

	// BossSpeed is boss steering speed per tick
	BossSpeed = 1.5

	// BossDurationTicks is the 60 second countdown at TickRate
	BossDurationTicks = 60 * TickRate

	// BossEscapeLoss is the fraction of current HP lost when the boss escapes
	BossEscapeLoss = 0.2

	// BossOfferSize is the option count of a boss reward
	BossOfferSize = 4

	// LevelOfferSize is the option count of a normal level-up
	LevelOfferSize = 3
)

// Combat
const (
	// TargetRadius bounds the nearest-actor search of directed weapons
	TargetRadius = 600.0

	// OrbitalIntervalTicks is the 200ms orbital damage pulse at TickRate
	OrbitalIntervalTicks = 12

	// OrbitalKnockback scales outward displacement into an impulse
	OrbitalKnockback = 0.1

	// KnockbackDecay multiplies knockback each tick
	KnockbackDecay = 0.8

	// ProjectileKnockback scales projectile velocity into an impulse
	ProjectileKnockback = 0.5

	// HitRadius is the collision radius of standard projectiles
	HitRadius = 30.0

	// AreaHitRadius is the collision radius of area effects
	AreaHitRadius = 80.0

	// LingerChance is the per-tick per-actor proc chance of lingering effects
	LingerChance = 0.1

	// LingerFactor scales lingering damage
	LingerFactor = 0.5

	// ImpactFactor scales impact damage
	ImpactFactor = 2.0

	// FlashTicks is how long an actor shows hit feedback
	FlashTicks = 6

	// CooldownLevelStep is the per-level cooldown reduction factor
	CooldownLevelStep = 0.2

	// BlackHolePullRadius and BlackHolePull define the gravity well
	BlackHolePullRadius = 150.0
	BlackHolePull       = 0.05

	// AxeGravity bends axe flight into an arc
	AxeGravity = 0.15

	// BoomerangReturn is the homing blend rate once a boomerang turns back
	BoomerangReturn = 0.5
)

// Pickups
const (
	// GemAttractRadius is the distance inside which gems drift toward the player
	GemAttractRadius = 150.0

	// GemAttract is the fraction of the gap closed per tick
	GemAttract = 0.15

	// GemPickupRadius is the collection distance
	GemPickupRadius = 20.0

	// PopupTicks is the lifetime of floating text
	PopupTicks = 30

	// PopupRise is the per-tick upward drift of floating text
	PopupRise = 1.0
)

// Weapon Flight
const (
	// DirectedSpeed, DirectedLife and DirectedPierce are single-shot defaults
	DirectedSpeed  = 8.0
	DirectedLife   = 60
	DirectedPierce = 1

	// AreaLife is the lifetime of dropped area effects (10s at TickRate)
	AreaLife = 600

	// RadialLife is the lifetime of random-direction burst projectiles
	RadialLife = 300

	// SpreadSpeed and SpreadLife shape shotgun pellets
	SpreadSpeed = 12.0
	SpreadLife  = 40

	// SpreadArc is the total angular fan of a shotgun volley (π/6)
	SpreadArc = 0.5235987755982988

	// BookSpeed, BookLife and BookPierce shape the radial book fan
	BookSpeed  = 5.0
	BookLife   = 100
	BookPierce = 3

	// AxeLift is the initial upward kick of a thrown axe
	AxeLift = 3.0

	// FullPierce marks projectiles that never expire on hits
	FullPierce = 999
)

// Feedback
const (
	// HitCueTicks throttles enemy-hit sounds to one per 50ms
	HitCueTicks = 3

	// SpinRate is the per-tick visual rotation of spinning projectiles
	SpinRate = 0.15
)
