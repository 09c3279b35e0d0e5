package survival

import (
	"math"
	"slices"
	"strconv"

	"github.com/lixenwraith/reef-arcade/event"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/physics"
	"github.com/lixenwraith/reef-arcade/vmath"
)

// target returns the nearest live actor within TargetRadius, or -1
func (e *Engine) target() int {
	s := &e.state
	pts := make([]vmath.Vec2, len(s.Actors))
	for i := range s.Actors {
		pts[i] = s.Actors[i].Pos
	}
	return physics.Nearest(s.Player, pts, parameter.TargetRadius, func(i int) bool {
		return s.Actors[i].HP <= 0
	})
}

// damage applies a hit to a live actor; HP only decreases so HP <= MaxHP holds
func (e *Engine) damage(a *Actor, amount float64) {
	a.HP -= amount
	a.Flash = parameter.FlashTicks
	s := &e.state
	if s.Tick-s.LastHitCue >= parameter.HitCueTicks {
		s.LastHitCue = s.Tick
		e.events.Sound(event.CueEnemyHit)
	}
}

// pulseOrbitals damages everything inside each orbital's radius every interval
func (e *Engine) pulseOrbitals() {
	s := &e.state
	if s.Tick-s.LastOrbital < parameter.OrbitalIntervalTicks {
		return
	}
	s.LastOrbital = s.Tick
	for _, w := range s.Weapons {
		if specs[w.Kind].Category != CategoryOrbital {
			continue
		}
		r := w.OrbitRadius()
		for i := range s.Actors {
			a := &s.Actors[i]
			if a.HP <= 0 || !physics.Within(a.Pos, s.Player, r) {
				continue
			}
			e.damage(a, w.Damage())
			a.Knockback.Vel = physics.Outward(s.Player, a.Pos, parameter.OrbitalKnockback)
		}
	}
}

// fireWeapons gives each non-orbital slot an independent firing decision
func (e *Engine) fireWeapons() {
	s := &e.state
	for _, w := range s.Weapons {
		if specs[w.Kind].Category == CategoryOrbital {
			continue
		}
		if last, ok := s.LastFire[w.Kind]; ok && float64(s.Tick-last) <= w.CooldownTicks() {
			continue
		}
		if e.fire(w) {
			s.LastFire[w.Kind] = s.Tick
		}
	}
}

// fire runs one archetype's pattern; false when it needed a target and had none
func (e *Engine) fire(w Slot) bool {
	s := &e.state
	spec := specs[w.Kind]
	ti := e.target()

	switch spec.Category {
	case CategoryChain:
		if ti < 0 {
			return false
		}
		a := &s.Actors[ti]
		e.damage(a, w.Damage())
		e.popup(a.Pos, "⚡")
		e.events.Sound(event.CueZap)

	case CategoryArea:
		pos := s.Player
		if w.Kind == Meteor && ti >= 0 {
			pos = s.Actors[ti].Pos
		}
		e.launch(w, pos, vmath.Vec2{}, 0)

	case CategoryRadial:
		angle := e.rng.Float64() * 2 * math.Pi
		e.launch(w, s.Player, vmath.FromAngle(angle, spec.Speed), angle)
		e.events.Sound(event.CueWhoosh)

	case CategorySpread:
		if ti < 0 {
			return false
		}
		base := s.Actors[ti].Pos.Sub(s.Player).Angle()
		n := 3 + w.Level
		for i := 0; i < n; i++ {
			angle := base + parameter.SpreadArc*((float64(i)-float64(n)/2)/float64(n))
			e.launch(w, s.Player, vmath.FromAngle(angle, spec.Speed), angle)
		}
		e.events.Sound(event.CueShoot)

	case CategoryBurst:
		n := 4 + w.Level
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			e.launch(w, s.Player, vmath.FromAngle(angle, spec.Speed), angle)
		}
		e.events.Sound(event.CueWhoosh)

	case CategoryDirected:
		if ti < 0 {
			return false
		}
		vel := physics.Aim(s.Player, s.Actors[ti].Pos, spec.Speed)
		if w.Kind == Axe {
			vel.Y -= parameter.AxeLift
		}
		e.launch(w, s.Player, vel, vel.Angle())
		e.events.Sound(event.CueShoot)
	}
	return true
}

func (e *Engine) launch(w Slot, pos, vel vmath.Vec2, angle float64) {
	s := &e.state
	spec := specs[w.Kind]
	s.Projectiles = append(s.Projectiles, Projectile{
		ID:     s.newID(),
		Kind:   w.Kind,
		Pos:    pos,
		Vel:    vel,
		Life:   spec.Life,
		Max:    spec.Life,
		Damage: w.Damage(),
		Pierce: spec.Pierce,
		Angle:  angle,
	})
}

// updateProjectiles moves, ages and resolves every projectile, then drops the spent ones
func (e *Engine) updateProjectiles() {
	s := &e.state
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		switch p.Kind {
		case Boomerang:
			if p.Life < p.Max/2 {
				p.Vel = p.Vel.Add(physics.Aim(p.Pos, s.Player, parameter.BoomerangReturn))
			}
		case Axe:
			p.Vel.Y += parameter.AxeGravity
		case BlackHole:
			for j := range s.Actors {
				a := &s.Actors[j]
				if physics.Within(a.Pos, p.Pos, parameter.BlackHolePullRadius) {
					a.Knockback.Vel = p.Pos.Sub(a.Pos).Scale(parameter.BlackHolePull)
				}
			}
		}
		p.Pos = p.Pos.Add(p.Vel)
		switch {
		case p.Kind == Axe || p.Kind == BlackHole || specs[p.Kind].Category == CategoryRadial:
			p.Angle += parameter.SpinRate
		case !p.Vel.IsZero():
			p.Angle = p.Vel.Angle()
		}

		p.Life--
		e.resolveHits(p)
	}
	s.Projectiles = slices.DeleteFunc(s.Projectiles, func(p Projectile) bool { return p.Life <= 0 })
}

// resolveHits tests one projectile against every live actor
func (e *Engine) resolveHits(p *Projectile) {
	s := &e.state
	spec := specs[p.Kind]
	r := HitRadius(p.Kind)
	exploded := false

	for j := range s.Actors {
		a := &s.Actors[j]
		if a.HP <= 0 || !physics.Within(a.Pos, p.Pos, r) {
			continue
		}

		if spec.Hit == HitImpact {
			e.damage(a, p.Damage*parameter.ImpactFactor)
			p.Life = 0
			e.popup(a.Pos, "💥")
			exploded = true
			continue
		}
		if p.Life <= 0 {
			continue
		}

		switch spec.Hit {
		case HitLinger:
			if vmath.Chance(e.rng, parameter.LingerChance) {
				dmg := p.Damage * parameter.LingerFactor
				e.damage(a, dmg)
				e.popup(a.Pos, strconv.Itoa(int(dmg)))
			}
		case HitContact:
			e.damage(a, p.Damage)
		default:
			e.damage(a, p.Damage)
			if p.Pierce > 0 {
				p.Pierce--
				if p.Pierce <= 0 {
					p.Life = 0
				}
			} else {
				p.Life = 0
			}
			a.Knockback.Vel = p.Vel.Scale(parameter.ProjectileKnockback)
			e.popup(a.Pos, strconv.Itoa(int(p.Damage)))
		}
	}
	if exploded {
		e.events.Sound(event.CueExplosion)
	}
}
