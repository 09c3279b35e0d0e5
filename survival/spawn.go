package survival

import (
	"math"

	"github.com/lixenwraith/reef-arcade/event"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/physics"
	"github.com/lixenwraith/reef-arcade/status"
	"github.com/lixenwraith/reef-arcade/vmath"
)

// bossCycle runs the INACTIVE/ACTIVE encounter state machine
// An escaped boss respawns on the next tick while the level stays on a boss gate
func (e *Engine) bossCycle() {
	s := &e.state
	if s.Boss.Active {
		s.Boss.Remaining--
		if s.Boss.Remaining <= 0 {
			e.bossEscape()
		}
		return
	}
	if s.Level > 0 && s.Level%parameter.BossLevelInterval == 0 {
		e.spawnBoss()
	}
}

func (e *Engine) spawnBoss() {
	s := &e.state
	kept := s.Actors[:0]
	for _, a := range s.Actors {
		if a.Kind != ActorMob {
			kept = append(kept, a)
		}
	}
	s.Actors = kept

	hp := float64(s.Level) * parameter.BossHPPerLevel
	s.Actors = append(s.Actors, Actor{
		ID:    s.newID(),
		Kind:  ActorBoss,
		Pos:   s.Player.Add(vmath.V(parameter.SpawnRadius, 0)),
		HP:    hp,
		MaxHP: hp,
		Scale: parameter.BossScale,
		Speed: parameter.BossSpeed,
	})
	s.Boss = Boss{Active: true, Remaining: parameter.BossDurationTicks}

	e.events.Push(event.Event{Type: event.EventBossSpawn, Payload: s.Level})
	e.events.Sound(event.CueZap)
	e.log.Debug("boss spawned", "level", s.Level, "hp", hp)
}

// bossEscape removes a surviving boss and charges 20% of current HP
func (e *Engine) bossEscape() {
	s := &e.state
	lost := s.HP * parameter.BossEscapeLoss
	s.HP -= lost
	kept := s.Actors[:0]
	for _, a := range s.Actors {
		if a.Kind != ActorBoss {
			kept = append(kept, a)
		}
	}
	s.Actors = kept
	s.Boss.Active = false
	s.Boss.Remaining = 0

	e.popup(s.Player, "BOSS ESCAPED")
	e.events.Push(event.Event{Type: event.EventBossEscape, Payload: lost})
	e.events.Sound(event.CueError)
	e.log.Debug("boss escaped", "level", s.Level, "hp_lost", lost)
}

func (e *Engine) spawnCap() int {
	return parameter.SpawnCapBase + parameter.SpawnCapPerLevel*e.state.Level
}

// spawn places mobs on the ring around the player, plus the occasional chest
func (e *Engine) spawn() {
	s := &e.state
	if s.Boss.Active || len(s.Actors) >= e.spawnCap() {
		return
	}
	if vmath.Chance(e.rng, parameter.SpawnChance) {
		angle := e.rng.Float64() * 2 * math.Pi
		hp := float64(s.Level) * parameter.MobHPPerLevel
		s.Actors = append(s.Actors, Actor{
			ID:      s.newID(),
			Kind:    ActorMob,
			Species: e.rng.Intn(parameter.MobSpecies),
			Pos:     s.Player.Add(vmath.FromAngle(angle, parameter.SpawnRadius)),
			HP:      hp,
			MaxHP:   hp,
			Scale:   1,
			Speed:   parameter.MobBaseSpeed + e.rng.Float64(),
		})
	}
	if len(s.Actors) < e.spawnCap() && vmath.Chance(e.rng, parameter.ChestChance) {
		angle := e.rng.Float64() * 2 * math.Pi
		s.Actors = append(s.Actors, Actor{
			ID:    s.newID(),
			Kind:  ActorChest,
			Pos:   s.Player.Add(vmath.FromAngle(angle, parameter.SpawnRadius/2)),
			HP:    parameter.ChestHP,
			MaxHP: parameter.ChestHP,
			Scale: 1.5,
		})
	}
}

// steerActors applies knockback, seeks the player and drains HP on contact
func (e *Engine) steerActors() {
	s := &e.state
	for i := range s.Actors {
		a := &s.Actors[i]
		a.Pos = a.Knockback.Integrate(a.Pos, parameter.KnockbackDecay)
		if a.Kind == ActorChest {
			continue
		}
		a.Pos = physics.Steer(a.Pos, s.Player, a.Speed)
		if physics.Within(a.Pos, s.Player, parameter.ContactRadius) {
			s.HP -= parameter.ContactDrain
		}
	}
}

// cleanup removes dead actors and drops their rewards exactly once
func (e *Engine) cleanup() {
	s := &e.state
	var dead []Actor
	kept := s.Actors[:0]
	for _, a := range s.Actors {
		if a.HP > 0 {
			kept = append(kept, a)
		} else {
			dead = append(dead, a)
		}
	}
	s.Actors = kept

	for _, a := range dead {
		e.metrics.Inc(status.SurvivalKills)
		e.events.Push(event.Event{Type: event.EventKill, Payload: event.Kill{ID: a.ID, Kind: a.Kind.String()}})
		switch a.Kind {
		case ActorBoss:
			s.Boss.Active = false
			s.Boss.Remaining = 0
			e.metrics.Inc(status.SurvivalBosses)
			e.events.Push(event.Event{Type: event.EventAchievement, Payload: event.Achievement{
				ID: "boss_kill", Title: "Boss Killer", Icon: "💀",
			}})
			e.log.Debug("boss defeated", "level", s.Level)
			e.offer(parameter.BossOfferSize, PhaseBossReward)
		case ActorChest:
			s.Gems = append(s.Gems, Gem{ID: s.newID(), Pos: a.Pos, Value: parameter.ChestGemValue})
		default:
			s.Gems = append(s.Gems, Gem{ID: s.newID(), Pos: a.Pos, Value: 1})
		}
	}
}
