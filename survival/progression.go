package survival

import (
	"math"

	"github.com/lixenwraith/reef-arcade/event"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/physics"
	"github.com/lixenwraith/reef-arcade/status"
)

// collectGems pulls nearby gems in and banks the ones reached
// A triggered level-up freezes the remaining gems until the next running tick
func (e *Engine) collectGems() {
	s := &e.state
	kept := s.Gems[:0]
	for _, g := range s.Gems {
		if s.Phase != PhasePlaying {
			kept = append(kept, g)
			continue
		}
		if physics.Within(g.Pos, s.Player, parameter.GemAttractRadius) {
			g.Pos = physics.Attract(g.Pos, s.Player, parameter.GemAttract)
		}
		if !physics.Within(g.Pos, s.Player, parameter.GemPickupRadius) {
			kept = append(kept, g)
			continue
		}
		s.XP += g.Value
		e.metrics.Inc(status.SurvivalGems)
		if s.XP >= s.XPNext {
			s.XP = 0
			e.offer(parameter.LevelOfferSize, PhaseLevelUp)
		}
	}
	s.Gems = kept
}

// offer samples n archetypes uniformly, repeats allowed, and pauses the run
func (e *Engine) offer(n int, phase Phase) {
	s := &e.state
	opts := make([]Choice, n)
	for i := range opts {
		k := Kind(e.rng.Intn(int(KindCount)))
		lvl := 1
		if idx := s.weapon(k); idx >= 0 {
			lvl = s.Weapons[idx].Level + 1
		}
		opts[i] = Choice{Kind: k, Level: lvl}
	}
	s.Offer = opts
	s.Phase = phase
	e.events.Push(event.Event{Type: event.EventUpgradeOffer, Payload: n})
	e.events.Sound(event.CueLevelUp)
	e.log.Debug("upgrade offered", "phase", phase.String(), "options", n, "level", s.Level)
}

// ApplyUpgrade resolves a pending offer and resumes the simulation
func (e *Engine) ApplyUpgrade(i int) error {
	s := &e.state
	if s.Phase != PhaseLevelUp && s.Phase != PhaseBossReward {
		return ErrNoOffer
	}
	if i < 0 || i >= len(s.Offer) {
		return ErrOptionRange
	}

	o := s.Offer[i]
	if idx := s.weapon(o.Kind); idx >= 0 {
		s.Weapons[idx].Level++
	} else {
		s.Weapons = append(s.Weapons, Slot{Kind: o.Kind, Level: 1})
	}
	s.Level++
	s.XPNext = int(math.Floor(float64(s.XPNext) * parameter.XPGrowth))
	s.XP = 0
	s.Offer = nil
	s.Phase = PhasePlaying

	e.events.Sound(event.CueSuccess)
	e.log.Debug("upgrade applied", "weapon", o.Kind.String(), "level", s.Level, "xp_next", s.XPNext)
	return nil
}
