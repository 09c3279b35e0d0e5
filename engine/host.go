package engine

import "github.com/lixenwraith/reef-arcade/event"

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Host,Game

// Host is the shell an engine reports to
type Host interface {
	// OnComplete is called exactly once, after a terminal state is dismissed
	OnComplete(score int)
	// OnUnlockAchievement is fire-and-forget; the host de-duplicates by id
	OnUnlockAchievement(id, title, icon string)
}

// HostFuncs adapts plain functions to Host; nil fields are skipped
type HostFuncs struct {
	Complete func(score int)
	Unlock   func(id, title, icon string)
}

func (h HostFuncs) OnComplete(score int) {
	if h.Complete != nil {
		h.Complete(score)
	}
}

func (h HostFuncs) OnUnlockAchievement(id, title, icon string) {
	if h.Unlock != nil {
		h.Unlock(id, title, icon)
	}
}

// Game is the surface a session drives; both engines satisfy it
type Game interface {
	// Advance runs one fixed tick
	Advance()
	// Drain returns and clears pending events
	Drain() []event.Event
	// Terminal reports WIN, FAIL or GAMEOVER
	Terminal() bool
	// Score is the value reported through OnComplete
	Score() int
}
