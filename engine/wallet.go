package engine

import (
	"sync"

	"github.com/lixenwraith/reef-arcade/event"
)

// diamondDivisor converts a reported score into diamonds, rounding up
const diamondDivisor = 50

// Wallet is the shell-side Host: it banks currency and remembers achievements
type Wallet struct {
	mu           sync.Mutex
	gold         int
	diamonds     int
	achievements []event.Achievement
	seen         map[string]bool
}

func NewWallet() *Wallet {
	return &Wallet{seen: make(map[string]bool)}
}

// OnComplete grants gold equal to score and ceil(score/50) diamonds
func (w *Wallet) OnComplete(score int) {
	if score <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gold += score
	w.diamonds += (score + diamondDivisor - 1) / diamondDivisor
}

// OnUnlockAchievement records each id once
func (w *Wallet) OnUnlockAchievement(id, title, icon string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen[id] {
		return
	}
	w.seen[id] = true
	w.achievements = append(w.achievements, event.Achievement{ID: id, Title: title, Icon: icon})
}

// Balance returns banked currency
func (w *Wallet) Balance() (gold, diamonds int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gold, w.diamonds
}

// Achievements returns unlocked achievements in unlock order
func (w *Wallet) Achievements() []event.Achievement {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]event.Achievement, len(w.achievements))
	copy(out, w.achievements)
	return out
}
