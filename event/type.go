package event

// Type represents the type of engine event
type Type int

const (
	// EventSound requests cue playback
	// Trigger: any engine operation with audible feedback
	// Consumer: audio.Player | Payload: Cue
	EventSound Type = iota

	// EventAchievement signals an unlocked achievement, fire-and-forget
	// Trigger: hard board win, boss kill
	// Consumer: Host.OnUnlockAchievement | Payload: Achievement
	EventAchievement

	// EventTerminal signals the run reached WIN, FAIL or GAMEOVER
	// Trigger: puzzle status change, player death
	// Consumer: Session (arms dismissal) | Payload: Terminal
	EventTerminal

	// EventRejected reports an invalid player action that changed nothing
	// Trigger: blocked pick, depleted tool, action while paused
	// Consumer: HUD | Payload: error
	EventRejected

	// === Puzzle Event ===

	// EventMatch reports a cleared triplet
	// Trigger: Board.Pick | Payload: string (symbol)
	EventMatch

	// EventRefillPrompt asks the host to offer a tool refill
	// Trigger: UseTool on a depleted counter | Payload: string (tool name)
	EventRefillPrompt

	// EventRevive reports the slot rescue
	// Trigger: Board.Revive | Payload: nil
	EventRevive

	// === Survival Event ===

	// EventUpgradeOffer pauses the simulation for an upgrade choice
	// Trigger: XP threshold, boss kill | Payload: int (option count)
	EventUpgradeOffer

	// EventKill reports an actor removal with drop
	// Trigger: collision resolution | Payload: Kill
	EventKill

	// EventBossSpawn reports boss cycle entry
	// Trigger: level gate | Payload: int (level)
	EventBossSpawn

	// EventBossEscape reports countdown expiry with the boss alive
	// Trigger: boss timer | Payload: float64 (HP lost)
	EventBossEscape
)

var typeNames = [...]string{
	EventSound:        "sound",
	EventAchievement:  "achievement",
	EventTerminal:     "terminal",
	EventRejected:     "rejected",
	EventMatch:        "match",
	EventRefillPrompt: "refill_prompt",
	EventRevive:       "revive",
	EventUpgradeOffer: "upgrade_offer",
	EventKill:         "kill",
	EventBossSpawn:    "boss_spawn",
	EventBossEscape:   "boss_escape",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Event is a single engine notification
type Event struct {
	Type    Type
	Payload any
}

// Achievement is the payload of EventAchievement
type Achievement struct {
	ID    string
	Title string
	Icon  string
}

// Outcome is the terminal result carried by EventTerminal
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeFail
	OutcomeGameOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeFail:
		return "fail"
	default:
		return "game_over"
	}
}

// Terminal is the payload of EventTerminal
type Terminal struct {
	Outcome Outcome
	Score   int
}

// Kill is the payload of EventKill
type Kill struct {
	ID   int
	Kind string
}
