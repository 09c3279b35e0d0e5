package puzzle

import (
	"errors"

	"github.com/lixenwraith/reef-arcade/parameter"
)

// Alphabet is the fixed ocean symbol set tiles draw their types from
var Alphabet = [...]string{
	"🐟", "🐠", "🐡", "🐙", "🐚",
	"🐳", "🐬", "🦀", "🦞", "🦐",
	"🦑", "🌿", "🐋", "🦈", "🫧",
}

// Rejected actions; the board is left untouched when any of these is returned
var (
	ErrUnknownTile   = errors.New("puzzle: unknown tile")
	ErrTileBlocked   = errors.New("puzzle: tile is blocked")
	ErrNotPlaying    = errors.New("puzzle: board is not playing")
	ErrSlotFull      = errors.New("puzzle: slot is full")
	ErrToolDepleted  = errors.New("puzzle: tool depleted")
	ErrSlotEmpty     = errors.New("puzzle: slot is empty")
	ErrNothingToUndo = errors.New("puzzle: nothing to undo")
	ErrNotFailed     = errors.New("puzzle: revive requires a failed board")
	ErrUnknownTool   = errors.New("puzzle: unknown tool")
)

// Tile is one stackable symbol on the board or in the slot
type Tile struct {
	ID      string  `msgpack:"id" json:"id"`
	Type    string  `msgpack:"type" json:"type"`
	Layer   int     `msgpack:"layer" json:"layer"`
	X       float64 `msgpack:"x" json:"x"`
	Y       float64 `msgpack:"y" json:"y"`
	Z       int     `msgpack:"z" json:"z"`
	Blocked bool    `msgpack:"blocked" json:"blocked"`
}

// Status is the board lifecycle state
type Status int

const (
	StatusPlaying Status = iota
	StatusWin
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWin:
		return "win"
	case StatusFail:
		return "fail"
	}
	return "unknown"
}

// Tool is a consumable board helper
type Tool int

const (
	ToolUndo Tool = iota
	ToolRemove
	ToolShuffle

	toolCount
)

func (t Tool) String() string {
	switch t {
	case ToolUndo:
		return "undo"
	case ToolRemove:
		return "remove"
	case ToolShuffle:
		return "shuffle"
	}
	return "unknown"
}

// Tools holds per-level tool counters indexed by Tool
type Tools [toolCount]int

// Tier selects generation size and reward
type Tier struct {
	Name     string
	Types    int
	Layers   int
	Triplets int
	Reward   Reward
}

// Reward is the currency granted on WIN
type Reward struct {
	Gold     int `msgpack:"gold" json:"gold"`
	Diamonds int `msgpack:"diamonds" json:"diamonds"`
}

var (
	TierTutorial = Tier{
		Name:     "tutorial",
		Types:    parameter.TutorialTypes,
		Layers:   parameter.TutorialLayers,
		Triplets: parameter.TutorialTriplets,
		Reward:   Reward{Gold: parameter.TutorialRewardGold, Diamonds: parameter.TutorialRewardDiamonds},
	}
	TierHard = Tier{
		Name:     "hard",
		Types:    parameter.HardTypes,
		Layers:   parameter.HardLayers,
		Triplets: parameter.HardTriplets,
		Reward:   Reward{Gold: parameter.HardRewardGold, Diamonds: parameter.HardRewardDiamonds},
	}
)

// TierFor maps a level index to its tier; level 1 is the tutorial
func TierFor(level int) Tier {
	if level <= 1 {
		return TierTutorial
	}
	return TierHard
}

// Snapshot is a read-only copy of the board for renderers and tests
type Snapshot struct {
	Level  int    `msgpack:"level" json:"level"`
	Tier   string `msgpack:"tier" json:"tier"`
	Tiles  []Tile `msgpack:"tiles" json:"tiles"` // Sorted by Z ascending (draw order)
	Slot   []Tile `msgpack:"slot" json:"slot"`
	Tools  Tools  `msgpack:"tools" json:"tools"`
	Status Status `msgpack:"status" json:"status"`
	Reward Reward `msgpack:"reward" json:"reward"` // Zero until WIN
}
