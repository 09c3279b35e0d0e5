package puzzle

import (
	"slices"

	"github.com/lixenwraith/reef-arcade/event"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/status"
)

// Pick moves a tile from the board into the slot and resolves matches
// Rejections return a sentinel error and change nothing
func (b *Board) Pick(id string) error {
	if err := b.canPick(id); err != nil {
		return b.reject(err)
	}

	b.pushHistory()
	i := b.indexOf(id)
	t := b.tiles[i]
	b.tiles = slices.Delete(b.tiles, i, i+1)
	b.recomputeOcclusion()

	t.Blocked = false
	b.slot = append(b.slot, t)
	b.metrics.Inc(status.PuzzlePicks)
	b.events.Sound(event.CueClick)

	b.resolveMatch()
	b.evaluate()
	return nil
}

func (b *Board) canPick(id string) error {
	if b.status != StatusPlaying {
		return ErrNotPlaying
	}
	if len(b.slot) >= parameter.SlotCapacity {
		return ErrSlotFull
	}
	i := b.indexOf(id)
	if i < 0 {
		return ErrUnknownTile
	}
	if b.tiles[i].Blocked {
		return ErrTileBlocked
	}
	return nil
}

// resolveMatch clears the first three slot tiles of the first type reaching a triplet
func (b *Board) resolveMatch() {
	counts := make(map[string]int, len(b.slot))
	matched := ""
	for _, t := range b.slot {
		counts[t.Type]++
		if counts[t.Type] >= parameter.MatchSize {
			matched = t.Type
			break
		}
	}
	if matched == "" {
		return
	}

	removed := 0
	b.slot = slices.DeleteFunc(b.slot, func(t Tile) bool {
		if removed < parameter.MatchSize && t.Type == matched {
			removed++
			return true
		}
		return false
	})

	b.metrics.Inc(status.PuzzleMatches)
	b.events.Push(event.Event{Type: event.EventMatch, Payload: matched})
	b.events.Sound(event.CueMatch)
	b.log.Debug("triplet matched", "type", matched, "slot", len(b.slot), "board", len(b.tiles))
}

func (b *Board) evaluate() {
	switch {
	case len(b.tiles) == 0 && len(b.slot) == 0:
		b.status = StatusWin
		b.reward = b.tier.Reward
		b.events.Sound(event.CueSuccess)
		if b.tier.Name == TierHard.Name {
			b.events.Push(event.Event{Type: event.EventAchievement, Payload: event.Achievement{
				ID: "tile_master", Title: "Tile Master", Icon: "🏆",
			}})
		}
		b.events.Push(event.Event{Type: event.EventTerminal, Payload: event.Terminal{
			Outcome: event.OutcomeWin, Score: b.Score(),
		}})
		b.log.Debug("board cleared", "level", b.level, "gold", b.reward.Gold)
	case len(b.slot) >= parameter.SlotCapacity:
		b.status = StatusFail
		b.events.Sound(event.CueError)
		b.events.Push(event.Event{Type: event.EventTerminal, Payload: event.Terminal{
			Outcome: event.OutcomeFail,
		}})
		b.log.Debug("slot overflow", "level", b.level, "board", len(b.tiles))
	default:
		b.status = StatusPlaying
	}
}

// UseTool applies a tool and spends one use
func (b *Board) UseTool(t Tool) error {
	if t < 0 || t >= toolCount {
		return ErrUnknownTool
	}
	if b.status != StatusPlaying {
		return b.reject(ErrNotPlaying)
	}
	if b.tools[t] <= 0 {
		b.events.Push(event.Event{Type: event.EventRefillPrompt, Payload: t.String()})
		return b.reject(ErrToolDepleted)
	}

	var err error
	switch t {
	case ToolUndo:
		err = b.undo()
	case ToolRemove:
		err = b.forceRemove()
	case ToolShuffle:
		b.shuffle()
	}
	if err != nil {
		return b.reject(err)
	}

	b.tools[t]--
	b.metrics.Inc(status.PuzzleTools)
	b.log.Debug("tool used", "tool", t.String(), "left", b.tools[t])
	return nil
}

// undo restores the board and slot from before the latest pick
func (b *Board) undo() error {
	if len(b.history) == 0 {
		return ErrNothingToUndo
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.tiles = last.tiles
	b.slot = last.slot
	b.recomputeOcclusion()
	b.events.Sound(event.CueWhoosh)
	return nil
}

// forceRemove returns up to three slot tiles to the bottom row at layer 0
func (b *Board) forceRemove() error {
	if len(b.slot) == 0 {
		return ErrSlotEmpty
	}
	n := min(parameter.MatchSize, len(b.slot))
	for _, t := range b.slot[:n] {
		t.Layer = 0
		t.X = parameter.ReturnMinX + b.rng.Float64()*parameter.ReturnSpanX
		t.Y = parameter.ReturnRowY
		t.Z = parameter.ReturnZ
		b.tiles = append(b.tiles, t)
	}
	b.slot = slices.Delete(b.slot, 0, n)
	b.history = nil
	b.recomputeOcclusion()
	b.events.Sound(event.CueWhoosh)
	return nil
}

// shuffle re-randomizes every board tile uniformly, without center bias
func (b *Board) shuffle() {
	for i := range b.tiles {
		t := &b.tiles[i]
		t.X = parameter.BoardCenter + (b.rng.Float64()-0.5)*parameter.BoardSpread
		t.Y = parameter.BoardCenter + (b.rng.Float64()-0.5)*parameter.BoardSpread
		t.Layer = b.rng.Intn(parameter.ShuffleLayers)
		t.Z = t.Layer*parameter.LayerZStride + b.rng.Intn(parameter.ShuffleZJitter)
	}
	b.history = nil
	b.recomputeOcclusion()
	b.events.Sound(event.CueShuffle)
}

// Revive rescues a failed board by keeping the oldest slot tiles
func (b *Board) Revive() error {
	if b.status != StatusFail {
		return b.reject(ErrNotFailed)
	}
	if len(b.slot) > parameter.ReviveKeep {
		b.slot = b.slot[:parameter.ReviveKeep]
	}
	b.history = nil
	b.status = StatusPlaying
	b.events.Push(event.Event{Type: event.EventRevive})
	b.events.Sound(event.CueSuccess)
	b.log.Debug("board revived", "slot", len(b.slot))
	return nil
}

// Refill grants a tool use; called when the external refill flow completes
func (b *Board) Refill(t Tool) {
	if t < 0 || t >= toolCount {
		return
	}
	b.tools[t] += parameter.ToolRefillCount
}

func (b *Board) reject(err error) error {
	b.metrics.Inc(status.PuzzleRejected)
	b.events.Push(event.Event{Type: event.EventRejected, Payload: err})
	b.events.Sound(event.CueError)
	return err
}

// Advance is the per-tick hook; the board only changes on player actions
func (b *Board) Advance() {}

// Drain returns and clears pending events
func (b *Board) Drain() []event.Event { return b.events.Consume() }

// Terminal reports WIN or FAIL
func (b *Board) Terminal() bool { return b.status != StatusPlaying }

// Score is the gold reward on WIN, 0 otherwise
func (b *Board) Score() int {
	if b.status == StatusWin {
		return b.reward.Gold
	}
	return 0
}
