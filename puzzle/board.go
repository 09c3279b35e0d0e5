package puzzle

import (
	"io"
	"log/slog"
	"slices"
	"strconv"

	"github.com/lixenwraith/reef-arcade/event"
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/status"
	"github.com/lixenwraith/reef-arcade/vmath"
)

// Board is one puzzle run; all methods run on the owning goroutine
type Board struct {
	rng     vmath.Rand
	log     *slog.Logger
	metrics *status.Registry
	events  event.Queue

	level  int
	tier   Tier
	tiles  []Tile
	slot   []Tile
	tools  Tools
	status Status
	reward Reward

	// history holds pre-pick states for undo
	history []move
}

type move struct {
	tiles []Tile
	slot  []Tile
}

// Option configures a Board
type Option func(*Board)

func WithRand(r vmath.Rand) Option { return func(b *Board) { b.rng = r } }

func WithLogger(l *slog.Logger) Option { return func(b *Board) { b.log = l } }

func WithMetrics(r *status.Registry) Option { return func(b *Board) { b.metrics = r } }

// NewBoard creates an empty board; call InitLevel before play
func NewBoard(opts ...Option) *Board {
	b := &Board{}
	for _, o := range opts {
		o(b)
	}
	if b.rng == nil {
		b.rng = vmath.NewTimeRand()
	}
	if b.log == nil {
		b.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if b.metrics == nil {
		b.metrics = status.NewRegistry()
	}
	return b
}

// InitLevel generates a fresh board for the level's tier and resets all run state
func (b *Board) InitLevel(level int) {
	tier := TierFor(level)
	b.level = level
	b.tier = tier

	types := b.sampleTypes(tier.Types)

	deck := make([]string, 0, tier.Triplets*parameter.MatchSize)
	for i := 0; i < tier.Triplets; i++ {
		t := types[b.rng.Intn(len(types))]
		deck = append(deck, t, t, t)
	}
	for i := len(deck) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}

	b.tiles = make([]Tile, len(deck))
	for i, t := range deck {
		layer := b.rng.Intn(tier.Layers)
		spread := parameter.BoardSpread - float64(layer)*parameter.BoardSpreadPerLayer
		b.tiles[i] = Tile{
			ID:    "t-" + strconv.Itoa(i),
			Type:  t,
			Layer: layer,
			X:     parameter.BoardCenter + (b.rng.Float64()-0.5)*spread,
			Y:     parameter.BoardCenter + (b.rng.Float64()-0.5)*spread,
			Z:     layer*parameter.LayerZStride + i,
		}
	}

	b.slot = b.slot[:0]
	b.history = nil
	for i := range b.tools {
		b.tools[i] = parameter.ToolStartCount
	}
	b.status = StatusPlaying
	b.reward = Reward{}
	b.recomputeOcclusion()

	b.log.Debug("puzzle level initialized", "level", level, "tier", tier.Name, "tiles", len(b.tiles))
}

// sampleTypes draws n distinct symbols without replacement
func (b *Board) sampleTypes(n int) []string {
	pool := slices.Clone(Alphabet[:])
	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + b.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// recomputeOcclusion marks every tile covered by a strictly higher overlapping tile
// O(n²); n stays under 200
func (b *Board) recomputeOcclusion() {
	for i := range b.tiles {
		a := &b.tiles[i]
		a.Blocked = false
		pa := vmath.V(a.X, a.Y)
		for j := range b.tiles {
			o := &b.tiles[j]
			if o.Layer <= a.Layer {
				continue
			}
			if overlaps(pa, vmath.V(o.X, o.Y)) {
				a.Blocked = true
				break
			}
		}
	}
}

func (b *Board) indexOf(id string) int {
	for i := range b.tiles {
		if b.tiles[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) pushHistory() {
	b.history = append(b.history, move{
		tiles: slices.Clone(b.tiles),
		slot:  slices.Clone(b.slot),
	})
}

// Status returns the lifecycle state
func (b *Board) Status() Status { return b.status }

// Level returns the current level index
func (b *Board) Level() int { return b.level }

// Tools returns the tool counters
func (b *Board) Tools() Tools { return b.tools }

// Reward returns the currency granted by a WIN, zero otherwise
func (b *Board) Reward() Reward { return b.reward }

// Snapshot copies the board for rendering; tiles are in draw order
func (b *Board) Snapshot() Snapshot {
	tiles := slices.Clone(b.tiles)
	slices.SortStableFunc(tiles, func(x, y Tile) int { return x.Z - y.Z })
	return Snapshot{
		Level:  b.level,
		Tier:   b.tier.Name,
		Tiles:  tiles,
		Slot:   slices.Clone(b.slot),
		Tools:  b.tools,
		Status: b.status,
		Reward: b.reward,
	}
}

// Pickable reports the unblocked tiles in draw order, topmost last
func (b *Board) Pickable() []Tile {
	var out []Tile
	for _, t := range b.Snapshot().Tiles {
		if !t.Blocked {
			out = append(out, t)
		}
	}
	return out
}
