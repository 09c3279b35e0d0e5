package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-arcade/engine"
	"github.com/lixenwraith/reef-arcade/puzzle"
	"github.com/lixenwraith/reef-arcade/render"
	"github.com/lixenwraith/reef-arcade/spectate"
	"github.com/lixenwraith/reef-arcade/survival"
)

// mode adapts one engine to terminal input, rendering and the spectator feed
// Key and Mouse run on the input goroutine; the commands they return run on the loop
type mode interface {
	Game() engine.Game
	Key(ev *tcell.EventKey, now time.Time) engine.Command
	Mouse(ev *tcell.EventMouse) engine.Command
	Draw(ctx render.Context)
	Frame(session string) spectate.Frame
}

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight

	dirCount
)

var opposite = [dirCount]direction{dirDown, dirUp, dirRight, dirLeft}

// heldKeys emulates key-up events, which terminals never report:
// a direction stays held for a short window after its last press or auto-repeat
type heldKeys struct {
	mu     sync.Mutex
	window time.Duration
	last   [dirCount]time.Time
}

func newHeldKeys(window time.Duration) *heldKeys { return &heldKeys{window: window} }

// Press marks d held and releases its opposite so reversals are immediate
func (h *heldKeys) Press(d direction, now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[d] = now
	h.last[opposite[d]] = time.Time{}
}

// Release drops every held direction
func (h *heldKeys) Release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = [dirCount]time.Time{}
}

// Input sums the directions still inside the hold window
func (h *heldKeys) Input(now time.Time) survival.Input {
	h.mu.Lock()
	defer h.mu.Unlock()
	held := func(d direction) float64 {
		if !h.last[d].IsZero() && now.Sub(h.last[d]) <= h.window {
			return 1
		}
		return 0
	}
	return survival.Input{
		X: held(dirRight) - held(dirLeft),
		Y: held(dirDown) - held(dirUp),
	}
}

func keyDirection(ev *tcell.EventKey) (direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return dirUp, true
	case tcell.KeyDown:
		return dirDown, true
	case tcell.KeyLeft:
		return dirLeft, true
	case tcell.KeyRight:
		return dirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return dirUp, true
		case 's', 'S':
			return dirDown, true
		case 'a', 'A':
			return dirLeft, true
		case 'd', 'D':
			return dirRight, true
		}
	}
	return 0, false
}

// steeredGame feeds the held direction into every tick
type steeredGame struct {
	*survival.Engine
	held *heldKeys
	now  func() time.Time
}

func (g steeredGame) Advance() {
	g.Steer(g.held.Input(g.now()))
	g.Engine.Advance()
}

type survivalMode struct {
	eng  *survival.Engine
	held *heldKeys
	view *render.Orchestrator[survival.State]
	quit func()
	log  *slog.Logger
	now  func() time.Time
}

func (m *survivalMode) Game() engine.Game {
	return steeredGame{Engine: m.eng, held: m.held, now: m.now}
}

func (m *survivalMode) Key(ev *tcell.EventKey, now time.Time) engine.Command {
	if d, ok := keyDirection(ev); ok {
		m.held.Press(d, now)
		return nil
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		return func(s *engine.Session) {
			if err := s.Dismiss(); err == nil {
				m.quit()
			}
		}
	case tcell.KeyRune:
		if r := ev.Rune(); r >= '1' && r <= '4' {
			choice := int(r - '1')
			return func(*engine.Session) {
				if err := m.eng.ApplyUpgrade(choice); err != nil {
					m.log.Debug("upgrade ignored", "choice", choice, "error", err)
					return
				}
				m.held.Release()
			}
		}
	}
	return nil
}

func (m *survivalMode) Mouse(*tcell.EventMouse) engine.Command { return nil }

func (m *survivalMode) Draw(ctx render.Context) {
	snap := m.eng.Snapshot()
	ctx.Tick = snap.Tick
	m.view.RenderFrame(ctx, &snap)
}

func (m *survivalMode) Frame(session string) spectate.Frame {
	snap := m.eng.Snapshot()
	return spectate.Frame{Session: session, Mode: "survival", Tick: snap.Tick, Survival: &snap}
}

type puzzleMode struct {
	board  *puzzle.Board
	view   *render.Orchestrator[puzzle.Snapshot]
	size   func() (int, int)
	quit   func()
	log    *slog.Logger
	frames uint64

	// Loop goroutine state
	selected string
	notice   string
	prompt   *puzzle.Tool

	// Input goroutine state
	mouseDown bool
}

func (m *puzzleMode) Game() engine.Game { return m.board }

func (m *puzzleMode) Key(ev *tcell.EventKey, _ time.Time) engine.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return m.move(0, -1)
	case tcell.KeyDown:
		return m.move(0, 1)
	case tcell.KeyLeft:
		return m.move(-1, 0)
	case tcell.KeyRight:
		return m.move(1, 0)
	case tcell.KeyTab:
		return func(*engine.Session) { m.cycle(1) }
	case tcell.KeyBacktab:
		return func(*engine.Session) { m.cycle(-1) }
	case tcell.KeyEnter:
		return m.confirm
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'u':
			return m.tool(puzzle.ToolUndo)
		case 'r':
			return m.tool(puzzle.ToolRemove)
		case 's':
			return m.tool(puzzle.ToolShuffle)
		case 'a':
			return m.refill
		case 'v':
			return func(*engine.Session) { m.report(m.board.Revive()) }
		case 'n':
			return m.nextLevel
		}
	}
	return nil
}

// Mouse picks the topmost tile under the pointer on button press
func (m *puzzleMode) Mouse(ev *tcell.EventMouse) engine.Command {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.mouseDown
	m.mouseDown = down
	if !pressed {
		return nil
	}
	x, y := ev.Position()
	return func(*engine.Session) {
		w, h := m.size()
		t, ok := render.NewPuzzleLayout(w, h).TileAt(m.board.Snapshot().Tiles, x, y)
		if !ok {
			return
		}
		m.selected = t.ID
		m.report(m.board.Pick(t.ID))
	}
}

// confirm picks the selection while playing and collects the result once terminal
func (m *puzzleMode) confirm(s *engine.Session) {
	if m.board.Status() == puzzle.StatusPlaying {
		m.ensureSelection()
		m.report(m.board.Pick(m.selected))
		return
	}
	if err := s.Dismiss(); err == nil {
		m.quit()
	}
}

func (m *puzzleMode) tool(t puzzle.Tool) engine.Command {
	return func(*engine.Session) {
		err := m.board.UseTool(t)
		if errors.Is(err, puzzle.ErrToolDepleted) {
			m.prompt = &t
			m.notice = fmt.Sprintf("out of %s: [a] watch an ad for one more", t)
			return
		}
		m.report(err)
	}
}

// refill grants the most recently depleted tool through the ad collaborator
func (m *puzzleMode) refill(*engine.Session) {
	if m.prompt == nil {
		return
	}
	m.board.Refill(*m.prompt)
	m.log.Info("tool refilled", "tool", m.prompt.String())
	m.prompt = nil
	m.notice = ""
}

func (m *puzzleMode) nextLevel(s *engine.Session) {
	if m.board.Status() != puzzle.StatusWin {
		return
	}
	if err := s.Dismiss(); err != nil {
		m.log.Warn("dismiss before next level", "error", err)
		return
	}
	m.board.InitLevel(m.board.Level() + 1)
	if err := s.Renew(); err != nil {
		m.log.Error("session renew", "error", err)
	}
	m.selected, m.notice, m.prompt = "", "", nil
}

func (m *puzzleMode) report(err error) {
	if err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
}

// ensureSelection keeps the cursor on a pickable tile, defaulting to the topmost
func (m *puzzleMode) ensureSelection() {
	pickable := m.board.Pickable()
	for _, t := range pickable {
		if t.ID == m.selected {
			return
		}
	}
	m.selected = ""
	if len(pickable) > 0 {
		m.selected = pickable[len(pickable)-1].ID
	}
}

func (m *puzzleMode) cycle(step int) {
	pickable := m.board.Pickable()
	if len(pickable) == 0 {
		return
	}
	m.ensureSelection()
	for i, t := range pickable {
		if t.ID == m.selected {
			m.selected = pickable[(i+step+len(pickable))%len(pickable)].ID
			return
		}
	}
}

// move jumps to the nearest pickable tile whose offset points along dx, dy
func (m *puzzleMode) move(dx, dy float64) engine.Command {
	return func(*engine.Session) {
		m.ensureSelection()
		pickable := m.board.Pickable()
		var cur puzzle.Tile
		for _, t := range pickable {
			if t.ID == m.selected {
				cur = t
			}
		}
		best, bestScore := "", math.Inf(1)
		for _, t := range pickable {
			ox, oy := t.X-cur.X, t.Y-cur.Y
			along := ox*dx + oy*dy
			if t.ID == cur.ID || along <= 0 {
				continue
			}
			// Penalize sideways drift so straight moves win over diagonals
			across := math.Abs(ox*dy - oy*dx)
			if score := along + 2*across; score < bestScore {
				best, bestScore = t.ID, score
			}
		}
		if best != "" {
			m.selected = best
		}
	}
}

func (m *puzzleMode) Draw(ctx render.Context) {
	m.frames++
	m.ensureSelection()
	snap := m.board.Snapshot()
	ctx.Tick = m.frames
	ctx.Selected = m.selected
	ctx.Notice = m.notice
	m.view.RenderFrame(ctx, &snap)
}

func (m *puzzleMode) Frame(session string) spectate.Frame {
	snap := m.board.Snapshot()
	return spectate.Frame{Session: session, Mode: "puzzle", Tick: m.frames, Puzzle: &snap}
}
