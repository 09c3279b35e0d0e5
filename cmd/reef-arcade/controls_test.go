package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-arcade/engine"
	"github.com/lixenwraith/reef-arcade/puzzle"
	"github.com/lixenwraith/reef-arcade/render"
	"github.com/lixenwraith/reef-arcade/survival"
	"github.com/lixenwraith/reef-arcade/vmath"
)

var quietLog = slog.New(slog.NewTextHandler(io.Discard, nil))

func runeKey(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func TestHeldKeysWindow(t *testing.T) {
	h := newHeldKeys(200 * time.Millisecond)
	t0 := time.Unix(100, 0)

	h.Press(dirRight, t0)
	h.Press(dirUp, t0.Add(50*time.Millisecond))
	if in := h.Input(t0.Add(100 * time.Millisecond)); in.X != 1 || in.Y != -1 {
		t.Errorf("input = %+v, want diagonal up-right", in)
	}
	if in := h.Input(t0.Add(220 * time.Millisecond)); in.X != 0 || in.Y != -1 {
		t.Errorf("input = %+v, want right expired", in)
	}
	if in := h.Input(t0.Add(time.Second)); in != (survival.Input{}) {
		t.Errorf("input = %+v, want released", in)
	}
}

func TestHeldKeysReversal(t *testing.T) {
	h := newHeldKeys(time.Second)
	t0 := time.Unix(0, 0)
	h.Press(dirLeft, t0)
	h.Press(dirRight, t0.Add(time.Millisecond))
	if in := h.Input(t0.Add(2 * time.Millisecond)); in.X != 1 {
		t.Errorf("input = %+v, want immediate reversal", in)
	}
	h.Release()
	if in := h.Input(t0.Add(3 * time.Millisecond)); in != (survival.Input{}) {
		t.Errorf("input after release = %+v", in)
	}
}

func TestKeyDirection(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want direction
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), dirUp},
		{runeKey('s'), dirDown},
		{runeKey('A'), dirLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), dirRight},
	}
	for _, tt := range tests {
		if got, ok := keyDirection(tt.ev); !ok || got != tt.want {
			t.Errorf("keyDirection(%v) = %v, %v", tt.ev.Name(), got, ok)
		}
	}
	if _, ok := keyDirection(runeKey('x')); ok {
		t.Error("x mapped to a direction")
	}
}

func TestSteeredGameUsesHeldInput(t *testing.T) {
	held := newHeldKeys(time.Hour)
	now := time.Unix(10, 0)
	eng := survival.New(survival.WithRand(vmath.NewFastRand(3)), survival.WithTheme("void"))
	m := &survivalMode{eng: eng, held: held, quit: func() {}, log: quietLog, now: func() time.Time { return now }}

	if cmd := m.Key(runeKey('d'), now); cmd != nil {
		t.Fatal("direction key produced a command")
	}
	start := eng.Snapshot().Player
	m.Game().Advance()
	if got := eng.Snapshot().Player; got.X <= start.X {
		t.Errorf("player x %v -> %v, want moved right", start.X, got.X)
	}
}

func TestSurvivalUpgradeKeyWithoutOffer(t *testing.T) {
	eng := survival.New(survival.WithRand(vmath.NewFastRand(3)))
	m := &survivalMode{eng: eng, held: newHeldKeys(time.Second), quit: func() {}, log: quietLog, now: time.Now}
	cmd := m.Key(runeKey('2'), time.Now())
	if cmd == nil {
		t.Fatal("digit key produced no command")
	}
	s := engine.NewSession(m.Game(), engine.HostFuncs{})
	cmd(s)
	if eng.Phase() != survival.PhasePlaying {
		t.Errorf("phase = %v", eng.Phase())
	}
}

func newPuzzleMode(t *testing.T) (*puzzleMode, *engine.Session, *bool) {
	t.Helper()
	board := puzzle.NewBoard(puzzle.WithRand(vmath.NewFastRand(11)))
	board.InitLevel(1)
	quitCalled := false
	m := &puzzleMode{
		board: board,
		size:  func() (int, int) { return 80, 30 },
		quit:  func() { quitCalled = true },
		log:   quietLog,
	}
	return m, engine.NewSession(board, engine.HostFuncs{}), &quitCalled
}

func TestPuzzleEnterPicksSelection(t *testing.T) {
	m, s, _ := newPuzzleMode(t)
	before := len(m.board.Snapshot().Tiles)
	m.Key(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), time.Now())(s)
	snap := m.board.Snapshot()
	if len(snap.Tiles) != before-1 || len(snap.Slot) != 1 {
		t.Errorf("tiles %d -> %d, slot %d", before, len(snap.Tiles), len(snap.Slot))
	}
	if m.notice != "" {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestPuzzleCycleVisitsPickable(t *testing.T) {
	m, s, _ := newPuzzleMode(t)
	pickable := m.board.Pickable()
	if len(pickable) < 2 {
		t.Skip("seed produced fewer than two pickable tiles")
	}
	m.ensureSelection()
	first := m.selected
	m.Key(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), time.Now())(s)
	if m.selected == first {
		t.Error("tab did not move the selection")
	}
	m.Key(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), time.Now())(s)
	if m.selected != first {
		t.Errorf("backtab = %s, want %s", m.selected, first)
	}
}

func TestPuzzleDepletedToolPromptsRefill(t *testing.T) {
	m, s, _ := newPuzzleMode(t)
	shuffle := m.Key(runeKey('s'), time.Now())
	shuffle(s)
	if m.board.Tools()[puzzle.ToolShuffle] != 0 {
		t.Fatalf("tools = %v", m.board.Tools())
	}
	shuffle(s)
	if m.prompt == nil || *m.prompt != puzzle.ToolShuffle || m.notice == "" {
		t.Fatalf("prompt = %v notice = %q", m.prompt, m.notice)
	}
	m.Key(runeKey('a'), time.Now())(s)
	if m.board.Tools()[puzzle.ToolShuffle] != 1 || m.prompt != nil {
		t.Errorf("refill: tools = %v prompt = %v", m.board.Tools(), m.prompt)
	}
}

func TestPuzzleRejectionSetsNotice(t *testing.T) {
	m, s, _ := newPuzzleMode(t)
	m.Key(runeKey('u'), time.Now())(s)
	if m.notice != puzzle.ErrNothingToUndo.Error() {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestPuzzleMouseClickPicksTopmost(t *testing.T) {
	m, s, _ := newPuzzleMode(t)
	snap := m.board.Snapshot()
	layout := render.NewPuzzleLayout(80, 30)

	// Any free tile that is also the topmost one drawn at its own center
	var top puzzle.Tile
	found := false
	for _, tile := range snap.Tiles {
		r := layout.TileRect(tile)
		if hit, ok := layout.TileAt(snap.Tiles, r.CenterX(), r.CenterY()); ok && hit.ID == tile.ID && !tile.Blocked {
			top, found = tile, true
		}
	}
	if !found {
		t.Skip("no free tile is uncovered on screen for this seed")
	}
	r := layout.TileRect(top)
	x, y := r.CenterX(), r.CenterY()

	press := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
	cmd := m.Mouse(press)
	if cmd == nil {
		t.Fatal("press produced no command")
	}
	if m.Mouse(press) != nil {
		t.Error("held button produced a second pick")
	}
	cmd(s)
	if m.selected != top.ID {
		t.Errorf("selected = %s, want %s", m.selected, top.ID)
	}
	if m.board.Snapshot().Slot[0].ID != top.ID {
		t.Error("topmost tile was not picked")
	}
	m.Mouse(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	if m.mouseDown {
		t.Error("release not tracked")
	}
}

func TestPuzzleEnterOnTerminalDismissesAndQuits(t *testing.T) {
	m, s, quit := newPuzzleMode(t)
	enter := m.Key(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), time.Now())

	// Fill the slot with unmatched picks until the board fails or runs out of moves
	for m.board.Status() == puzzle.StatusPlaying && len(m.board.Pickable()) > 0 {
		enter(s)
	}
	if m.board.Status() == puzzle.StatusPlaying {
		t.Skip("board blocked before reaching a terminal state")
	}
	enter(s)
	if !s.Done() || !*quit {
		t.Errorf("done = %v quit = %v", s.Done(), *quit)
	}
}
