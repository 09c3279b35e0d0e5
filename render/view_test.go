package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-arcade/puzzle"
	"github.com/lixenwraith/reef-arcade/survival"
	"github.com/lixenwraith/reef-arcade/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newScreen(t, 10, 2)
	o := NewOrchestrator[int](screen)
	var order []string
	rec := func(name string) Renderer[int] {
		return RendererFunc[int](func(Context, *int, *Buffer) { order = append(order, name) })
	}
	o.Register(rec("ui"), PriorityUI)
	o.Register(rec("bg"), PriorityBackground)
	o.Register(rec("ui2"), PriorityUI)
	o.Register(rec("fx"), PriorityEffects)

	v := 0
	o.RenderFrame(Context{}, &v)
	if got := strings.Join(order, ","); got != "bg,fx,ui,ui2" {
		t.Errorf("order = %s", got)
	}
}

func TestOrchestratorFollowsResize(t *testing.T) {
	screen := newScreen(t, 10, 4)
	o := NewOrchestrator[int](screen)
	var seen Context
	o.Register(RendererFunc[int](func(ctx Context, _ *int, _ *Buffer) { seen = ctx }), PriorityBackground)

	screen.SetSize(30, 12)
	v := 0
	o.RenderFrame(Context{}, &v)
	if seen.Width != 30 || seen.Height != 12 {
		t.Errorf("ctx size = %dx%d", seen.Width, seen.Height)
	}
	if w, h := o.Buffer().Bounds(); w != 30 || h != 12 {
		t.Errorf("buffer = %dx%d", w, h)
	}
}

func TestCameraProjectRoundTrip(t *testing.T) {
	cam := Camera{Center: vmath.V(100, -40), Width: 80, Height: 24}
	x, y, ok := cam.Project(cam.Center)
	if !ok || x != 40 || y != 12 {
		t.Fatalf("center projects to %d,%d,%v", x, y, ok)
	}
	w := cam.World(45, 3)
	if gx, gy, _ := cam.Project(w); gx != 45 || gy != 3 {
		t.Errorf("World/Project round trip = %d,%d", gx, gy)
	}
	if _, _, ok := cam.Project(cam.Center.Add(vmath.V(1000, 0))); ok {
		t.Error("far point reported visible")
	}
}

func baseState() survival.State {
	return survival.State{
		Theme:   "abyss",
		HP:      80,
		MaxHP:   100,
		XPNext:  20,
		Level:   1,
		Facing:  1,
		Weapons: []survival.Slot{{Kind: survival.Bubble, Level: 1}},
	}
}

func TestSurvivalViewDrawsPlayerAndHUD(t *testing.T) {
	screen := newScreen(t, 80, 24)
	view := NewSurvivalView(screen)
	s := baseState()
	view.RenderFrame(Context{}, &s)

	buf := view.Buffer()
	if got := buf.Get(40, 12).Rune; got != playerGlyph {
		t.Errorf("center rune = %q, want player", got)
	}
	if !strings.HasPrefix(strings.TrimSpace(rowText(buf, 0)), "LV 1") {
		t.Errorf("HUD row = %q", rowText(buf, 0))
	}
	if !strings.Contains(rowText(buf, 1), survival.SpecOf(survival.Bubble).Icon) {
		t.Errorf("weapon row = %q", rowText(buf, 1))
	}
}

func TestSurvivalViewBossPointerAndTimer(t *testing.T) {
	screen := newScreen(t, 80, 24)
	view := NewSurvivalView(screen)
	s := baseState()
	s.Boss = survival.Boss{Active: true, Remaining: 600}
	s.Actors = []survival.Actor{{ID: 1, Kind: survival.ActorBoss, Pos: vmath.V(2000, 0), HP: 10, MaxHP: 10}}
	view.RenderFrame(Context{}, &s)

	buf := view.Buffer()
	if !strings.Contains(rowText(buf, 0), "BOSS 10s") {
		t.Errorf("HUD row = %q", rowText(buf, 0))
	}
	found := false
	for x := 60; x < 80; x++ {
		if buf.Get(x, 12).Rune == '→' {
			found = true
		}
	}
	if !found {
		t.Errorf("no pointer on boss side: %q", rowText(buf, 12))
	}
}

func TestSurvivalViewOfferOverlay(t *testing.T) {
	screen := newScreen(t, 80, 24)
	view := NewSurvivalView(screen)
	s := baseState()
	s.Phase = survival.PhaseLevelUp
	s.Offer = []survival.Choice{{Kind: survival.Book, Level: 1}, {Kind: survival.Bubble, Level: 2}}
	view.RenderFrame(Context{}, &s)

	buf := view.Buffer()
	for _, want := range []string{"LEVEL UP", "1) ", "book", "NEW", "Lv2"} {
		if !screenContains(buf, want) {
			t.Errorf("overlay missing %q", want)
		}
	}
}

func TestSurvivalViewGameOver(t *testing.T) {
	screen := newScreen(t, 80, 24)
	view := NewSurvivalView(screen)
	s := baseState()
	s.Level = 4
	s.Phase = survival.PhaseGameOver
	view.RenderFrame(Context{Debug: true, Metrics: map[string]float64{"survival.kills": 3}}, &s)

	buf := view.Buffer()
	if !screenContains(buf, "GAME OVER") || !screenContains(buf, "score 400") {
		t.Error("game over panel missing")
	}
	if !strings.Contains(rowText(buf, 23), "survival.kills=3") {
		t.Errorf("debug row = %q", rowText(buf, 23))
	}
}

func TestPuzzleLayoutTileAtPrefersTopmost(t *testing.T) {
	layout := NewPuzzleLayout(80, 30)
	tiles := []puzzle.Tile{
		{ID: "low", X: 50, Y: 50, Z: 1},
		{ID: "high", X: 52, Y: 50, Z: 20},
		{ID: "far", X: 10, Y: 10, Z: 30},
	}
	r := layout.TileRect(tiles[0])
	got, ok := layout.TileAt(tiles, r.CenterX(), r.CenterY())
	if !ok || got.ID != "high" {
		t.Errorf("TileAt = %+v, %v; want high", got, ok)
	}
	if _, ok := layout.TileAt(tiles, 0, 0); ok {
		t.Error("TileAt found a tile in the header")
	}
}

func TestPuzzleViewSelectionAndResult(t *testing.T) {
	screen := newScreen(t, 80, 30)
	view := NewPuzzleView(screen)
	snap := puzzle.Snapshot{
		Level: 2,
		Tier:  "hard",
		Tiles: []puzzle.Tile{{ID: "t-0", Type: "🐟", X: 50, Y: 50}},
		Slot:  []puzzle.Tile{{ID: "t-1", Type: "🦀"}},
		Tools: puzzle.Tools{1, 0, 1},
	}
	view.RenderFrame(Context{Selected: "t-0", Notice: "puzzle: tile is blocked"}, &snap)

	buf := view.Buffer()
	r := NewPuzzleLayout(80, 30).TileRect(snap.Tiles[0])
	if got := buf.Get(r.X, r.CenterY()).Rune; got != '▶' {
		t.Errorf("selection marker = %q", got)
	}
	for _, want := range []string{"Level 2 (hard)", "[r]emove 0", "tile is blocked", "🦀"} {
		if !screenContains(buf, want) {
			t.Errorf("frame missing %q", want)
		}
	}

	snap.Status = puzzle.StatusWin
	snap.Reward = puzzle.Reward{Gold: 500, Diamonds: 5}
	view.RenderFrame(Context{}, &snap)
	if !screenContains(view.Buffer(), "CLEARED") || !screenContains(view.Buffer(), "+500 gold") {
		t.Error("win panel missing")
	}
}
