package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/survival"
	"github.com/lixenwraith/reef-arcade/vmath"
)

// World units covered by one terminal cell; cells are twice as tall as wide
const (
	CellWorldWidth  = 8.0
	CellWorldHeight = 16.0
	gridSpacing     = 64.0
)

var (
	mobGlyphs    = [parameter.MobSpecies]rune{'🦀', '🪼', '🐍', '🦑', '👾'}
	bossGlyph    = '🐲'
	chestGlyph   = '🎁'
	playerGlyph  = '🤿'
	pointerRunes = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}
)

// Camera projects world coordinates onto the screen, centered on the player
type Camera struct {
	Center vmath.Vec2
	Width  int
	Height int
}

// Project returns the cell for world point p and whether it is on screen
func (c Camera) Project(p vmath.Vec2) (int, int, bool) {
	x := c.Width/2 + int(math.Floor((p.X-c.Center.X)/CellWorldWidth))
	y := c.Height/2 + int(math.Floor((p.Y-c.Center.Y)/CellWorldHeight))
	return x, y, x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// World returns the world point at the center of cell x, y
func (c Camera) World(x, y int) vmath.Vec2 {
	return vmath.V(
		c.Center.X+(float64(x-c.Width/2)+0.5)*CellWorldWidth,
		c.Center.Y+(float64(y-c.Height/2)+0.5)*CellWorldHeight,
	)
}

func cameraFor(ctx Context, s *survival.State) Camera {
	return Camera{Center: s.Player, Width: ctx.Width, Height: ctx.Height}
}

// NewSurvivalView wires the survival render pipeline onto screen
func NewSurvivalView(screen tcell.Screen) *Orchestrator[survival.State] {
	o := NewOrchestrator[survival.State](screen)
	o.Register(RendererFunc[survival.State](drawGround), PriorityBackground)
	o.Register(RendererFunc[survival.State](drawGems), PriorityPickups)
	o.Register(RendererFunc[survival.State](drawProjectiles), PriorityEffects)
	o.Register(RendererFunc[survival.State](drawOrbitals), PriorityEffects)
	o.Register(RendererFunc[survival.State](drawActors), PriorityEntities)
	o.Register(RendererFunc[survival.State](drawPlayer), PriorityPlayer)
	o.Register(RendererFunc[survival.State](drawPopups), PriorityPopups)
	o.Register(RendererFunc[survival.State](drawBossPointer), PriorityMarker)
	o.Register(RendererFunc[survival.State](drawSurvivalHUD), PriorityUI)
	o.Register(RendererFunc[survival.State](drawOffer), PriorityOverlay)
	o.Register(RendererFunc[survival.State](drawGameOver), PriorityOverlay)
	o.Register(RendererFunc[survival.State](drawDebugLine[survival.State]), PriorityDebug)
	return o
}

// drawGround scrolls a sparse dot grid with the world offset
func drawGround(ctx Context, s *survival.State, buf *Buffer) {
	pal := PaletteFor(s.Theme)
	buf.SetBackground(pal.Ground)
	cam := cameraFor(ctx, s)
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			w := cam.World(x, y)
			if positiveMod(w.X, gridSpacing) < CellWorldWidth && positiveMod(w.Y, gridSpacing) < CellWorldHeight {
				buf.SetFg(x, y, pal.Dot, pal.Grid)
			}
		}
	}
}

func positiveMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

func drawGems(ctx Context, s *survival.State, buf *Buffer) {
	cam := cameraFor(ctx, s)
	for _, g := range s.Gems {
		x, y, ok := cam.Project(g.Pos)
		if !ok {
			continue
		}
		color := RGBXP
		if g.Value > 1 {
			color = RGBGold
		}
		buf.SetFg(x, y, '◆', color)
	}
}

func drawProjectiles(ctx Context, s *survival.State, buf *Buffer) {
	pal := PaletteFor(s.Theme)
	cam := cameraFor(ctx, s)
	for _, p := range s.Projectiles {
		spec := survival.SpecOf(p.Kind)
		if spec.Category == survival.CategoryArea {
			tintDisc(buf, cam, p.Pos, survival.HitRadius(p.Kind), Blend(pal.Ground, pal.Accent, 0.25*lifeFraction(p.Life, p.Max)))
		}
		x, y, ok := cam.Project(p.Pos)
		if !ok {
			continue
		}
		buf.Text(x, y, spec.Icon, pal.Text)
	}
}

func lifeFraction(life, total int) float64 {
	if total <= 0 {
		return 1
	}
	return math.Max(0.3, float64(life)/float64(total))
}

// tintDisc shades the cells whose centers fall inside a world-space circle
func tintDisc(buf *Buffer, cam Camera, center vmath.Vec2, radius float64, bg RGB) {
	cx, cy, _ := cam.Project(center)
	rx := int(radius/CellWorldWidth) + 1
	ry := int(radius/CellWorldHeight) + 1
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if cam.World(x, y).Dist(center) < radius {
				buf.SetBg(x, y, bg)
			}
		}
	}
}

// drawOrbitals spins each orbital's icon around the player at its damage radius
func drawOrbitals(ctx Context, s *survival.State, buf *Buffer) {
	pal := PaletteFor(s.Theme)
	cam := cameraFor(ctx, s)
	var orbitals []survival.Slot
	for _, w := range s.Weapons {
		if survival.SpecOf(w.Kind).Category == survival.CategoryOrbital {
			orbitals = append(orbitals, w)
		}
	}
	for i, w := range orbitals {
		angle := float64(s.Tick)*parameter.SpinRate + float64(i)*2*math.Pi/float64(len(orbitals))
		pos := s.Player.Add(vmath.FromAngle(angle, w.OrbitRadius()))
		if x, y, ok := cam.Project(pos); ok {
			buf.Text(x, y, survival.SpecOf(w.Kind).Icon, pal.Accent)
		}
	}
}

func actorGlyph(a survival.Actor) rune {
	switch a.Kind {
	case survival.ActorBoss:
		return bossGlyph
	case survival.ActorChest:
		return chestGlyph
	}
	return mobGlyphs[a.Species%len(mobGlyphs)]
}

func drawActors(ctx Context, s *survival.State, buf *Buffer) {
	pal := PaletteFor(s.Theme)
	cam := cameraFor(ctx, s)
	for _, a := range s.Actors {
		x, y, ok := cam.Project(a.Pos)
		if !ok {
			continue
		}
		fg := pal.Text
		if a.Flashing() {
			buf.Set(x, y, actorGlyph(a), RGBWhite, Blend(pal.Ground, RGBDanger, 0.6))
		} else {
			buf.SetFg(x, y, actorGlyph(a), fg)
		}
		if a.Kind != survival.ActorMob {
			width := 6
			if a.Kind == survival.ActorBoss {
				width = 12
			}
			drawBar(buf, x+1-width/2, y-1, width, a.HP/a.MaxHP, RGBDanger, RGBHealthy)
		}
	}
}

// drawBar renders a horizontal gauge colored along a Lab gradient by fill
func drawBar(buf *Buffer, x, y, width int, fill float64, low, high RGB) {
	fill = vmath.Clamp(fill, 0, 1)
	filled := int(math.Round(fill * float64(width)))
	color := Gradient(low, high, fill)
	for i := range width {
		if i < filled {
			buf.SetFg(x+i, y, '█', color)
		} else {
			buf.SetFg(x+i, y, '░', RGBDim)
		}
	}
}

func drawPlayer(ctx Context, s *survival.State, buf *Buffer) {
	x, y, _ := cameraFor(ctx, s).Project(s.Player)
	fg := RGBWhite
	if s.Phase == survival.PhaseGameOver {
		fg = RGBDim
	}
	buf.SetFg(x, y, playerGlyph, fg)
	if s.Facing < 0 {
		buf.SetFg(x-1, y, '‹', RGBDim)
	} else {
		buf.SetFg(x+2, y, '›', RGBDim)
	}
}

func drawPopups(ctx Context, s *survival.State, buf *Buffer) {
	pal := PaletteFor(s.Theme)
	cam := cameraFor(ctx, s)
	for _, p := range s.Popups {
		x, y, ok := cam.Project(p.Pos)
		if !ok {
			continue
		}
		fade := float64(p.Life) / float64(parameter.PopupTicks)
		buf.Text(x, y, p.Text, Blend(pal.Ground, RGBGold, fade))
	}
}

// drawBossPointer pins an arrow to the screen edge when the boss is off screen
func drawBossPointer(ctx Context, s *survival.State, buf *Buffer) {
	cam := cameraFor(ctx, s)
	for _, a := range s.Actors {
		if a.Kind != survival.ActorBoss {
			continue
		}
		if _, _, ok := cam.Project(a.Pos); ok {
			return
		}
		dir := a.Pos.Sub(s.Player)
		angle := dir.Angle()
		octant := int(math.Round(angle/(math.Pi/4))) & 7
		// Clamp the ray to a margin inside the screen rectangle
		hx := float64(ctx.Width/2 - 2)
		hy := float64(ctx.Height/2 - 2)
		dx := dir.X / CellWorldWidth
		dy := dir.Y / CellWorldHeight
		t := math.Min(hx/math.Max(math.Abs(dx), 1e-9), hy/math.Max(math.Abs(dy), 1e-9))
		x := ctx.Width/2 + int(dx*t)
		y := ctx.Height/2 + int(dy*t)
		buf.Set(x, y, pointerRunes[octant], RGBWhite, RGBDanger)
		return
	}
}

func drawSurvivalHUD(ctx Context, s *survival.State, buf *Buffer) {
	buf.Fill(Rect{0, 0, ctx.Width, 1}, RGBPanel)
	x := buf.Bold(1, 0, fmt.Sprintf("LV %d ", s.Level), RGBWhite)
	x = buf.Text(x, 0, "HP ", RGBDanger)
	drawBar(buf, x, 0, 10, s.HP/s.MaxHP, RGBDanger, RGBHealthy)
	x = buf.Text(x+11, 0, fmt.Sprintf("%3.0f/%.0f ", math.Max(s.HP, 0), s.MaxHP), RGBWhite)
	x = buf.Text(x, 0, "XP ", RGBXP)
	drawBar(buf, x, 0, 10, float64(s.XP)/float64(max(s.XPNext, 1)), RGBXP, RGBXP)
	buf.Text(x+11, 0, fmt.Sprintf("%d/%d", s.XP, s.XPNext), RGBWhite)

	if s.Boss.Active {
		secs := (s.Boss.Remaining + parameter.TickRate - 1) / parameter.TickRate
		label := fmt.Sprintf("BOSS %02ds", secs)
		buf.Bold(ctx.Width-len(label)-1, 0, label, RGBDanger)
	}

	var b strings.Builder
	for i, w := range s.Weapons {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%d", survival.SpecOf(w.Kind).Icon, w.Level)
	}
	buf.Text(1, 1, b.String(), PaletteFor(s.Theme).Text)
}

// drawOffer lists the pending upgrade choices while the run is paused on them
func drawOffer(ctx Context, s *survival.State, buf *Buffer) {
	if s.Phase != survival.PhaseLevelUp && s.Phase != survival.PhaseBossReward {
		return
	}
	title := "LEVEL UP"
	if s.Phase == survival.PhaseBossReward {
		title = "BOSS DEFEATED"
	}
	box := Rect{W: 36, H: len(s.Offer) + 4}
	box.X = (ctx.Width - box.W) / 2
	box.Y = (ctx.Height - box.H) / 2
	drawPanel(buf, box, RGBGold)
	buf.Centered(box.CenterX(), box.Y+1, title, RGBGold)
	for i, opt := range s.Offer {
		spec := survival.SpecOf(opt.Kind)
		tag := fmt.Sprintf("Lv%d", opt.Level)
		if opt.Level == 1 {
			tag = "NEW"
		}
		line := fmt.Sprintf("%d) %s %-10s %s", i+1, spec.Icon, spec.Name, tag)
		buf.Text(box.X+2, box.Y+2+i, line, RGBWhite)
	}
	buf.Text(box.X+2, box.Y+box.H-1, fmt.Sprintf(" press 1-%d ", len(s.Offer)), RGBDim)
}

func drawGameOver(ctx Context, s *survival.State, buf *Buffer) {
	if s.Phase != survival.PhaseGameOver {
		return
	}
	box := Rect{W: 32, H: 5}
	box.X = (ctx.Width - box.W) / 2
	box.Y = (ctx.Height - box.H) / 2
	drawPanel(buf, box, RGBDanger)
	buf.Centered(box.CenterX(), box.Y+1, "GAME OVER", RGBDanger)
	buf.Centered(box.CenterX(), box.Y+2, fmt.Sprintf("level %d  score %d", s.Level, s.Score()), RGBWhite)
	buf.Centered(box.CenterX(), box.Y+3, "[Enter] collect", RGBDim)
}

// drawPanel fills r and draws a single-line border
func drawPanel(buf *Buffer, r Rect, border RGB) {
	buf.Fill(r, RGBPanel)
	for x := r.X + 1; x < r.X+r.W-1; x++ {
		buf.SetFg(x, r.Y, '─', border)
		buf.SetFg(x, r.Y+r.H-1, '─', border)
	}
	for y := r.Y + 1; y < r.Y+r.H-1; y++ {
		buf.SetFg(r.X, y, '│', border)
		buf.SetFg(r.X+r.W-1, y, '│', border)
	}
	buf.SetFg(r.X, r.Y, '┌', border)
	buf.SetFg(r.X+r.W-1, r.Y, '┐', border)
	buf.SetFg(r.X, r.Y+r.H-1, '└', border)
	buf.SetFg(r.X+r.W-1, r.Y+r.H-1, '┘', border)
}

// drawDebugLine prints the metrics registry along the bottom row
func drawDebugLine[S any](ctx Context, _ *S, buf *Buffer) {
	if !ctx.Debug || len(ctx.Metrics) == 0 {
		return
	}
	y := ctx.Height - 1
	buf.Fill(Rect{0, y, ctx.Width, 1}, RGBPanel)
	buf.Text(1, y, FormatMetrics(ctx.Metrics), RGBDim)
}
