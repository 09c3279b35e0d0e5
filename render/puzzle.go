package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/puzzle"
)

// PuzzleLayout maps board percentages onto screen cells
type PuzzleLayout struct {
	Board Rect
	Tray  Rect
	TileW int
	TileH int
}

// Rows reserved above and below the board
const (
	puzzleHeaderRows = 2
	puzzleFooterRows = 5
	traySlotWidth    = 4
)

// NewPuzzleLayout sizes the board to fill the screen between header and tray
func NewPuzzleLayout(width, height int) PuzzleLayout {
	board := Rect{X: 2, Y: puzzleHeaderRows, W: max(width-4, 1), H: max(height-puzzleHeaderRows-puzzleFooterRows, 1)}
	tileW := max(4, int(math.Round(float64(board.W)*parameter.TileOverlapWidth/100)))
	tileH := max(3, int(math.Round(float64(board.H)*parameter.TileOverlapHeight/100)))
	trayW := parameter.SlotCapacity*traySlotWidth + 2
	tray := Rect{X: (width - trayW) / 2, Y: height - puzzleFooterRows + 1, W: trayW, H: 3}
	return PuzzleLayout{Board: board, Tray: tray, TileW: tileW, TileH: tileH}
}

// TileRect returns the cell rectangle covered by t, centered on its position
func (l PuzzleLayout) TileRect(t puzzle.Tile) Rect {
	cx := l.Board.X + int(math.Round(t.X/100*float64(l.Board.W)))
	cy := l.Board.Y + int(math.Round(t.Y/100*float64(l.Board.H)))
	return Rect{X: cx - l.TileW/2, Y: cy - l.TileH/2, W: l.TileW, H: l.TileH}
}

// TileAt returns the topmost tile covering cell x, y; tiles must be in draw order
func (l PuzzleLayout) TileAt(tiles []puzzle.Tile, x, y int) (puzzle.Tile, bool) {
	for i := len(tiles) - 1; i >= 0; i-- {
		if l.TileRect(tiles[i]).Contains(x, y) {
			return tiles[i], true
		}
	}
	return puzzle.Tile{}, false
}

// NewPuzzleView wires the puzzle render pipeline onto screen
func NewPuzzleView(screen tcell.Screen) *Orchestrator[puzzle.Snapshot] {
	o := NewOrchestrator[puzzle.Snapshot](screen)
	o.Register(RendererFunc[puzzle.Snapshot](drawTable), PriorityBackground)
	o.Register(RendererFunc[puzzle.Snapshot](drawTiles), PriorityEntities)
	o.Register(RendererFunc[puzzle.Snapshot](drawTray), PriorityUI)
	o.Register(RendererFunc[puzzle.Snapshot](drawPuzzleHUD), PriorityUI)
	o.Register(RendererFunc[puzzle.Snapshot](drawBoardResult), PriorityOverlay)
	o.Register(RendererFunc[puzzle.Snapshot](drawDebugLine[puzzle.Snapshot]), PriorityDebug)
	return o
}

func drawTable(ctx Context, _ *puzzle.Snapshot, buf *Buffer) {
	buf.SetBackground(Ocean.Ground)
	buf.Fill(NewPuzzleLayout(ctx.Width, ctx.Height).Board, Ocean.Grid)
}

// drawTiles paints tiles bottom to top; blocked tiles are shaded, the selection is highlighted
func drawTiles(ctx Context, snap *puzzle.Snapshot, buf *Buffer) {
	layout := NewPuzzleLayout(ctx.Width, ctx.Height)
	for _, t := range snap.Tiles {
		r := layout.TileRect(t)
		face := RGBSand
		if t.Blocked {
			face = Blend(RGBSand, Ocean.Ground, 0.55)
		}
		edge := Scale(face, 0.7)
		if t.ID == ctx.Selected {
			edge = Ocean.Accent
		}
		buf.Fill(r, face)
		for x := r.X; x < r.X+r.W; x++ {
			buf.Set(x, r.Y+r.H-1, '▁', edge, face)
		}
		buf.Set(r.X, r.Y, '▕', edge, face)
		buf.Centered(r.CenterX()+1, r.CenterY(), t.Type, RGBInk)
		if t.ID == ctx.Selected {
			buf.Set(r.X, r.CenterY(), '▶', Ocean.Accent, face)
		}
	}
}

func drawTray(ctx Context, snap *puzzle.Snapshot, buf *Buffer) {
	tray := NewPuzzleLayout(ctx.Width, ctx.Height).Tray
	border := Ocean.Text
	if len(snap.Slot) >= parameter.SlotCapacity-1 {
		border = RGBDanger
	}
	drawPanel(buf, tray, border)
	for i := range parameter.SlotCapacity {
		x := tray.X + 1 + i*traySlotWidth
		if i < len(snap.Slot) {
			buf.Text(x+1, tray.Y+1, snap.Slot[i].Type, RGBWhite)
		} else {
			buf.Text(x+1, tray.Y+1, "·", RGBDim)
		}
	}
}

func drawPuzzleHUD(ctx Context, snap *puzzle.Snapshot, buf *Buffer) {
	buf.Fill(Rect{0, 0, ctx.Width, 1}, RGBPanel)
	x := buf.Bold(1, 0, fmt.Sprintf("Level %d (%s) ", snap.Level, snap.Tier), RGBWhite)
	x = buf.Text(x, 0, fmt.Sprintf(" tiles %d ", len(snap.Tiles)), Ocean.Text)
	tools := fmt.Sprintf("[u]ndo %d  [r]emove %d  [s]huffle %d",
		snap.Tools[puzzle.ToolUndo], snap.Tools[puzzle.ToolRemove], snap.Tools[puzzle.ToolShuffle])
	buf.Text(max(x+2, ctx.Width-len(tools)-1), 0, tools, Ocean.Accent)
	if ctx.Notice != "" {
		buf.Text(1, 1, ctx.Notice, RGBDanger)
	}
}

func drawBoardResult(ctx Context, snap *puzzle.Snapshot, buf *Buffer) {
	var lines []string
	color := RGBGold
	switch snap.Status {
	case puzzle.StatusWin:
		lines = []string{
			"CLEARED",
			fmt.Sprintf("+%d gold  +%d diamonds", snap.Reward.Gold, snap.Reward.Diamonds),
			"[n] next level  [Enter] collect",
		}
	case puzzle.StatusFail:
		color = RGBDanger
		lines = []string{
			"TRAY FULL",
			"[v] revive  [Enter] give up",
		}
	default:
		return
	}
	box := Rect{W: 36, H: len(lines) + 2}
	box.X = (ctx.Width - box.W) / 2
	box.Y = (ctx.Height - box.H) / 2
	drawPanel(buf, box, color)
	for i, l := range lines {
		fg := RGBWhite
		if i == 0 {
			fg = color
		}
		buf.Centered(box.CenterX(), box.Y+1+i, l, fg)
	}
}
