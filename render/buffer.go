package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one terminal position; wide runes leave a continuation cell on their right
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
	cont bool
}

// Buffer is a compositor with dirty tracking, flushed to a tcell.Screen once per frame
type Buffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
	bg      RGB
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Bounds returns width and height in cells
func (b *Buffer) Bounds() (int, int) { return b.width, b.height }

// SetBackground sets the color untouched cells receive on flush
func (b *Buffer) SetBackground(bg RGB) { b.bg = bg }

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; out of bounds yields a zero cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set writes a rune with explicit colors; returns the columns consumed
func (b *Buffer) Set(x, y int, r rune, fg, bg RGB) int {
	return b.put(x, y, r, fg, &bg, false)
}

// SetFg writes a rune keeping the existing background
func (b *Buffer) SetFg(x, y int, r rune, fg RGB) int {
	return b.put(x, y, r, fg, nil, false)
}

// SetBg paints the background only
func (b *Buffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// Fill blanks a rectangle, covering whatever was drawn beneath it
func (b *Buffer) Fill(r Rect, bg RGB) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.Set(x, y, ' ', bg, bg)
		}
	}
}

// Text writes s left to right, clipped at the right edge; returns the end column
func (b *Buffer) Text(x, y int, s string, fg RGB) int {
	return b.text(x, y, s, fg, false)
}

// Bold writes s in bold
func (b *Buffer) Bold(x, y int, s string, fg RGB) int {
	return b.text(x, y, s, fg, true)
}

// Centered writes s centered on column cx
func (b *Buffer) Centered(cx, y int, s string, fg RGB) int {
	return b.text(cx-runewidth.StringWidth(s)/2, y, s, fg, true)
}

func (b *Buffer) text(x, y int, s string, fg RGB, bold bool) int {
	for _, r := range s {
		x += max(b.put(x, y, r, fg, nil, bold), runewidth.RuneWidth(r))
	}
	return x
}

func (b *Buffer) put(x, y int, r rune, fg RGB, bg *RGB, bold bool) int {
	if !b.inBounds(x, y) {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w == 0 {
		return 0
	}
	if w == 2 && x+1 >= b.width {
		return 0
	}
	idx := y*b.width + x
	// Overwriting half of a wide rune blanks the other half
	if b.cells[idx].cont && x > 0 {
		b.cells[idx-1].Rune = ' '
	}
	if x+1 < b.width && b.cells[idx+1].cont && w == 1 {
		b.cells[idx+1].cont = false
		b.cells[idx+1].Rune = ' '
	}

	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.Bold = bold
	dst.cont = false
	if bg != nil {
		dst.Bg = *bg
		b.touched[idx] = true
	}
	if w == 2 {
		next := &b.cells[idx+1]
		next.Rune = 0
		next.cont = true
		if bg != nil {
			next.Bg = *bg
			b.touched[idx+1] = true
		}
	}
	return w
}

// Flush writes the buffer to screen without calling Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			idx := y*b.width + x
			c := b.cells[idx]
			if c.cont {
				continue
			}
			bg := c.Bg
			if !b.touched[idx] {
				bg = b.bg
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(bg.Tcell()).Bold(c.Bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
