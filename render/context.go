package render

// Context provides frame state for renderers, passed by value
type Context struct {
	Tick uint64

	// Screen dimensions in cells, filled by the orchestrator
	Width  int
	Height int

	// Puzzle selection cursor (tile id) and last rejected-action notice
	Selected string
	Notice   string

	// Metrics is the registry snapshot shown on the debug line
	Metrics map[string]float64
	Debug   bool
}

// Rect is a cell-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether x, y lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterX returns the middle column
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the middle row
func (r Rect) CenterY() int { return r.Y + r.H/2 }
