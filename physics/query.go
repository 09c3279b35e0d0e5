package physics

import "github.com/lixenwraith/reef-arcade/vmath"

// Within reports whether a and b are strictly closer than r
// Compares squared distances, no sqrt
func Within(a, b vmath.Vec2, r float64) bool {
	return a.Sub(b).LenSq() < r*r
}

// BoxOverlap reports axis-aligned overlap of two fixed-size footprints
// centered at a and b; w and h are the full overlap spans per axis
func BoxOverlap(a, b vmath.Vec2, w, h float64) bool {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx < w && dy < h
}

// Nearest returns the index of the candidate strictly closer than maxDist
// to origin, or -1. Ties resolve to the first scanned candidate
// skip filters candidates out of the scan; nil keeps all
func Nearest(origin vmath.Vec2, candidates []vmath.Vec2, maxDist float64, skip func(i int) bool) int {
	best := -1
	bestSq := maxDist * maxDist
	for i, c := range candidates {
		if skip != nil && skip(i) {
			continue
		}
		d := c.Sub(origin).LenSq()
		if d < bestSq {
			best = i
			bestSq = d
		}
	}
	return best
}

// InRadius appends to dst the indices of candidates strictly within r of origin
func InRadius(dst []int, origin vmath.Vec2, candidates []vmath.Vec2, r float64) []int {
	rSq := r * r
	for i, c := range candidates {
		if c.Sub(origin).LenSq() < rSq {
			dst = append(dst, i)
		}
	}
	return dst
}
