package puzzle

import (
	"github.com/lixenwraith/reef-arcade/parameter"
	"github.com/lixenwraith/reef-arcade/physics"
	"github.com/lixenwraith/reef-arcade/vmath"
)

// overlaps applies the fixed tile footprint, not exact sprite bounds
func overlaps(a, b vmath.Vec2) bool {
	return physics.BoxOverlap(a, b, parameter.TileOverlapWidth, parameter.TileOverlapHeight)
}

// Occluded reports whether t is covered by any strictly higher tile in set
func Occluded(t Tile, set []Tile) bool {
	p := vmath.V(t.X, t.Y)
	for _, o := range set {
		if o.ID != t.ID && o.Layer > t.Layer && overlaps(p, vmath.V(o.X, o.Y)) {
			return true
		}
	}
	return false
}
