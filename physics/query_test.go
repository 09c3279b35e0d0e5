package physics

import (
	"testing"

	"github.com/lixenwraith/reef-arcade/vmath"
)

func TestWithinIsStrict(t *testing.T) {
	a := vmath.V(0, 0)
	if Within(a, vmath.V(30, 0), 30) {
		t.Error("distance equal to radius must not count as within")
	}
	if !Within(a, vmath.V(29.9, 0), 30) {
		t.Error("distance below radius must count as within")
	}
}

func TestBoxOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b vmath.Vec2
		want bool
	}{
		{"same point", vmath.V(50, 50), vmath.V(50, 50), true},
		{"inside both spans", vmath.V(50, 50), vmath.V(61, 63), true},
		{"x edge excluded", vmath.V(50, 50), vmath.V(62, 50), false},
		{"y edge excluded", vmath.V(50, 50), vmath.V(50, 64), false},
		{"negative offsets", vmath.V(50, 50), vmath.V(39, 37), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxOverlap(tt.a, tt.b, 12, 14); got != tt.want {
				t.Errorf("BoxOverlap(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNearestTieBreaksToFirstScanned(t *testing.T) {
	pts := []vmath.Vec2{vmath.V(700, 0), vmath.V(0, 10), vmath.V(10, 0), vmath.V(5, 0)}
	if got := Nearest(vmath.V(0, 0), pts, 600, nil); got != 3 {
		t.Errorf("Nearest = %d, want 3", got)
	}

	tied := []vmath.Vec2{vmath.V(0, 10), vmath.V(10, 0)}
	if got := Nearest(vmath.V(0, 0), tied, 600, nil); got != 0 {
		t.Errorf("tie resolved to %d, want first scanned (0)", got)
	}

	if got := Nearest(vmath.V(0, 0), []vmath.Vec2{vmath.V(600, 0)}, 600, nil); got != -1 {
		t.Errorf("candidate at exactly maxDist returned %d, want -1", got)
	}
}

func TestNearestSkip(t *testing.T) {
	pts := []vmath.Vec2{vmath.V(1, 0), vmath.V(2, 0)}
	got := Nearest(vmath.V(0, 0), pts, 600, func(i int) bool { return i == 0 })
	if got != 1 {
		t.Errorf("Nearest with skip = %d, want 1", got)
	}
}

func TestKineticDecay(t *testing.T) {
	var k Kinetic
	k.Push(vmath.V(10, 0))
	pos := k.Integrate(vmath.V(0, 0), 0.8)
	if pos.X != 10 {
		t.Errorf("first integrate moved to %v, want x=10", pos)
	}
	if k.Vel.X != 8 {
		t.Errorf("velocity after decay = %v, want 8", k.Vel.X)
	}
	for i := 0; i < 200; i++ {
		pos = k.Integrate(pos, 0.8)
	}
	if !k.Vel.IsZero() {
		t.Errorf("velocity did not settle: %v", k.Vel)
	}
}

func TestSteerDoesNotOvershoot(t *testing.T) {
	got := Steer(vmath.V(0, 0), vmath.V(1, 0), 4)
	if got != vmath.V(1, 0) {
		t.Errorf("Steer overshot: %v", got)
	}
	got = Steer(vmath.V(0, 0), vmath.V(10, 0), 4)
	if got != vmath.V(4, 0) {
		t.Errorf("Steer = %v, want (4,0)", got)
	}
}
