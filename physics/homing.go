package physics

import "github.com/lixenwraith/reef-arcade/vmath"

// Steer moves from toward to by a constant step, never overshooting
func Steer(from, to vmath.Vec2, speed float64) vmath.Vec2 {
	d := to.Sub(from)
	l := d.Len()
	if l <= speed || l == 0 {
		return to
	}
	return from.Add(d.Scale(speed / l))
}

// Attract closes a fraction of the gap between from and to
func Attract(from, to vmath.Vec2, factor float64) vmath.Vec2 {
	return from.Add(to.Sub(from).Scale(factor))
}

// Aim returns a velocity of the given speed pointing from origin to target
// Zero displacement aims along +X
func Aim(origin, target vmath.Vec2, speed float64) vmath.Vec2 {
	d := target.Sub(origin)
	if d.IsZero() {
		return vmath.Vec2{X: speed}
	}
	return d.Normalize().Scale(speed)
}

// Home blends a velocity toward target by turn rate while keeping its speed
func Home(vel, pos, target vmath.Vec2, rate float64) vmath.Vec2 {
	speed := vel.Len()
	want := Aim(pos, target, speed)
	return vel.Lerp(want, rate)
}
