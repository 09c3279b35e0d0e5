package physics

import "github.com/lixenwraith/reef-arcade/vmath"

// restEpsilon is the knockback magnitude below which motion snaps to zero
const restEpsilon = 1e-3

// Kinetic is a decaying velocity impulse layered over an actor's steering
type Kinetic struct {
	Vel vmath.Vec2
}

// Push adds an impulse
func (k *Kinetic) Push(impulse vmath.Vec2) {
	k.Vel = k.Vel.Add(impulse)
}

// Integrate applies the current impulse to pos then decays it by factor
func (k *Kinetic) Integrate(pos vmath.Vec2, factor float64) vmath.Vec2 {
	if k.Vel.IsZero() {
		return pos
	}
	pos = pos.Add(k.Vel)
	k.Vel = k.Vel.Scale(factor)
	if k.Vel.LenSq() < restEpsilon*restEpsilon {
		k.Vel = vmath.Vec2{}
	}
	return pos
}

// Outward returns an impulse pushing p away from center, proportional to displacement
func Outward(center, p vmath.Vec2, factor float64) vmath.Vec2 {
	return p.Sub(center).Scale(factor)
}
