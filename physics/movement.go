package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rotate advances an orientation by a constant angular speed over dt seconds
func Rotate(orientation, angularSpeed, dt float32) float32 {
	return orientation + angularSpeed*dt
}

// Translate advances a position by velocity over dt seconds
func Translate(pos, vel mgl32.Vec2, dt float32) mgl32.Vec2 {
	return pos.Add(vel.Mul(dt))
}

// WrapAngle maps any angle into [0, 2π)
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, 2*math32.Pi)
	if a < 0 {
		a += 2 * math32.Pi
	}
	if a >= 2*math32.Pi {
		a = 0
	}
	return a
}
