package physics

import "github.com/go-gl/mathgl/mgl32"

// Reflect negates the velocity axis facing the struck side
func Reflect(vel mgl32.Vec2, side Side) mgl32.Vec2 {
	if side.Horizontal() {
		vel[0] = -vel[0]
	} else {
		vel[1] = -vel[1]
	}
	return vel
}
