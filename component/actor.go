package component

import "github.com/go-gl/mathgl/mgl32"

// Actor is the single controllable circle
type Actor struct {
	Position    mgl32.Vec2
	Orientation float32 // Radians, unbounded
	Velocity    mgl32.Vec2

	// MirrorsPresent is true iff the registry holds the mirror pair
	MirrorsPresent bool

	// Radius of the bounding circle, fixed at creation
	Radius float32
}

// NewActor returns an actor at rest at the arena origin
func NewActor(radius float32) Actor {
	return Actor{Radius: radius}
}
