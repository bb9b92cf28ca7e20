package system

import (
	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/physics"
)

// RotateActor spins the actor regardless of input
func RotateActor(a *component.Actor, angularSpeed, dt float32) {
	a.Orientation = physics.Rotate(a.Orientation, angularSpeed, dt)
}

// TranslateActor integrates position from the current velocity
func TranslateActor(a *component.Actor, dt float32) {
	a.Position = physics.Translate(a.Position, a.Velocity, dt)
}
