package system

import (
	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/input"
)

// ResolveIntent adds delta to the actor velocity for each held direction.
// Opposing directions cancel. Velocity is not clamped.
func ResolveIntent(a *component.Actor, held input.Direction, delta float32) {
	if held.Has(input.DirLeft) {
		a.Velocity[0] -= delta
	}
	if held.Has(input.DirRight) {
		a.Velocity[0] += delta
	}
	if held.Has(input.DirUp) {
		a.Velocity[1] += delta
	}
	if held.Has(input.DirDown) {
		a.Velocity[1] -= delta
	}
}
