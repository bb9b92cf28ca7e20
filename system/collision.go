package system

import (
	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/physics"
	"github.com/lixenwraith/mirror-arena/registry"
)

// Collision is one actor/collider contact found this tick
type Collision struct {
	ID   registry.ID
	Kind component.ColliderKind
	Side physics.Side
}

// DetectCollisions tests the actor against every collider in registry order
func DetectCollisions(a *component.Actor, reg *registry.Registry) []Collision {
	var hits []Collision
	for _, e := range reg.Entries() {
		side, ok := physics.DetectCollision(a.Position, a.Radius, e.Collider.BBox())
		if !ok {
			continue
		}
		hits = append(hits, Collision{ID: e.ID, Kind: e.Collider.Kind, Side: side})
	}
	return hits
}

// RespondCollisions reflects the actor velocity once per contact.
// Two contacts on the same axis negate it twice.
// Returns true if any contact was a mirror.
func RespondCollisions(a *component.Actor, hits []Collision) (mirrorHit bool) {
	for _, c := range hits {
		a.Velocity = physics.Reflect(a.Velocity, c.Side)
		if c.Kind == component.KindMirror {
			mirrorHit = true
		}
	}
	return mirrorHit
}
