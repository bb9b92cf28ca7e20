package engine

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/config"
	"github.com/lixenwraith/mirror-arena/input"
	"github.com/lixenwraith/mirror-arena/registry"
	"github.com/lixenwraith/mirror-arena/system"
)

// World owns the actor, the collider registry and the mirror lifecycle.
// It is not safe for concurrent use; the host loop is its only caller.
type World struct {
	cfg config.Config
	log *logrus.Logger

	reg     *registry.Registry
	actor   component.Actor
	mirrors *system.MirrorLifecycle

	dt   float32
	tick uint64
}

// TickResult reports what happened during one tick
type TickResult struct {
	Tick       uint64
	Collisions []system.Collision
	MirrorHit  bool
	Transition system.Transition
}

// WallHit reports whether any contact this tick was with a wall
func (r TickResult) WallHit() bool {
	for _, c := range r.Collisions {
		if c.Kind == component.KindWall {
			return true
		}
	}
	return false
}

// NewWorld validates cfg and builds the arena walls. log may be nil.
func NewWorld(cfg config.Config, rng system.Rand, log *logrus.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("new world: nil random source")
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	w := &World{
		cfg:   cfg,
		log:   log,
		reg:   registry.New(),
		actor: component.NewActor(cfg.Actor.Radius),
		mirrors: system.NewMirrorLifecycle(
			rng,
			mgl32.Vec2{cfg.Arena.HalfWidth, cfg.Arena.HalfHeight},
			mgl32.Vec2{cfg.Mirror.HalfWidth, cfg.Mirror.HalfHeight},
			cfg.Mirror.SpawnFraction,
		),
		dt: cfg.TickDuration(),
	}

	for _, wall := range buildWalls(cfg.Arena) {
		w.reg.Insert(wall)
	}

	w.log.WithFields(logrus.Fields{
		"half_width":  cfg.Arena.HalfWidth,
		"half_height": cfg.Arena.HalfHeight,
		"walls":       w.reg.Count(component.KindWall),
		"dt":          w.dt,
	}).Debug("world bootstrapped")

	return w, nil
}

// Tick advances the simulation by one fixed step.
// Order: rotate, collide, mirror lifecycle, input, translate. Collisions see
// the position from the previous tick, so a bounce moves the actor one tick
// after contact.
func (w *World) Tick(held input.Direction) TickResult {
	w.tick++
	a := &w.actor

	system.RotateActor(a, w.cfg.Actor.AngularSpeed, w.dt)

	hits := system.DetectCollisions(a, w.reg)
	mirrorHit := system.RespondCollisions(a, hits)

	transition := w.mirrors.Evaluate(w.reg, a, mirrorHit)

	system.ResolveIntent(a, held, w.cfg.Actor.InputDelta)
	system.TranslateActor(a, w.dt)

	if transition != system.TransitionNone {
		w.log.WithFields(logrus.Fields{
			"tick":    w.tick,
			"mirrors": w.reg.Count(component.KindMirror),
		}).Debugf("mirrors %s", transition)
	}

	return TickResult{
		Tick:       w.tick,
		Collisions: hits,
		MirrorHit:  mirrorHit,
		Transition: transition,
	}
}

// Reset returns the actor to rest at the origin and removes the mirrors.
// Walls and the random source are kept.
func (w *World) Reset() {
	removed := w.reg.RemoveKind(component.KindMirror)
	w.actor = component.NewActor(w.cfg.Actor.Radius)
	w.tick = 0

	w.log.WithField("mirrors_removed", removed).Debug("world reset")
}

// TickCount returns the number of ticks since creation or the last Reset
func (w *World) TickCount() uint64 {
	return w.tick
}

// Actor returns a copy of the actor state
func (w *World) Actor() component.Actor {
	return w.actor
}

// Registry exposes the collider registry for inspection
func (w *World) Registry() *registry.Registry {
	return w.reg
}

// Snapshot copies the current state for presentation
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Tick:      w.tick,
		Actor:     w.actor,
		Colliders: w.reg.Entries(),
		ArenaHalf: mgl32.Vec2{w.cfg.Arena.HalfWidth, w.cfg.Arena.HalfHeight},
	}
}
