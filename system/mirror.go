package system

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/physics"
	"github.com/lixenwraith/mirror-arena/registry"
)

// MirrorPairSize is the number of mirrors spawned and removed together
const MirrorPairSize = 2

// Rand is the random source used for mirror placement
type Rand interface {
	// Float32 returns a value in [0, 1)
	Float32() float32
}

// Transition is the lifecycle outcome of one evaluation
type Transition uint8

const (
	TransitionNone Transition = iota
	TransitionSpawned
	TransitionDespawned
)

func (t Transition) String() string {
	switch t {
	case TransitionSpawned:
		return "spawned"
	case TransitionDespawned:
		return "despawned"
	default:
		return "none"
	}
}

// MirrorLifecycle spawns the mirror pair when absent and removes it on hit
type MirrorLifecycle struct {
	rng Rand

	// Arena half dimensions
	arenaHalf mgl32.Vec2
	// Mirror box half extent
	halfExtent mgl32.Vec2
	// Fraction of the arena half size mirror centers are drawn from
	spawnFraction float32
}

// NewMirrorLifecycle creates the lifecycle manager
func NewMirrorLifecycle(rng Rand, arenaHalf, halfExtent mgl32.Vec2, spawnFraction float32) *MirrorLifecycle {
	return &MirrorLifecycle{
		rng:           rng,
		arenaHalf:     arenaHalf,
		halfExtent:    halfExtent,
		spawnFraction: spawnFraction,
	}
}

// Evaluate runs once per tick after collision response.
// A tick that removes mirrors does not also spawn them.
func (m *MirrorLifecycle) Evaluate(reg *registry.Registry, a *component.Actor, mirrorHit bool) Transition {
	if a.MirrorsPresent {
		if !mirrorHit {
			return TransitionNone
		}
		reg.RemoveKind(component.KindMirror)
		a.MirrorsPresent = false
		return TransitionDespawned
	}

	for range MirrorPairSize {
		reg.Insert(m.sample())
	}
	a.MirrorsPresent = true
	return TransitionSpawned
}

// sample draws one mirror uniformly inside the spawn sub-rectangle
func (m *MirrorLifecycle) sample() component.Collider {
	x := (m.rng.Float32()*2 - 1) * m.spawnFraction * m.arenaHalf.X()
	y := (m.rng.Float32()*2 - 1) * m.spawnFraction * m.arenaHalf.Y()
	rot := physics.WrapAngle(m.rng.Float32() * 2 * math32.Pi)

	return component.Collider{
		Center:     mgl32.Vec2{x, y},
		HalfExtent: m.halfExtent,
		Rotation:   rot,
		Kind:       component.KindMirror,
	}
}
