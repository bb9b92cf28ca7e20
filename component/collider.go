package component

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// ColliderKind tags a collider's lifecycle
type ColliderKind uint8

const (
	// KindWall is static, created once at startup
	KindWall ColliderKind = iota
	// KindMirror is dynamic, created and destroyed in pairs
	KindMirror
)

func (k ColliderKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Collider is an axis-aligned rectangular obstacle
// Rotation is cosmetic: collision always uses the unrotated box
type Collider struct {
	Center     mgl32.Vec2
	HalfExtent mgl32.Vec2
	Rotation   float32
	Kind       ColliderKind
}

// BBox returns the collider's AABB with the Z axis collapsed to zero
func (c Collider) BBox() cube.BBox {
	return cube.Box(
		c.Center.X()-c.HalfExtent.X(), c.Center.Y()-c.HalfExtent.Y(), 0,
		c.Center.X()+c.HalfExtent.X(), c.Center.Y()+c.HalfExtent.Y(), 0,
	)
}
