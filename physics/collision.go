package physics

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Side is the face of a collider the circle is pressing against
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Horizontal reports whether the side reflects the X axis
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// ClosestPoint clamps p onto the XY face of box
func ClosestPoint(p mgl32.Vec2, box cube.BBox) mgl32.Vec2 {
	lo, hi := box.Min(), box.Max()
	return mgl32.Vec2{
		mgl32.Clamp(p.X(), lo.X(), hi.X()),
		mgl32.Clamp(p.Y(), lo.Y(), hi.Y()),
	}
}

// DetectCollision tests a circle against an AABB
// Returns false when the distance from center to the box exceeds radius
// Touching (distance == radius) counts as a collision
func DetectCollision(center mgl32.Vec2, radius float32, box cube.BBox) (Side, bool) {
	offset := center.Sub(ClosestPoint(center, box))
	if math32.Sqrt(offset.Dot(offset)) > radius {
		return 0, false
	}
	return ClassifySide(offset), true
}

// ClassifySide picks the side from the center-minus-closest-point offset
// The larger component wins; ties and a zero Y go to the vertical branch, so
// offset.Y() == 0 there resolves to SideBottom
func ClassifySide(offset mgl32.Vec2) Side {
	if math32.Abs(offset.X()) > math32.Abs(offset.Y()) {
		if offset.X() < 0 {
			return SideLeft
		}
		return SideRight
	}
	if offset.Y() > 0 {
		return SideTop
	}
	return SideBottom
}
