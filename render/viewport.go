package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirror-arena/registry"
)

// Viewport maps world coordinates onto a block of terminal cells.
// World +Y is up, terminal rows grow downward.
type Viewport struct {
	X, Y          int // Top-left cell
	Width, Height int // Size in cells

	Min, Max mgl32.Vec2 // World bounds shown
}

// FitViewport sizes a viewport over the bounding box of all colliders
func FitViewport(x, y, width, height int, colliders []registry.Entry) Viewport {
	v := Viewport{X: x, Y: y, Width: width, Height: height}
	if len(colliders) == 0 {
		v.Min, v.Max = mgl32.Vec2{-1, -1}, mgl32.Vec2{1, 1}
		return v
	}

	v.Min = mgl32.Vec2{math32.Inf(1), math32.Inf(1)}
	v.Max = mgl32.Vec2{math32.Inf(-1), math32.Inf(-1)}
	for _, e := range colliders {
		bb := e.Collider.BBox()
		v.Min = mgl32.Vec2{math32.Min(v.Min.X(), bb.Min().X()), math32.Min(v.Min.Y(), bb.Min().Y())}
		v.Max = mgl32.Vec2{math32.Max(v.Max.X(), bb.Max().X()), math32.Max(v.Max.Y(), bb.Max().Y())}
	}
	return v
}

// ToCell returns the cell containing p and whether it lies inside the viewport
func (v Viewport) ToCell(p mgl32.Vec2) (col, row int, ok bool) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0, false
	}
	span := v.Max.Sub(v.Min)
	fx := (p.X() - v.Min.X()) / span.X()
	fy := (v.Max.Y() - p.Y()) / span.Y()

	col = v.X + int(math32.Round(fx*float32(v.Width-1)))
	row = v.Y + int(math32.Round(fy*float32(v.Height-1)))

	ok = col >= v.X && col < v.X+v.Width && row >= v.Y && row < v.Y+v.Height
	return col, row, ok
}

// clampCell pins a cell coordinate to the viewport
func (v Viewport) clampCell(col, row int) (int, int) {
	col = max(v.X, min(col, v.X+v.Width-1))
	row = max(v.Y, min(row, v.Y+v.Height-1))
	return col, row
}
