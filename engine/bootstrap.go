package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/config"
)

// WallCount is the fixed number of boundary walls
const WallCount = 4

// buildWalls returns one wall per arena edge, centered on the edge line.
// Each wall is extended by half its thickness so the corners are closed.
func buildWalls(arena config.ArenaConfig) [WallCount]component.Collider {
	hw, hh := arena.HalfWidth, arena.HalfHeight
	ht := arena.WallThickness / 2

	vertical := mgl32.Vec2{ht, hh + ht}
	horizontal := mgl32.Vec2{hw + ht, ht}

	return [WallCount]component.Collider{
		{Center: mgl32.Vec2{-hw, 0}, HalfExtent: vertical, Kind: component.KindWall},
		{Center: mgl32.Vec2{hw, 0}, HalfExtent: vertical, Kind: component.KindWall},
		{Center: mgl32.Vec2{0, hh}, HalfExtent: horizontal, Kind: component.KindWall},
		{Center: mgl32.Vec2{0, -hh}, HalfExtent: horizontal, Kind: component.KindWall},
	}
}
