package parameter

// Arena geometry in world units, origin at the arena center, +Y up
const (
	ArenaHalfWidth  = 900.0
	ArenaHalfHeight = 500.0

	// WallThickness is the full thickness of each boundary wall
	WallThickness = 10.0
)

// Mirror obstacles
const (
	// MirrorHalfWidth and MirrorHalfHeight size the unrotated mirror AABB
	MirrorHalfWidth  = 60.0
	MirrorHalfHeight = 6.0

	// MirrorSpawnFraction scales the arena half extents to the interior spawn region
	MirrorSpawnFraction = 0.8
)
