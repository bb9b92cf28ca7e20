package engine

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/registry"
)

// Snapshot is a read-only copy of world state handed to renderers after a tick
type Snapshot struct {
	Tick      uint64
	Actor     component.Actor
	Colliders []registry.Entry
	ArenaHalf mgl32.Vec2
	Paused    bool
	Muted     bool
}

// Digest hashes the simulation state. Presentation flags are excluded.
func (s Snapshot) Digest() uint64 {
	buf := make([]byte, 0, 64+len(s.Colliders)*32)
	putF := func(f float32) {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}

	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	putF(s.Actor.Position.X())
	putF(s.Actor.Position.Y())
	putF(s.Actor.Velocity.X())
	putF(s.Actor.Velocity.Y())
	putF(s.Actor.Orientation)
	if s.Actor.MirrorsPresent {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	for _, e := range s.Colliders {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.ID))
		buf = append(buf, byte(e.Collider.Kind))
		putF(e.Collider.Center.X())
		putF(e.Collider.Center.Y())
		putF(e.Collider.HalfExtent.X())
		putF(e.Collider.HalfExtent.Y())
		putF(e.Collider.Rotation)
	}

	return xxh3.Hash(buf)
}
