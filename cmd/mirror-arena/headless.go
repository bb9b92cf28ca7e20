package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/engine"
	"github.com/lixenwraith/mirror-arena/input"
	"github.com/lixenwraith/mirror-arena/render"
	"github.com/lixenwraith/mirror-arena/system"
)

// runHeadless ticks the world with no input and prints the HUD line and state digest
func runHeadless(w *engine.World, ticks int, out io.Writer) error {
	var spawns, despawns int
	for range ticks {
		res := w.Tick(input.DirNone)
		switch res.Transition {
		case system.TransitionSpawned:
			spawns++
		case system.TransitionDespawned:
			despawns++
		}
	}

	snap := w.Snapshot()
	_, err := fmt.Fprintf(out, "%s\ntick=%d mirrors=%d spawns=%d despawns=%d digest=%016x\n",
		render.FormatHUD(snap.Actor),
		snap.Tick,
		w.Registry().Count(component.KindMirror),
		spawns, despawns,
		snap.Digest(),
	)
	return err
}
