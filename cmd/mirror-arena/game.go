package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mirror-arena/audio"
	"github.com/lixenwraith/mirror-arena/engine"
	"github.com/lixenwraith/mirror-arena/input"
	"github.com/lixenwraith/mirror-arena/parameter"
	"github.com/lixenwraith/mirror-arena/render"
)

// game binds the world to the terminal, the clock and audio. All fields are
// owned by the loop goroutine.
type game struct {
	world    *engine.World
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	log      *logrus.Logger

	time    engine.TimeProvider
	clock   *engine.Clock
	keys    *input.KeyTable
	tracker *input.Tracker
}

// run polls input on its own goroutine and drives frames until quit
func (g *game) run(screen tcell.Screen) {
	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	g.frame()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if g.handleEvent(screen, ev) {
				return
			}
		case <-ticker.C:
			g.frame()
		}
	}
}

// handleEvent returns true when the game should exit
func (g *game) handleEvent(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		screen.Sync()
		g.renderer.Resize()
	}
	return false
}

// handleKey applies one key press; returns true on quit
func (g *game) handleKey(key tcell.Key, r rune) bool {
	entry, ok := g.keys.Lookup(key, r)
	if !ok {
		return false
	}
	now := g.time.Now()

	switch entry.Intent {
	case input.IntentQuit:
		g.log.Info("quit requested")
		return true
	case input.IntentThrust:
		g.tracker.Press(entry.Direction, now)
	case input.IntentPause:
		paused := g.clock.TogglePause()
		g.tracker.Clear()
		g.log.WithField("paused", paused).Debug("pause toggled")
	case input.IntentReset:
		g.world.Reset()
		g.tracker.Clear()
	case input.IntentMute:
		muted := g.sound.ToggleMute()
		g.log.WithField("muted", muted).Debug("mute toggled")
	}
	return false
}

// frame runs the ticks owed since the previous frame and redraws
func (g *game) frame() {
	n := g.clock.Advance()
	now := g.time.Now()
	held := g.tracker.Held(now)

	for range n {
		res := g.world.Tick(held)
		g.sound.Play(audio.CueFor(res.WallHit(), res.MirrorHit), now)
	}

	snap := g.world.Snapshot()
	snap.Paused = g.clock.IsPaused()
	snap.Muted = g.sound.IsMuted()
	g.renderer.RenderFrame(snap)
}
