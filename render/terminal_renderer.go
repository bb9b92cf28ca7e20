package render

import (
	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/engine"
	"github.com/lixenwraith/mirror-arena/parameter"
)

// TerminalRenderer draws world snapshots to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// Resize updates the cached screen dimensions
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Viewport returns the play area for the current screen size
func (r *TerminalRenderer) Viewport(snap engine.Snapshot) Viewport {
	h := r.height - parameter.TopMargin - parameter.BottomMargin
	return FitViewport(0, parameter.TopMargin, r.width, h, snap.Colliders)
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.fill(defaultStyle)

	vp := r.Viewport(snap)

	// Walls first so mirrors and the actor draw over them
	for _, e := range snap.Colliders {
		if e.Collider.Kind == component.KindWall {
			r.drawCollider(vp, e.Collider, parameter.WallChar, defaultStyle.Foreground(RgbWall))
		}
	}
	for _, e := range snap.Colliders {
		if e.Collider.Kind == component.KindMirror {
			r.drawCollider(vp, e.Collider, mirrorGlyph(e.Collider.Rotation), defaultStyle.Foreground(RgbMirror))
		}
	}

	r.drawActor(vp, snap.Actor, defaultStyle)
	r.drawStatus(snap, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) fill(style tcell.Style) {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawCollider fills every cell the collider box touches; boxes thinner than a cell still get one
func (r *TerminalRenderer) drawCollider(vp Viewport, c component.Collider, ch rune, style tcell.Style) {
	bb := c.BBox()
	c0, r0, _ := vp.ToCell(mgl32.Vec2{bb.Min().X(), bb.Max().Y()})
	c1, r1, _ := vp.ToCell(mgl32.Vec2{bb.Max().X(), bb.Min().Y()})
	c0, r0 = vp.clampCell(c0, r0)
	c1, r1 = vp.clampCell(c1, r1)

	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawActor(vp Viewport, a component.Actor, style tcell.Style) {
	col, row, ok := vp.ToCell(a.Position)
	if !ok {
		return
	}
	r.screen.SetContent(col, row, parameter.ActorChar, nil, style.Foreground(RgbActor).Bold(true))

	// Heading marker one cell out along the orientation
	dx := int(math32.Round(math32.Cos(a.Orientation)))
	dy := -int(math32.Round(math32.Sin(a.Orientation)))
	hc, hr := col+dx, row+dy
	if (dx != 0 || dy != 0) && hc >= vp.X && hc < vp.X+vp.Width && hr >= vp.Y && hr < vp.Y+vp.Height {
		r.screen.SetContent(hc, hr, headingGlyph(a.Orientation), nil, style.Foreground(RgbHeading))
	}
}

func (r *TerminalRenderer) drawStatus(snap engine.Snapshot, style tcell.Style) {
	x := r.drawText(0, 0, FormatHUD(snap.Actor), style.Foreground(RgbHUD))
	if snap.Paused {
		x = r.drawText(x, 0, parameter.PausedText, style.Foreground(RgbBackground).Background(RgbPaused))
	}
	if snap.Muted {
		r.drawText(x, 0, parameter.MutedText, style.Foreground(RgbHelp))
	}

	if r.height > parameter.TopMargin {
		r.drawText(0, r.height-1, parameter.HelpText, style.Foreground(RgbHelp))
	}
}

// drawText writes s from column x and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
