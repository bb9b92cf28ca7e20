package render

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/mirror-arena/component"
	"github.com/lixenwraith/mirror-arena/parameter"
	"github.com/lixenwraith/mirror-arena/physics"
)

// formatFloat renders the shortest decimal that round-trips the float32
func formatFloat(v float32) string {
	// Reflecting a zero velocity yields -0
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// FormatHUD returns the velocity and position readout
func FormatHUD(a component.Actor) string {
	var b strings.Builder
	b.WriteString("X: ")
	b.WriteString(formatFloat(a.Velocity.X()))
	b.WriteString(" Y: ")
	b.WriteString(formatFloat(a.Velocity.Y()))
	b.WriteString(" PosX: ")
	b.WriteString(formatFloat(a.Position.X()))
	b.WriteString(" PosY: ")
	b.WriteString(formatFloat(a.Position.Y()))
	b.WriteByte(' ')
	return b.String()
}

// headingGlyph picks the arrow nearest to the orientation
func headingGlyph(orientation float32) rune {
	n := len(parameter.ActorHeadingGlyphs)
	step := 2 * math32.Pi / float32(n)
	i := int(math32.Round(physics.WrapAngle(orientation)/step)) % n
	return parameter.ActorHeadingGlyphs[i]
}

// mirrorGlyph picks the line glyph nearest to the rotation. Lines repeat every π.
func mirrorGlyph(rotation float32) rune {
	n := len(parameter.MirrorGlyphs)
	step := math32.Pi / float32(n)
	r := math32.Mod(physics.WrapAngle(rotation), math32.Pi)
	i := int(math32.Round(r/step)) % n
	return parameter.MirrorGlyphs[i]
}
