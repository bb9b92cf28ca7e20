package parameter

import "time"

// Layout & Margins
const (
	// TopMargin holds the HUD line
	TopMargin = 1

	// BottomMargin holds the key help line
	BottomMargin = 1
)

// Input
const (
	// HoldWindow keeps a direction held after its last key event. Terminals
	// deliver press and auto-repeat but never release.
	HoldWindow = 120 * time.Millisecond
)

// Glyphs
const (
	WallChar  = '█'
	ActorChar = '●'
)

// MirrorGlyphs maps rotation octants (π/4 each) to a line glyph
var MirrorGlyphs = [4]rune{'─', '╱', '│', '╲'}

// ActorHeadingGlyphs marks actor orientation in eight directions, counter-clockwise from +X
var ActorHeadingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Status text
const (
	HelpText   = " arrows/hjkl: thrust  space: pause  r: reset  m: mute  q: quit "
	PausedText = " PAUSED "
	MutedText  = " MUTED "
)
