package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(120, 124, 153) // Muted slate
	RgbMirror     = tcell.NewRGBColor(0, 200, 200)   // Vibrant cyan
	RgbActor      = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbHeading    = tcell.NewRGBColor(255, 220, 120) // Pale gold
	RgbHUD        = tcell.NewRGBColor(255, 255, 255) // White
	RgbHelp       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbPaused     = tcell.NewRGBColor(255, 80, 80)   // Normal red
)
