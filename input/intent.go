package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentPause  // Space
	IntentReset  // r
	IntentMute   // m
	IntentResize // Terminal resize event

	// Movement
	IntentThrust // Arrows, hjkl, wasd
)

// Direction is a set of held directional inputs
type Direction uint8

const (
	DirLeft Direction = 1 << iota
	DirRight
	DirUp
	DirDown

	DirNone Direction = 0
)

// AllDirections lists each single direction in a fixed order
var AllDirections = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// Has checks if a direction is held
func (d Direction) Has(flag Direction) bool {
	return d&flag != 0
}

func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	s := ""
	for i, name := range [4]string{"left", "right", "up", "down"} {
		if d.Has(AllDirections[i]) {
			if s != "" {
				s += "+"
			}
			s += name
		}
	}
	return s
}
