package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent    IntentType
	Direction Direction // Set only for IntentThrust
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   {IntentThrust, DirLeft},
			tcell.KeyRight:  {IntentThrust, DirRight},
			tcell.KeyUp:     {IntentThrust, DirUp},
			tcell.KeyDown:   {IntentThrust, DirDown},
			tcell.KeyEscape: {IntentQuit, DirNone},
			tcell.KeyCtrlC:  {IntentQuit, DirNone},
			tcell.KeyCtrlQ:  {IntentQuit, DirNone},
		},
		Runes: map[rune]KeyEntry{
			'h': {IntentThrust, DirLeft},
			'l': {IntentThrust, DirRight},
			'k': {IntentThrust, DirUp},
			'j': {IntentThrust, DirDown},
			'a': {IntentThrust, DirLeft},
			'd': {IntentThrust, DirRight},
			'w': {IntentThrust, DirUp},
			's': {IntentThrust, DirDown},
			'q': {IntentQuit, DirNone},
			' ': {IntentPause, DirNone},
			'r': {IntentReset, DirNone},
			'm': {IntentMute, DirNone},
		},
	}
}

// Lookup resolves a key. r is only consulted for tcell.KeyRune.
func (t *KeyTable) Lookup(key tcell.Key, r rune) (KeyEntry, bool) {
	if key == tcell.KeyRune {
		e, ok := t.Runes[r]
		return e, ok
	}
	e, ok := t.SpecialKeys[key]
	return e, ok
}
