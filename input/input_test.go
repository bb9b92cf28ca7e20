package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestKeyTable_Lookup(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		intent IntentType
		dir    Direction
	}{
		{"arrow left", tcell.KeyLeft, 0, IntentThrust, DirLeft},
		{"arrow up", tcell.KeyUp, 0, IntentThrust, DirUp},
		{"vi j", tcell.KeyRune, 'j', IntentThrust, DirDown},
		{"wasd d", tcell.KeyRune, 'd', IntentThrust, DirRight},
		{"escape", tcell.KeyEscape, 0, IntentQuit, DirNone},
		{"space", tcell.KeyRune, ' ', IntentPause, DirNone},
		{"reset", tcell.KeyRune, 'r', IntentReset, DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := kt.Lookup(tt.key, tt.r)
			if !ok {
				t.Fatalf("Expected binding for %v/%q", tt.key, tt.r)
			}
			if e.Intent != tt.intent || e.Direction != tt.dir {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.intent, tt.dir, e.Intent, e.Direction)
			}
		})
	}

	if _, ok := kt.Lookup(tcell.KeyRune, 'z'); ok {
		t.Error("Expected no binding for 'z'")
	}
}

func TestTracker_LevelTriggeredWithinWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := NewTracker(100 * time.Millisecond)

	if tr.Held(start) != DirNone {
		t.Fatal("Expected nothing held before any event")
	}

	tr.Press(DirLeft, start)
	tr.Press(DirUp, start.Add(50*time.Millisecond))

	// Held on every tick inside the window, not only on the press
	for _, dt := range []time.Duration{0, 16 * time.Millisecond, 50 * time.Millisecond, 100 * time.Millisecond} {
		if held := tr.Held(start.Add(dt)); !held.Has(DirLeft) {
			t.Errorf("Expected left held at +%v, got %v", dt, held)
		}
	}

	held := tr.Held(start.Add(120 * time.Millisecond))
	if held.Has(DirLeft) {
		t.Errorf("Expected left released after window, got %v", held)
	}
	if !held.Has(DirUp) {
		t.Errorf("Expected up still held, got %v", held)
	}

	// Auto-repeat refreshes the window
	tr.Press(DirLeft, start.Add(130*time.Millisecond))
	if !tr.Held(start.Add(200 * time.Millisecond)).Has(DirLeft) {
		t.Error("Expected repeat to extend left hold")
	}
}

func TestTracker_Clear(t *testing.T) {
	now := time.Now()
	tr := NewTracker(time.Second)
	tr.Press(DirLeft|DirDown, now)

	if got := tr.Held(now); got != DirLeft|DirDown {
		t.Fatalf("Expected left+down held, got %v", got)
	}
	tr.Clear()
	if got := tr.Held(now); got != DirNone {
		t.Errorf("Expected nothing held after Clear, got %v", got)
	}
}

func TestDirection_String(t *testing.T) {
	if got := (DirLeft | DirDown).String(); got != "left+down" {
		t.Errorf("Expected left+down, got %q", got)
	}
	if got := DirNone.String(); got != "none" {
		t.Errorf("Expected none, got %q", got)
	}
}
