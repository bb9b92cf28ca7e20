package input

import "time"

// Tracker turns edge key events into a level-triggered held set.
// Terminals report press and auto-repeat but no release, so a direction
// counts as held until window has passed since its last event.
type Tracker struct {
	window   time.Duration
	lastSeen [len(AllDirections)]time.Time
}

// NewTracker creates a tracker with the given hold window
func NewTracker(window time.Duration) *Tracker {
	return &Tracker{window: window}
}

// Press records an event for every direction in d
func (t *Tracker) Press(d Direction, now time.Time) {
	for i, dir := range AllDirections {
		if d.Has(dir) {
			t.lastSeen[i] = now
		}
	}
}

// Held returns the directions still inside their hold window at now
func (t *Tracker) Held(now time.Time) Direction {
	held := DirNone
	for i, dir := range AllDirections {
		last := t.lastSeen[i]
		if last.IsZero() {
			continue
		}
		if now.Sub(last) <= t.window {
			held |= dir
		}
	}
	return held
}

// Clear releases every direction
func (t *Tracker) Clear() {
	t.lastSeen = [len(AllDirections)]time.Time{}
}
