package engine

import "time"

// Clock converts real elapsed time into a whole number of fixed ticks.
// Leftover time carries to the next frame. When more than maxCatchUp ticks
// are owed the backlog is dropped instead of replayed.
type Clock struct {
	time       TimeProvider
	interval   time.Duration
	maxCatchUp int

	last        time.Time
	accumulator time.Duration
	paused      bool
}

// NewClock creates a clock started at the provider's current time
func NewClock(tp TimeProvider, interval time.Duration, maxCatchUp int) *Clock {
	return &Clock{
		time:       tp,
		interval:   interval,
		maxCatchUp: maxCatchUp,
		last:       tp.Now(),
	}
}

// Advance returns how many ticks to run for the time since the previous call
func (c *Clock) Advance() int {
	now := c.time.Now()
	elapsed := now.Sub(c.last)
	c.last = now

	if c.paused || elapsed <= 0 {
		return 0
	}

	c.accumulator += elapsed
	n := int(c.accumulator / c.interval)
	if n > c.maxCatchUp {
		c.accumulator = 0
		return c.maxCatchUp
	}
	c.accumulator -= time.Duration(n) * c.interval
	return n
}

// Pause stops tick accumulation
func (c *Clock) Pause() {
	c.paused = true
}

// Resume restarts accumulation from now; time spent paused is discarded
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.time.Now()
	c.accumulator = 0
}

// TogglePause flips the pause state and returns the new state
func (c *Clock) TogglePause() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}
