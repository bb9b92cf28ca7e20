package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the fixed simulation rate in ticks per second
	TickRate = 64

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxCatchUpTicks bounds how many fixed ticks a single frame may run after a stall
	MaxCatchUpTicks = 8

	// EventChannelSize is the buffered capacity between the input poller and the loop
	EventChannelSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "mirror-arena.log"

	// MaxLogSize triggers rotation of the previous log file at startup
	MaxLogSize = 10 * 1024 * 1024
)
