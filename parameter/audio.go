package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Bounce Sound
const (
	BounceSoundFreq     = 440.0
	BounceSoundDuration = 40 * time.Millisecond
	BounceSoundVolume   = 0.25
)

// Shatter Sound
const (
	ShatterSoundStartFreq = 1760.0
	ShatterSoundEndFreq   = 220.0
	ShatterSoundDuration  = 180 * time.Millisecond
	ShatterSoundVolume    = 0.3
)

// MinSoundGap suppresses repeats of the same cue closer than this
const MinSoundGap = 50 * time.Millisecond
