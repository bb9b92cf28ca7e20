package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mirror-arena/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Cue identifies a one-shot sound effect
type Cue uint8

const (
	CueNone Cue = iota
	CueBounce
	CueShatter
)

func (c Cue) String() string {
	switch c {
	case CueBounce:
		return "bounce"
	case CueShatter:
		return "shatter"
	default:
		return "none"
	}
}

// CueFor picks the sound for a tick's contacts. Shattering mirrors wins over a wall bounce.
func CueFor(wallHit, mirrorHit bool) Cue {
	switch {
	case mirrorHit:
		return CueShatter
	case wallHit:
		return CueBounce
	default:
		return CueNone
	}
}

// SoundManager plays collision cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// Last play time per cue for repeat suppression
	lastPlayed map[Cue]time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		lastPlayed: make(map[Cue]time.Time),
	}
}

// Initialize opens the audio device. Failure leaves the manager silent but usable.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close; an empty mixer produces silence
	sm.initialized = false
}

// SetMuted enables or disables playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Play starts cue unless muted, uninitialized or repeated within MinSoundGap
func (sm *SoundManager) Play(cue Cue, now time.Time) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.shouldPlay(cue, now) || !sm.initialized {
		return
	}

	s := newCueStreamer(cue)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// shouldPlay applies mute and repeat suppression and records the play time
func (sm *SoundManager) shouldPlay(cue Cue, now time.Time) bool {
	if cue == CueNone || sm.muted {
		return false
	}
	if last, ok := sm.lastPlayed[cue]; ok && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[cue] = now
	return true
}

func newCueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueShatter:
		return NewSweep(
			parameter.ShatterSoundStartFreq,
			parameter.ShatterSoundEndFreq,
			parameter.ShatterSoundDuration,
			parameter.ShatterSoundVolume,
			sampleRate,
		)
	default:
		return NewTone(
			parameter.BounceSoundFreq,
			parameter.BounceSoundDuration,
			parameter.BounceSoundVolume,
			sampleRate,
		)
	}
}
