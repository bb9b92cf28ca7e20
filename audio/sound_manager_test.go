package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/mirror-arena/parameter"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	now := time.Now()
	sm.Play(CueBounce, now)
	sm.Play(CueShatter, now)
	sm.ToggleMute()
	sm.Cleanup()
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	if err := sm.Initialize(); err != nil {
		// No audio device in CI; audio is optional
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.Play(CueBounce, time.Now())
	sm.Cleanup()
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		wall, mirror bool
		want         Cue
	}{
		{false, false, CueNone},
		{true, false, CueBounce},
		{false, true, CueShatter},
		{true, true, CueShatter},
	}
	for _, tt := range tests {
		if got := CueFor(tt.wall, tt.mirror); got != tt.want {
			t.Errorf("CueFor(%v,%v) = %v, want %v", tt.wall, tt.mirror, got, tt.want)
		}
	}
}

func TestShouldPlay_SuppressesRepeats(t *testing.T) {
	sm := NewSoundManager()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	if !sm.shouldPlay(CueBounce, start) {
		t.Fatal("Expected first bounce to play")
	}
	if sm.shouldPlay(CueBounce, start.Add(parameter.MinSoundGap/2)) {
		t.Error("Expected repeat inside gap to be suppressed")
	}
	if !sm.shouldPlay(CueShatter, start.Add(parameter.MinSoundGap/2)) {
		t.Error("Expected a different cue to play inside the gap")
	}
	if !sm.shouldPlay(CueBounce, start.Add(parameter.MinSoundGap)) {
		t.Error("Expected bounce to play once the gap has passed")
	}
	if sm.shouldPlay(CueNone, start.Add(time.Second)) {
		t.Error("CueNone must never play")
	}
}

func TestShouldPlay_Muted(t *testing.T) {
	sm := NewSoundManager()
	if !sm.ToggleMute() {
		t.Fatal("Expected muted after toggle")
	}
	if sm.shouldPlay(CueShatter, time.Now()) {
		t.Error("Expected muted manager to suppress cues")
	}
	sm.SetMuted(false)
	if sm.IsMuted() {
		t.Error("Expected unmuted after SetMuted(false)")
	}
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, v := range buf[:k] {
			peak = math.Max(peak, math.Abs(v[0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestSweep_LengthAndVolume(t *testing.T) {
	sr := beep.SampleRate(48000)
	dur := 180 * time.Millisecond

	n, peak := drain(NewSweep(1760, 220, dur, 0.3, sr))
	if n != sr.N(dur) {
		t.Errorf("Expected %d samples, got %d", sr.N(dur), n)
	}
	if peak <= 0 || peak > 0.3+1e-9 {
		t.Errorf("Expected peak in (0, 0.3], got %v", peak)
	}
}

func TestTone_Length(t *testing.T) {
	sr := beep.SampleRate(48000)
	n, _ := drain(NewTone(440, 40*time.Millisecond, 0.25, sr))
	if n != sr.N(40*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", sr.N(40*time.Millisecond), n)
	}
}
