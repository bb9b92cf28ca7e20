package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// attack is the fade-in length that keeps short cues from clicking
const attack = 2 * time.Millisecond

// NewTone returns a sine tone of fixed frequency with a linear fade-out
func NewTone(freq float64, dur time.Duration, volume float64, sr beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, dur, volume, sr)
}

// NewSweep returns a sine whose frequency glides exponentially from start to end
func NewSweep(start, end float64, dur time.Duration, volume float64, sr beep.SampleRate) beep.Streamer {
	total := sr.N(dur)
	ramp := sr.N(attack)
	ratio := end / start

	var pos int
	var phase float64

	gen := beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			progress := float64(pos) / float64(total)
			freq := start * math.Pow(ratio, progress)

			env := 1 - progress
			if pos < ramp {
				env *= float64(pos) / float64(ramp)
			}

			v := env * math.Sin(2*math.Pi*phase)
			samples[i][0] = v
			samples[i][1] = v

			phase += freq / float64(sr)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})

	// Gain scales by 1+Gain
	return &effects.Gain{Streamer: gen, Gain: volume - 1}
}
