package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
)

type step struct {
	freq float64
	dur  time.Duration
}

// themeMelody is a short loop in A minor; zero frequencies are rests.
var themeMelody = []step{
	{220, 200 * time.Millisecond}, {262, 200 * time.Millisecond},
	{330, 200 * time.Millisecond}, {440, 400 * time.Millisecond},
	{0, 100 * time.Millisecond},
	{392, 200 * time.Millisecond}, {330, 200 * time.Millisecond},
	{294, 200 * time.Millisecond}, {330, 400 * time.Millisecond},
	{0, 100 * time.Millisecond},
	{196, 200 * time.Millisecond}, {247, 200 * time.Millisecond},
	{294, 200 * time.Millisecond}, {392, 400 * time.Millisecond},
	{0, 100 * time.Millisecond},
	{349, 200 * time.Millisecond}, {330, 200 * time.Millisecond},
	{262, 200 * time.Millisecond}, {220, 600 * time.Millisecond},
	{0, 300 * time.Millisecond},
}

func sequence(wave waveform, amp float64, steps []step) beep.Streamer {
	parts := make([]beep.Streamer, len(steps))
	for i, s := range steps {
		parts[i] = note(wave, s.freq, amp, s.dur)
	}
	return beep.Seq(parts...)
}

// Hit is the paddle impact blip.
func Hit() *Cue {
	return NewCue("hit", func() beep.Streamer {
		return note(square, 880, 0.2, 50*time.Millisecond)
	})
}

// Goal is a descending three-note jingle.
func Goal() *Cue {
	return NewCue("goal", func() beep.Streamer {
		return sequence(square, 0.2, []step{
			{660, 100 * time.Millisecond},
			{440, 100 * time.Millisecond},
			{330, 150 * time.Millisecond},
		})
	})
}

// Theme is the background music. It plays once per Play; the game restarts
// it whenever it stops.
func Theme() *Cue {
	return NewCue("theme", func() beep.Streamer {
		return sequence(sine, 0.3, themeMelody)
	})
}
