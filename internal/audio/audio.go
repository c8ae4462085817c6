package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// ErrNoOutput is returned by Play when the speaker was never initialized.
var ErrNoOutput = errors.New("audio output not initialized")

var (
	initialized bool
	muted       bool
	master      = 1.0
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Mute makes every cue report success without producing sound.
func Mute() {
	muted = true
}

// SetMasterVolume scales every cue; 0 is silent, 1 is full level.
func SetMasterVolume(level float64) {
	master = clamp01(level)
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Cue is a named sound that can be played any number of times. Each Play
// builds a fresh streamer, so overlapping plays are independent.
type Cue struct {
	Name    string
	build   func() beep.Streamer
	volume  float64
	playing atomic.Bool // written from the speaker goroutine
}

// NewCue creates a cue at full volume from a streamer factory.
func NewCue(name string, build func() beep.Streamer) *Cue {
	return &Cue{Name: name, build: build, volume: 1}
}

// Play starts the cue once.
func (c *Cue) Play() error {
	if muted {
		c.playing.Store(true)
		return nil
	}
	if !initialized {
		return errors.Wrapf(ErrNoOutput, "play %s", c.Name)
	}

	c.playing.Store(true)
	speaker.Play(c.stream())
	return nil
}

// Stopped reports whether the last Play has finished.
func (c *Cue) Stopped() bool {
	return !c.playing.Load()
}

// SetVolume sets the cue level for subsequent plays; 0 is silent, 1 is full.
func (c *Cue) SetVolume(level float64) {
	c.volume = clamp01(level)
}

// stream wraps a fresh streamer with the current gain and a completion flag.
func (c *Cue) stream() beep.Streamer {
	gain := c.volume * master
	vol := &effects.Volume{
		Streamer: c.build(),
		Base:     2,
		Volume:   math.Log2(gain),
		Silent:   gain <= 0,
	}
	return beep.Seq(vol, beep.Callback(func() {
		c.playing.Store(false)
	}))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// waveform maps a phase, in cycles, to a sample in [-1, 1].
type waveform func(phase float64) float64

func sine(phase float64) float64 {
	return math.Sin(2 * math.Pi * phase)
}

// square gives the retro 8-bit feel used for effects.
func square(phase float64) float64 {
	if math.Mod(phase, 1.0) > 0.5 {
		return -1
	}
	return 1
}

// note generates freq Hz of the given waveform at amp for duration. A zero
// frequency is a rest.
func note(wave waveform, freq, amp float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	if freq <= 0 {
		return beep.Silence(numSamples)
	}
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := wave(phase) * amp
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
