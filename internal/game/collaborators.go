package game

import (
	"time"

	"github.com/pkg/errors"
)

// Sprite is an opaque drawable handle resolved by the asset layer. The core
// never looks inside it; it only hands it back to a Canvas.
type Sprite any

// Sound is a playable cue handle.
type Sound interface {
	// Play starts the cue once. A returned error means the cue did not start.
	Play() error
	// Stopped reports whether the cue is not currently playing.
	Stopped() bool
	SetVolume(level float64)
}

// Canvas receives draw requests in world coordinates (ScreenWidth x ScreenHeight).
type Canvas interface {
	Draw(s Sprite, at Vec)
	// Text draws msg centred horizontally on at.X.
	Text(msg string, at Vec)
}

// Key is a logical input binding.
type Key int

const (
	KeyLeftUp Key = iota
	KeyLeftDown
	KeyRightUp
	KeyRightDown
	KeyStart
)

// Input answers whether a logical key is currently held.
type Input interface {
	Pressed(k Key) bool
}

// Timer supplies frame timing to the match.
type Timer interface {
	// Delta is the real time elapsed since the previous tick.
	Delta() time.Duration
	// Ticks is a monotonically increasing frame counter.
	Ticks() int
}

// Rand is the random source used to launch the ball. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Assets holds every handle the match needs, resolved once at startup.
type Assets struct {
	Background  Sprite
	GameOver    Sprite
	LeftPaddle  Sprite
	RightPaddle Sprite
	Ball        Sprite
	// Impact frames in play order; the last one is the blank frame.
	Impact []Sprite

	Goal  Sound
	Hit   Sound
	Theme Sound
}

func (a *Assets) validate() error {
	if a == nil {
		return errors.New("no assets")
	}

	sprites := []struct {
		name string
		s    Sprite
	}{
		{"background", a.Background},
		{"game over", a.GameOver},
		{"left paddle", a.LeftPaddle},
		{"right paddle", a.RightPaddle},
		{"ball", a.Ball},
	}
	for _, sp := range sprites {
		if sp.s == nil {
			return errors.Errorf("missing %s sprite", sp.name)
		}
	}

	if len(a.Impact) == 0 {
		return errors.New("missing impact frames")
	}
	for i, f := range a.Impact {
		if f == nil {
			return errors.Errorf("missing impact frame %d", i)
		}
	}

	sounds := []struct {
		name string
		s    Sound
	}{
		{"goal", a.Goal},
		{"hit", a.Hit},
		{"theme", a.Theme},
	}
	for _, so := range sounds {
		if so.s == nil {
			return errors.Errorf("missing %s sound", so.name)
		}
	}
	return nil
}
