package game

import (
	"bytes"
	"log"
	"math/rand"
	"testing"
	"time"
)

type fakeSound struct {
	plays   int
	stopped bool
	err     error
	volume  float64
}

func (s *fakeSound) Play() error {
	s.plays++
	return s.err
}

func (s *fakeSound) Stopped() bool { return s.stopped }

func (s *fakeSound) SetVolume(level float64) { s.volume = level }

type keys map[Key]bool

func (k keys) Pressed(key Key) bool { return k[key] }

type fixedTimer struct {
	delta      time.Duration
	tick       int
	deltaCalls int
}

func (t *fixedTimer) Delta() time.Duration {
	t.deltaCalls++
	return t.delta
}

func (t *fixedTimer) Ticks() int { return t.tick }

// seqRand replays vals in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

type drawCall struct {
	sprite Sprite
	at     Vec
	text   string
}

type fakeCanvas struct {
	calls []drawCall
}

func (c *fakeCanvas) Draw(s Sprite, at Vec) {
	c.calls = append(c.calls, drawCall{sprite: s, at: at})
}

func (c *fakeCanvas) Text(msg string, at Vec) {
	c.calls = append(c.calls, drawCall{text: msg, at: at})
}

func (c *fakeCanvas) sprites() []Sprite {
	var out []Sprite
	for _, call := range c.calls {
		if call.sprite != nil {
			out = append(out, call.sprite)
		}
	}
	return out
}

func (c *fakeCanvas) texts() []string {
	var out []string
	for _, call := range c.calls {
		if call.text != "" {
			out = append(out, call.text)
		}
	}
	return out
}

var testFrames = []Sprite{"impact0", "impact1", "impact2", "impact3", "impact4", "blank"}

func testAssets() *Assets {
	return &Assets{
		Background:  "background",
		GameOver:    "gameover",
		LeftPaddle:  "bat1",
		RightPaddle: "bat2",
		Ball:        "ball",
		Impact:      testFrames,
		Goal:        &fakeSound{stopped: true},
		Hit:         &fakeSound{stopped: true},
		Theme:       &fakeSound{stopped: true},
	}
}

func newTestLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

func newTestMatch(t *testing.T) (*Match, *Assets) {
	t.Helper()
	assets := testAssets()
	m, err := NewMatch(assets, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m, assets
}

// newTestBall returns a ball and both paddles sharing one court.
func newTestBall(t *testing.T) (*Ball, *Paddle, *Paddle) {
	t.Helper()
	court := NewCourt()
	left := NewPaddle(court, SideLeft, "bat1")
	right := NewPaddle(court, SideRight, "bat2")
	ball := NewBall(court, "ball", &fakeSound{}, &fakeSound{}, rand.New(rand.NewSource(1)), log.New(&bytes.Buffer{}, "", 0))
	return ball, left, right
}

func setBall(b *Ball, at Vec, vel Vec) {
	b.Position = at
	b.Velocity = vel
	place(b.collider, at)
}
