// Package clock measures frame time for the game loop.
package clock

import "time"

// MaxDelta caps a single frame step.
const MaxDelta = 100 * time.Millisecond

// Clock reports the time elapsed between ticks. It implements game.Timer.
type Clock struct {
	now   func() time.Time
	last  time.Time
	delta time.Duration
	ticks int
}

// New creates a clock that starts counting now.
func New() *Clock {
	return NewWithSource(time.Now)
}

// NewWithSource creates a clock that reads time from now.
func NewWithSource(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// Tick closes the current frame and returns the instant it was taken.
func (c *Clock) Tick() time.Time {
	t := c.now()
	d := t.Sub(c.last)
	if d < 0 {
		d = 0
	}
	c.delta = min(d, MaxDelta)
	c.last = t
	c.ticks++
	return t
}

// Delta is the length of the last frame.
func (c *Clock) Delta() time.Duration {
	return c.delta
}

// Ticks is the number of frames since the clock started.
func (c *Clock) Ticks() int {
	return c.ticks
}
