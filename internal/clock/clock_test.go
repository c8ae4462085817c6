package clock

import (
	"testing"
	"time"
)

type manual struct {
	t time.Time
}

func (m *manual) now() time.Time { return m.t }

func (m *manual) advance(d time.Duration) { m.t = m.t.Add(d) }

func TestClock_Delta(t *testing.T) {
	src := &manual{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewWithSource(src.now)

	if c.Delta() != 0 || c.Ticks() != 0 {
		t.Fatalf("expected a fresh clock, got delta %v ticks %d", c.Delta(), c.Ticks())
	}

	src.advance(16 * time.Millisecond)
	at := c.Tick()

	if !at.Equal(src.t) {
		t.Errorf("expected Tick to return %v, got %v", src.t, at)
	}
	if c.Delta() != 16*time.Millisecond {
		t.Errorf("expected 16ms delta, got %v", c.Delta())
	}
	if c.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", c.Ticks())
	}

	src.advance(20 * time.Millisecond)
	c.Tick()
	if c.Delta() != 20*time.Millisecond {
		t.Errorf("expected 20ms delta, got %v", c.Delta())
	}
	if c.Ticks() != 2 {
		t.Errorf("expected 2 ticks, got %d", c.Ticks())
	}
}

func TestClock_Clamp(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		want    time.Duration
	}{
		{"normal frame", 10 * time.Millisecond, 10 * time.Millisecond},
		{"stall", 2 * time.Second, MaxDelta},
		{"clock stepped back", -time.Second, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &manual{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
			c := NewWithSource(src.now)

			src.advance(tt.advance)
			c.Tick()

			if c.Delta() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, c.Delta())
			}
		})
	}
}
