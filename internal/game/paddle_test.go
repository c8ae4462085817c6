package game

import (
	"testing"
)

func TestNewPaddle(t *testing.T) {
	court := NewCourt()
	left := NewPaddle(court, SideLeft, "bat1")
	right := NewPaddle(court, SideRight, "bat2")

	if left.Side != SideLeft {
		t.Errorf("expected Side=left, got %v", left.Side)
	}
	if left.Position.X != paddleInset {
		t.Errorf("expected left X=%f, got %f", paddleInset, left.Position.X)
	}
	if right.Position.X != ScreenWidth-paddleInset-PaddleWidth {
		t.Errorf("expected right X=%f, got %f", ScreenWidth-paddleInset-PaddleWidth, right.Position.X)
	}
	wantY := (ScreenHeight - PaddleHeight) / 2
	if left.Position.Y != wantY || right.Position.Y != wantY {
		t.Errorf("expected both paddles at Y=%f, got %f and %f", wantY, left.Position.Y, right.Position.Y)
	}
	if left.Score != 0 || right.Score != 0 {
		t.Errorf("expected zero scores, got %d and %d", left.Score, right.Score)
	}
	if left.Sprite != "bat1" {
		t.Errorf("expected sprite bat1, got %v", left.Sprite)
	}
}

func TestPaddle_MoveUp(t *testing.T) {
	p := NewPaddle(NewCourt(), SideLeft, nil)
	initialY := p.Position.Y

	p.Update(0.1, true, false)

	expectedY := initialY - PaddleSpeed*0.1
	if p.Position.Y != expectedY {
		t.Errorf("expected Y=%f, got %f", expectedY, p.Position.Y)
	}
}

func TestPaddle_MoveDown(t *testing.T) {
	p := NewPaddle(NewCourt(), SideLeft, nil)
	initialY := p.Position.Y

	p.Update(0.1, false, true)

	expectedY := initialY + PaddleSpeed*0.1
	if p.Position.Y != expectedY {
		t.Errorf("expected Y=%f, got %f", expectedY, p.Position.Y)
	}
}

func TestPaddle_MoveNone(t *testing.T) {
	p := NewPaddle(NewCourt(), SideRight, nil)
	initialY := p.Position.Y

	p.Update(0.5, false, false)

	if p.Position.Y != initialY {
		t.Errorf("expected Y to remain unchanged, was %f, now %f", initialY, p.Position.Y)
	}
}

func TestPaddle_StaysInBounds(t *testing.T) {
	maxY := ScreenHeight - PaddleHeight

	tests := []struct {
		name     string
		startY   float64
		dt       float64
		up, down bool
	}{
		{"top, up, small step", 0, 0.016, true, false},
		{"near top, up, large step", 10, 1.0, true, false},
		{"bottom, down, small step", maxY, 0.016, false, true},
		{"near bottom, down, large step", maxY - 5, 2.0, false, true},
		{"middle, huge step up", maxY / 2, 100, true, false},
		{"middle, huge step down", maxY / 2, 100, false, true},
		{"both held", maxY / 2, 0.3, true, true},
		{"zero dt", maxY, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(NewCourt(), SideLeft, nil)
			p.Position.Y = tt.startY

			for i := 0; i < 10; i++ {
				p.Update(tt.dt, tt.up, tt.down)
				if p.Position.Y < 0 || p.Position.Y > maxY {
					t.Fatalf("paddle left the screen: Y=%f, allowed [0, %f]", p.Position.Y, maxY)
				}
			}
		})
	}
}

func TestPaddle_ColliderFollowsPosition(t *testing.T) {
	p := NewPaddle(NewCourt(), SideLeft, nil)

	p.Update(0.2, false, true)

	lo, hi := bounds(p.collider)
	if lo != p.Position {
		t.Errorf("collider at %v, paddle at %v", lo, p.Position)
	}
	if want := (Vec{X: p.Position.X + PaddleWidth, Y: p.Position.Y + PaddleHeight}); hi != want {
		t.Errorf("expected collider to end at %v, got %v", want, hi)
	}
}

func TestSide(t *testing.T) {
	if SideLeft.Opponent() != SideRight || SideRight.Opponent() != SideLeft {
		t.Error("Opponent should swap sides")
	}
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("unexpected names %q and %q", SideLeft, SideRight)
	}
}
