package game

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	PaddleSpeed  = 500.0 // world units per second
	PaddleWidth  = 20.0
	PaddleHeight = 120.0
	paddleInset  = 40.0 // gap between a paddle and its screen edge
)

// Side identifies a paddle.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Paddle is a bat moved by two keys. Its score is written by the match.
type Paddle struct {
	Side     Side
	Position Vec // top-left corner
	Score    int
	Sprite   Sprite
	collider *resolv.Object
}

// NewPaddle creates a vertically centred paddle on the given side of the court.
func NewPaddle(court *Court, side Side, sprite Sprite) *Paddle {
	x := paddleInset
	if side == SideRight {
		x = ScreenWidth - paddleInset - PaddleWidth
	}
	pos := Vec{X: x, Y: (ScreenHeight - PaddleHeight) / 2}

	return &Paddle{
		Side:     side,
		Position: pos,
		Sprite:   sprite,
		collider: court.add(pos, PaddleWidth, PaddleHeight, tagPaddle, side.String()),
	}
}

// Update moves the paddle for dt seconds and keeps it on screen.
func (p *Paddle) Update(dt float64, up, down bool) {
	step := PaddleSpeed * dt
	if up {
		p.Position.Y = math.Max(0, p.Position.Y-step)
	}
	if down {
		p.Position.Y = math.Min(ScreenHeight-PaddleHeight, p.Position.Y+step)
	}
	place(p.collider, p.Position)
}
