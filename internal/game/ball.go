package game

import (
	"log"
	"math"

	"github.com/solarlune/resolv"
)

const (
	BallSize       = 24.0
	MinVelocity    = 150.0 // world units per second, per axis
	MaxVelocity    = 250.0
	SpeedRampTicks = 100 // ticks between speed-ups
	SpeedRampStep  = 0.1
	MaxSpeed       = 3.0
	ImpactOffset   = 10.0 // horizontal shift of the impact toward the paddle
	GoalVolume     = 0.2
)

// Ball moves across the court, bounces off the top and bottom edges and is
// sent back by the paddles.
type Ball struct {
	Position Vec // top-left corner
	Velocity Vec
	Speed    float64 // multiplier applied to Velocity
	Sprite   Sprite

	collider *resolv.Object
	impact   *Impact
	goal     Sound
	hit      Sound
	rng      Rand
	log      *log.Logger
}

// NewBall creates a ball in the centre of the court with a random launch.
func NewBall(court *Court, sprite Sprite, goal, hit Sound, rng Rand, logger *log.Logger) *Ball {
	b := &Ball{
		Sprite:   sprite,
		collider: court.add(Vec{}, BallSize, BallSize, tagBall),
		goal:     goal,
		hit:      hit,
		rng:      rng,
		log:      logger,
	}
	b.Reset()
	return b
}

// launchVelocity picks each axis independently in [MinVelocity, MaxVelocity)
// with a random sign.
func launchVelocity(r Rand) Vec {
	v := Vec{
		X: MinVelocity + r.Float64()*(MaxVelocity-MinVelocity),
		Y: MinVelocity + r.Float64()*(MaxVelocity-MinVelocity),
	}
	if r.Float64() < 0.5 {
		v.X = -v.X
	}
	if r.Float64() < 0.5 {
		v.Y = -v.Y
	}
	return v
}

// Reset places the ball in the centre of the court with a fresh launch
// velocity and the base speed.
func (b *Ball) Reset() {
	b.Position = Vec{X: (ScreenWidth - BallSize) / 2, Y: (ScreenHeight - BallSize) / 2}
	b.Velocity = launchVelocity(b.rng)
	b.Speed = 1
	place(b.collider, b.Position)
}

// Center returns the centre point of the ball.
func (b *Ball) Center() Vec {
	return Vec{X: b.Position.X + BallSize/2, Y: b.Position.Y + BallSize/2}
}

// Update advances the ball by dt seconds. tick drives the periodic speed-up.
func (b *Ball) Update(dt float64, tick int) {
	b.Position.X += b.Velocity.X * b.Speed * dt
	b.Position.Y += b.Velocity.Y * b.Speed * dt
	place(b.collider, b.Position)

	if b.Velocity.Y < 0 && b.Position.Y < 0 ||
		b.Velocity.Y > 0 && b.Position.Y+BallSize > ScreenHeight {
		b.Velocity.Y = -b.Velocity.Y
	}

	if tick%SpeedRampTicks == 0 {
		b.Speed = math.Min(b.Speed+SpeedRampStep, MaxSpeed)
	}
}

// CollideWith sends the ball away from p when they overlap and starts a new
// impact there. The active impact, old or new, advances one step per call.
func (b *Ball) CollideWith(p *Paddle, frames []Sprite) {
	if touching(b.collider, p.collider) {
		at := Vec{X: b.Position.X - ImpactOffset, Y: b.Position.Y}
		if p.Side == SideRight {
			at.X = b.Position.X + ImpactOffset
		}
		b.impact = NewImpact(at, frames, b.hit)
		if err := b.impact.PlayHitSound(); err != nil {
			b.log.Printf("[game] hit sound: %v", err)
		}

		switch p.Side {
		case SideLeft:
			b.Velocity.X = math.Abs(b.Velocity.X)
		case SideRight:
			b.Velocity.X = -math.Abs(b.Velocity.X)
		}
	}

	if b.impact != nil {
		b.impact.Update()
		if b.impact.Finished() {
			b.impact = nil
		}
	}
}

// CheckGoal reports whether the ball has left the court behind the paddle on
// side. On a goal the ball is reset and the scoring side is returned.
func (b *Ball) CheckGoal(side Side) (Side, bool) {
	switch side {
	case SideLeft:
		if b.Position.X < 0 {
			return b.scored(SideRight), true
		}
	case SideRight:
		if b.Position.X+BallSize > ScreenWidth {
			return b.scored(SideLeft), true
		}
	}
	return side, false
}

func (b *Ball) scored(scorer Side) Side {
	b.Reset()
	if err := b.goal.Play(); err != nil {
		b.log.Printf("[game] goal sound: %v", err)
	}
	return scorer
}

// Impact returns the active impact, or nil.
func (b *Ball) Impact() *Impact {
	return b.impact
}

// Draw issues the ball sprite followed by the active impact frame.
func (b *Ball) Draw(c Canvas) {
	c.Draw(b.Sprite, b.Position)
	if b.impact != nil {
		c.Draw(b.impact.Frame(), b.impact.Position())
	}
}
