package game

import (
	"fmt"
	"io"
	"log"

	"github.com/pkg/errors"
)

const (
	WinScore    = 10
	ThemeVolume = 0.2
	scoreLineY  = 12.0
)

// Phase is the top-level state of a match.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseRunning
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Match owns both paddles and the ball and moves through Menu, Running and
// Over, in that order only.
type Match struct {
	Left  *Paddle
	Right *Paddle
	Ball  *Ball

	phase  Phase
	winner Side
	dt     float64
	assets *Assets
	log    *log.Logger

	themeFailing bool
}

// NewMatch validates the assets and sets up a match in the menu phase.
// A nil logger discards log output.
func NewMatch(assets *Assets, rng Rand, logger *log.Logger) (*Match, error) {
	if err := assets.validate(); err != nil {
		return nil, errors.Wrap(err, "new match")
	}
	if rng == nil {
		return nil, errors.New("new match: nil random source")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	assets.Theme.SetVolume(ThemeVolume)
	assets.Goal.SetVolume(GoalVolume)

	court := NewCourt()
	return &Match{
		Left:   NewPaddle(court, SideLeft, assets.LeftPaddle),
		Right:  NewPaddle(court, SideRight, assets.RightPaddle),
		Ball:   NewBall(court, assets.Ball, assets.Goal, assets.Hit, rng, logger),
		phase:  PhaseMenu,
		assets: assets,
		log:    logger,
	}, nil
}

// Phase returns the current phase.
func (m *Match) Phase() Phase {
	return m.phase
}

// Winner returns the winning side once the match is over.
func (m *Match) Winner() (Side, bool) {
	return m.winner, m.phase == PhaseOver
}

// Elapsed returns the frame time, in seconds, used by the last running tick.
func (m *Match) Elapsed() float64 {
	return m.dt
}

// Scores returns the left and right scores.
func (m *Match) Scores() (left, right int) {
	return m.Left.Score, m.Right.Score
}

// Paddle returns the paddle on the given side.
func (m *Match) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return m.Left
	}
	return m.Right
}

// Update runs one tick.
func (m *Match) Update(t Timer, in Input) {
	switch m.phase {
	case PhaseMenu:
		if in.Pressed(KeyStart) {
			m.phase = PhaseRunning
			m.log.Println("[game] match started")
		}
	case PhaseRunning:
		m.step(t, in)
	case PhaseOver:
	default:
		panic(fmt.Sprintf("game: update in unknown phase %v", m.phase))
	}
}

func (m *Match) step(t Timer, in Input) {
	m.keepThemePlaying()

	m.dt = t.Delta().Seconds()
	m.Left.Update(m.dt, in.Pressed(KeyLeftUp), in.Pressed(KeyLeftDown))
	m.Right.Update(m.dt, in.Pressed(KeyRightUp), in.Pressed(KeyRightDown))
	m.Ball.Update(m.dt, t.Ticks())

	// Left first, then right; a goal recentres the ball so only one can fire.
	for _, p := range []*Paddle{m.Left, m.Right} {
		m.Ball.CollideWith(p, m.assets.Impact)
		if scorer, ok := m.Ball.CheckGoal(p.Side); ok {
			m.Paddle(scorer).Score++
			m.log.Printf("[game] %s scores, %d-%d", scorer, m.Left.Score, m.Right.Score)
		}
	}

	m.checkWinner()
}

// checkWinner ends the match once a score reaches WinScore. The left side is
// checked first and so wins a same-tick tie.
func (m *Match) checkWinner() {
	switch {
	case m.Left.Score >= WinScore:
		m.finish(SideLeft)
	case m.Right.Score >= WinScore:
		m.finish(SideRight)
	}
}

func (m *Match) finish(winner Side) {
	m.winner = winner
	m.phase = PhaseOver
	m.log.Printf("[game] match over, %s wins %d-%d", winner, m.Left.Score, m.Right.Score)
}

// keepThemePlaying restarts the theme whenever it has stopped. A failing
// restart is logged once until it succeeds again.
func (m *Match) keepThemePlaying() {
	if !m.assets.Theme.Stopped() {
		return
	}
	if err := m.assets.Theme.Play(); err != nil {
		if !m.themeFailing {
			m.log.Printf("[game] theme restart: %v", err)
		}
		m.themeFailing = true
		return
	}
	m.themeFailing = false
}

// Draw renders the current phase onto c.
func (m *Match) Draw(c Canvas) {
	mid := ScreenWidth / 2

	switch m.phase {
	case PhaseMenu:
		c.Text("BATPONG", Vec{X: mid, Y: ScreenHeight/2 - 60})
		c.Text("Press space to start", Vec{X: mid, Y: ScreenHeight / 2})
		c.Text("Left: W/S   Right: Up/Down   Quit: q", Vec{X: mid, Y: ScreenHeight/2 + 60})
	case PhaseRunning:
		c.Draw(m.assets.Background, Vec{})
		c.Draw(m.Left.Sprite, m.Left.Position)
		c.Draw(m.Right.Sprite, m.Right.Position)
		m.Ball.Draw(c)
		c.Text(m.scoreLine(), Vec{X: mid, Y: scoreLineY})
	case PhaseOver:
		c.Draw(m.assets.GameOver, Vec{})
		c.Text(m.scoreLine(), Vec{X: mid, Y: ScreenHeight/2 - 30})
		c.Text(m.winnerText(), Vec{X: mid, Y: ScreenHeight/2 + 30})
	default:
		panic(fmt.Sprintf("game: draw in unknown phase %v", m.phase))
	}
}

func (m *Match) scoreLine() string {
	return fmt.Sprintf("%d  -  %d", m.Left.Score, m.Right.Score)
}

func (m *Match) winnerText() string {
	if m.winner == SideLeft {
		return "Player 1 Won!"
	}
	return "Player 2 Won!"
}
