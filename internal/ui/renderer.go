package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/diegok/batpong/internal/game"
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
)

// viewport maps world coordinates onto the terminal cells above the status bar.
type viewport struct {
	cols, rows int
	sx, sy     float64
}

func newViewport(screenW, screenH int) viewport {
	rows := max(screenH-1, 0) // last row is the status bar
	return viewport{
		cols: screenW,
		rows: rows,
		sx:   float64(screenW) / game.ScreenWidth,
		sy:   float64(rows) / game.ScreenHeight,
	}
}

func (v viewport) cell(at game.Vec) (int, int) {
	return int(math.Floor(at.X * v.sx)), int(math.Floor(at.Y * v.sy))
}

// span returns the cells covered by a w x h box at at, clipped to the court.
// Anything on screen covers at least one cell.
func (v viewport) span(at game.Vec, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.cell(at)
	x1 = int(math.Ceil((at.X + w) * v.sx))
	y1 = int(math.Ceil((at.Y + h) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return max(x0, 0), max(y0, 0), min(x1, v.cols), min(y1, v.rows)
}

// Renderer draws a match onto the terminal. It implements game.Canvas.
type Renderer struct {
	screen *Screen
	view   viewport
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Begin clears the screen and fits the court to the current terminal size.
func (r *Renderer) Begin() {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.view = newViewport(w, h)
}

// Draw fills the cells covered by a *Sprite. Other handles are ignored.
func (r *Renderer) Draw(s game.Sprite, at game.Vec) {
	sp, ok := s.(*Sprite)
	if !ok || sp.Blank {
		return
	}

	x0, y0, x1, y1 := r.view.span(at, sp.Width, sp.Height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	r.screen.FillRect(x0, y0, x1-x0, y1-y0, sp.Style, sp.Glyph)

	if sp.Stripe != 0 {
		mid := (x0 + x1) / 2
		for y := y0; y < y1; y += 2 {
			r.screen.SetCell(mid, y, sp.StripeStyle, sp.Stripe)
		}
	}
}

// Text draws msg centred on at.X.
func (r *Renderer) Text(msg string, at game.Vec) {
	x, y := r.view.cell(at)
	if y < 0 || y >= r.view.rows {
		return
	}
	r.screen.DrawText(x-uniseg.StringWidth(msg)/2, y, msg, textStyle)
}

// End draws the status bar and shows the frame.
func (r *Renderer) End(status string) {
	w, h := r.screen.Size()
	if h > 0 {
		r.screen.FillRect(0, h-1, w, 1, statusStyle, ' ')
		r.screen.DrawText(1, h-1, status, statusStyle)
	}
	r.screen.Show()
}
