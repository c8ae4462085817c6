package game

import "github.com/solarlune/resolv"

// Screen dimensions in world units.
const (
	ScreenWidth  = 800.0
	ScreenHeight = 480.0
)

const (
	courtCellSize = 16
	// cellPad grows each box registered in the space. resolv files a box
	// under the cells of [X, X+W-1], so a sub-unit overlap across a cell
	// boundary would otherwise never share a cell.
	cellPad = 1.0

	tagBall   = "ball"
	tagPaddle = "paddle"
)

// Vec is a 2D position or velocity.
type Vec struct {
	X, Y float64
}

// Court is the collision space shared by the ball and both paddles.
type Court struct {
	space *resolv.Space
}

// NewCourt creates an empty court covering the whole screen.
func NewCourt() *Court {
	return &Court{
		space: resolv.NewSpace(int(ScreenWidth), int(ScreenHeight), courtCellSize, courtCellSize),
	}
}

func (c *Court) add(at Vec, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(at.X-cellPad, at.Y-cellPad, w+2*cellPad, h+2*cellPad, tags...)
	c.space.Add(obj)
	return obj
}

// place moves a box and refreshes the cells it occupies.
func place(obj *resolv.Object, at Vec) {
	obj.X = at.X - cellPad
	obj.Y = at.Y - cellPad
	obj.Update()
}

// bounds returns the unpadded box of obj as its top-left and bottom-right
// corners.
func bounds(obj *resolv.Object) (lo, hi Vec) {
	lo = Vec{X: obj.X + cellPad, Y: obj.Y + cellPad}
	hi = Vec{X: obj.X + obj.W - cellPad, Y: obj.Y + obj.H - cellPad}
	return lo, hi
}

// touching reports whether box a overlaps paddle box b. The space narrows the
// candidates to the cells a occupies; the final test is exact.
func touching(a, b *resolv.Object) bool {
	check := a.Check(0, 0, tagPaddle)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tagPaddle) {
		if o == b {
			return overlaps(a, b)
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	alo, ahi := bounds(a)
	blo, bhi := bounds(b)
	return alo.X < bhi.X && blo.X < ahi.X &&
		alo.Y < bhi.Y && blo.Y < ahi.Y
}
