package ui

import "github.com/gdamore/tcell/v2"

// Sprite stands in for an image on a terminal: a solid block of one glyph
// covering Width x Height world units.
type Sprite struct {
	Name   string
	Width  float64
	Height float64
	Glyph  rune
	Style  tcell.Style
	// Stripe, when set, is drawn on every other row down the sprite's
	// centre column.
	Stripe      rune
	StripeStyle tcell.Style
	// Blank sprites draw nothing.
	Blank bool
}
