// Package assets resolves the logical asset names the game uses into sprite
// and sound handles.
package assets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/diegok/batpong/internal/audio"
	"github.com/diegok/batpong/internal/game"
	"github.com/diegok/batpong/internal/ui"
)

// Logical asset names.
const (
	Background = "background"
	GameOver   = "gameover"
	Bat1       = "bat1"
	Bat2       = "bat2"
	Ball       = "ball"
	Blank      = "blank"
	GoalSound  = "goal"
	HitSound   = "hit"
	ThemeMusic = "theme"
)

// ImpactFrames lists the impact animation in play order, ending on the blank
// frame.
var ImpactFrames = []string{"impact0", "impact1", "impact2", "impact3", "impact4", Blank}

// ErrUnknownAsset is the cause of every failed lookup.
var ErrUnknownAsset = errors.New("unknown asset")

// Catalog maps logical names to handles.
type Catalog struct {
	sprites map[string]game.Sprite
	sounds  map[string]game.Sound
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		sprites: make(map[string]game.Sprite),
		sounds:  make(map[string]game.Sound),
	}
}

func (c *Catalog) AddSprite(name string, s game.Sprite) {
	c.sprites[name] = s
}

func (c *Catalog) AddSound(name string, s game.Sound) {
	c.sounds[name] = s
}

// Sprite resolves a sprite by name.
func (c *Catalog) Sprite(name string) (game.Sprite, error) {
	s, ok := c.sprites[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAsset, "sprite %q", name)
	}
	return s, nil
}

// Sound resolves a sound by name.
func (c *Catalog) Sound(name string) (game.Sound, error) {
	s, ok := c.sounds[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAsset, "sound %q", name)
	}
	return s, nil
}

// Load resolves every asset a match needs. Any missing name is an error.
func Load(c *Catalog) (*game.Assets, error) {
	var (
		a   game.Assets
		err error
	)

	sprites := []struct {
		name string
		dst  *game.Sprite
	}{
		{Background, &a.Background},
		{GameOver, &a.GameOver},
		{Bat1, &a.LeftPaddle},
		{Bat2, &a.RightPaddle},
		{Ball, &a.Ball},
	}
	for _, s := range sprites {
		if *s.dst, err = c.Sprite(s.name); err != nil {
			return nil, errors.Wrap(err, "load assets")
		}
	}

	a.Impact = make([]game.Sprite, len(ImpactFrames))
	for i, name := range ImpactFrames {
		if a.Impact[i], err = c.Sprite(name); err != nil {
			return nil, errors.Wrap(err, "load assets")
		}
	}

	sounds := []struct {
		name string
		dst  *game.Sound
	}{
		{GoalSound, &a.Goal},
		{HitSound, &a.Hit},
		{ThemeMusic, &a.Theme},
	}
	for _, s := range sounds {
		if *s.dst, err = c.Sound(s.name); err != nil {
			return nil, errors.Wrap(err, "load assets")
		}
	}

	return &a, nil
}

// Palette holds the hex colours the built-in sprites are drawn with.
type Palette struct {
	Table       string
	Line        string
	Backdrop    string
	Bat1        string
	Bat2        string
	Ball        string
	ImpactStart string
	ImpactEnd   string
}

// DefaultPalette is a green table with red and blue bats.
var DefaultPalette = Palette{
	Table:       "#0b3d2e",
	Line:        "#6fa58c",
	Backdrop:    "#1b1b2f",
	Bat1:        "#e74c3c",
	Bat2:        "#3498db",
	Ball:        "#f5f5f5",
	ImpactStart: "#fff6a0",
	ImpactEnd:   "#c0392b",
}

func parse(hex string) (tcell.Color, colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, c, errors.Wrapf(err, "colour %q", hex)
	}
	return rgb(c), c, nil
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// impactGlyphs shrink as the flash fades.
var impactGlyphs = []rune{'✸', '✷', '✶', '*', '·'}

// Default builds the terminal sprites from p and the synthesized sounds.
func Default(p Palette) (*Catalog, error) {
	table, _, err := parse(p.Table)
	if err != nil {
		return nil, err
	}
	line, _, err := parse(p.Line)
	if err != nil {
		return nil, err
	}
	backdrop, _, err := parse(p.Backdrop)
	if err != nil {
		return nil, err
	}
	bat1, _, err := parse(p.Bat1)
	if err != nil {
		return nil, err
	}
	bat2, _, err := parse(p.Bat2)
	if err != nil {
		return nil, err
	}
	ball, _, err := parse(p.Ball)
	if err != nil {
		return nil, err
	}
	_, from, err := parse(p.ImpactStart)
	if err != nil {
		return nil, err
	}
	_, to, err := parse(p.ImpactEnd)
	if err != nil {
		return nil, err
	}

	c := NewCatalog()
	c.AddSprite(Background, &ui.Sprite{
		Name:        Background,
		Width:       game.ScreenWidth,
		Height:      game.ScreenHeight,
		Glyph:       ' ',
		Style:       tcell.StyleDefault.Background(table),
		Stripe:      '│',
		StripeStyle: tcell.StyleDefault.Background(table).Foreground(line),
	})
	c.AddSprite(GameOver, &ui.Sprite{
		Name:   GameOver,
		Width:  game.ScreenWidth,
		Height: game.ScreenHeight,
		Glyph:  '░',
		Style:  tcell.StyleDefault.Background(backdrop).Foreground(line),
	})
	c.AddSprite(Bat1, &ui.Sprite{
		Name:   Bat1,
		Width:  game.PaddleWidth,
		Height: game.PaddleHeight,
		Glyph:  '█',
		Style:  tcell.StyleDefault.Foreground(bat1).Background(table),
	})
	c.AddSprite(Bat2, &ui.Sprite{
		Name:   Bat2,
		Width:  game.PaddleWidth,
		Height: game.PaddleHeight,
		Glyph:  '█',
		Style:  tcell.StyleDefault.Foreground(bat2).Background(table),
	})
	c.AddSprite(Ball, &ui.Sprite{
		Name:   Ball,
		Width:  game.BallSize,
		Height: game.BallSize,
		Glyph:  '●',
		Style:  tcell.StyleDefault.Foreground(ball).Background(table),
	})

	// The visible frames fade from the start to the end colour; the last
	// name is the blank frame.
	visible := len(ImpactFrames) - 1
	for i, name := range ImpactFrames[:visible] {
		t := 0.0
		if visible > 1 {
			t = float64(i) / float64(visible-1)
		}
		c.AddSprite(name, &ui.Sprite{
			Name:   name,
			Width:  game.BallSize,
			Height: game.BallSize,
			Glyph:  impactGlyphs[i%len(impactGlyphs)],
			Style:  tcell.StyleDefault.Foreground(rgb(from.BlendLab(to, t))).Background(table),
		})
	}
	c.AddSprite(Blank, &ui.Sprite{Name: Blank, Blank: true})

	c.AddSound(GoalSound, audio.Goal())
	c.AddSound(HitSound, audio.Hit())
	c.AddSound(ThemeMusic, audio.Theme())

	return c, nil
}
