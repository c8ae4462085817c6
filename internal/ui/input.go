package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/batpong/internal/game"
)

// DefaultHold is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHold = 150 * time.Millisecond

// Binding maps a terminal key to a logical game key.
// Left paddle: W/S. Right paddle: arrow keys. Start: space or Enter.
func Binding(key tcell.Key, r rune) (game.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyRightUp, true
	case tcell.KeyDown:
		return game.KeyRightDown, true
	case tcell.KeyEnter:
		return game.KeyStart, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyLeftUp, true
		case 's', 'S':
			return game.KeyLeftDown, true
		case ' ':
			return game.KeyStart, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// Keyboard turns key press events into held-key state. It implements
// game.Input.
type Keyboard struct {
	hold time.Duration
	last map[game.Key]time.Time
	now  time.Time
}

// NewKeyboard creates a keyboard where a press stays held for hold.
func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		hold: hold,
		last: make(map[game.Key]time.Time),
	}
}

// PressKey records a key press at the given time. Unbound keys are ignored.
func (k *Keyboard) PressKey(key tcell.Key, r rune, at time.Time) {
	if bound, ok := Binding(key, r); ok {
		k.last[bound] = at
	}
}

// Sample fixes the instant Pressed answers for. Call it once per tick so
// every query in a tick sees the same state.
func (k *Keyboard) Sample(now time.Time) {
	k.now = now
}

// Pressed reports whether key was pressed within the hold window.
func (k *Keyboard) Pressed(key game.Key) bool {
	at, ok := k.last[key]
	return ok && k.now.Sub(at) < k.hold
}
