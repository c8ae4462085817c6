package game

// FrameSpeed is the number of updates each impact frame stays on screen.
const FrameSpeed = 6

// Impact is the short flash left where the ball struck a paddle. It plays
// through its frames once and then rests on the last one.
type Impact struct {
	position Vec
	frames   []Sprite
	frame    int
	counter  int
	hit      Sound
}

// NewImpact creates an impact at the given position showing its first frame.
func NewImpact(at Vec, frames []Sprite, hit Sound) *Impact {
	return &Impact{
		position: at,
		frames:   frames,
		hit:      hit,
	}
}

// Update advances the animation by one step.
func (i *Impact) Update() {
	if i.Finished() {
		return
	}
	i.counter++
	if i.counter == FrameSpeed {
		i.counter = 0
		i.frame++
	}
}

// PlayHitSound starts the impact's one-shot sound.
func (i *Impact) PlayHitSound() error {
	if i.hit == nil {
		return nil
	}
	return i.hit.Play()
}

// Finished reports whether the last frame has been reached.
func (i *Impact) Finished() bool {
	return i.frame >= len(i.frames)-1
}

// Frame returns the sprite currently shown.
func (i *Impact) Frame() Sprite {
	if len(i.frames) == 0 {
		return nil
	}
	return i.frames[i.frame]
}

// FrameIndex returns the index of the frame currently shown.
func (i *Impact) FrameIndex() int {
	return i.frame
}

func (i *Impact) Position() Vec {
	return i.position
}
