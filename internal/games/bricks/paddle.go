package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Paddle slides horizontally while a movement intent is set.
type Paddle struct {
	Body
	surface  Surface
	speed    int
	movement int // -1 left, 0 idle, +1 right
}

// NewPaddle creates a paddle horizontally centered on the surface.
func NewPaddle(surface Surface, y, width, height, speed int) *Paddle {
	x := surface.Width()/2 - width/2
	return &Paddle{
		Body:    newBody(x, y, width, height),
		surface: surface,
		speed:   speed,
	}
}

// StartMove sets a persistent movement intent. Only the sign of dir is used.
func (p *Paddle) StartMove(dir int) {
	p.movement = core.Sign(dir)
}

// StopMove clears the movement intent.
func (p *Paddle) StopMove() {
	p.movement = 0
}

// Movement returns the current intent: -1, 0 or +1.
func (p *Paddle) Movement() int {
	return p.movement
}

// Update moves the paddle one step in the intended direction.
// A step that would leave the surface is skipped entirely.
func (p *Paddle) Update() {
	if p.movement == 0 {
		return
	}

	next := p.Bounds().Translate(p.movement*p.speed, 0)
	if next.X < 0 || next.Right() > p.surface.Width() {
		return
	}
	p.Move(p.movement*p.speed, 0)
}
