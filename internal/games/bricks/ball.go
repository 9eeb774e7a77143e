package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Ball moves at a constant speed on both axes. Reflections only flip the
// sign of a velocity component, never its magnitude.
type Ball struct {
	Body
	surface Surface
	speed   int
	dx, dy  int
}

// NewBall creates a ball at (x, y) heading up and to the right.
func NewBall(surface Surface, x, y, size, speed int) *Ball {
	return &Ball{
		Body:    newBody(x, y, size, size),
		surface: surface,
		speed:   speed,
		dx:      speed,
		dy:      -speed,
	}
}

// Update advances the ball by its velocity and reflects it off the side
// and top walls. The bottom edge is open.
func (b *Ball) Update() {
	b.Move(b.dx, b.dy)

	r := b.Bounds()
	if r.X <= 0 || r.Right() >= b.surface.Width() {
		b.dx = -b.dx
	}
	if r.Y <= 0 {
		b.dy = -b.dy
	}
}

// Velocity returns the current (dx, dy).
func (b *Ball) Velocity() (int, int) {
	return b.dx, b.dy
}

// Speed returns the per-axis speed magnitude.
func (b *Ball) Speed() int {
	return b.speed
}

// BounceUp forces the ball upward whatever its current direction.
func (b *Ball) BounceUp() {
	b.dy = -core.Abs(b.dy)
}

// Reflect reverses vertical motion.
func (b *Ball) Reflect() {
	b.dy = -b.dy
}
