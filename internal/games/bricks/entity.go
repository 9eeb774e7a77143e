// Package bricks implements the brick breaker simulation: a paddle, a
// bouncing ball and a grid of bricks, advanced one fixed tick at a time.
// It never touches the terminal; the platform feeds it input events and
// draws its state.
package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Surface is the area entities move on. Dimensions are queried on every
// update, so a surface may change size between ticks.
type Surface interface {
	Width() int
	Height() int
}

// Canvas is a fixed-size Surface.
type Canvas struct {
	W, H int
}

// Width returns the canvas width in canvas units.
func (c Canvas) Width() int { return c.W }

// Height returns the canvas height in canvas units.
func (c Canvas) Height() int { return c.H }

// Entity is the capability every object in a session exposes.
type Entity interface {
	Update()
	Bounds() core.Rect
	Destroy()
	Destroyed() bool
}

// Body is the positional component shared by all entities.
type Body struct {
	rect      core.Rect
	destroyed bool
}

func newBody(x, y, w, h int) Body {
	return Body{rect: core.NewRect(x, y, w, h)}
}

// Bounds returns the entity's bounding box.
func (b *Body) Bounds() core.Rect {
	return b.rect
}

// Move shifts the body by (dx, dy).
func (b *Body) Move(dx, dy int) {
	b.rect = b.rect.Translate(dx, dy)
}

// Destroy removes the body from play.
func (b *Body) Destroy() {
	b.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (b *Body) Destroyed() bool {
	return b.destroyed
}
