package bricks

import (
	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

// Brick is a stationary target that breaks after a number of hits.
type Brick struct {
	Body
	row, col int
	hits     int
	color    core.Color
}

// NewBrick creates a brick needing the given number of hits.
func NewBrick(x, y, w, h, hits int, color core.Color) *Brick {
	return &Brick{
		Body:  newBody(x, y, w, h),
		hits:  hits,
		color: color,
	}
}

// Update is a no-op: bricks never move.
func (b *Brick) Update() {}

// Hit registers one hit and reports whether the brick is now broken.
func (b *Brick) Hit() bool {
	b.hits--
	return b.hits <= 0
}

// Hits returns the remaining hit count.
func (b *Brick) Hits() int {
	return b.hits
}

// Color returns the brick color. It is chosen from the initial hit count
// and does not change as the brick takes damage.
func (b *Brick) Color() core.Color {
	return b.color
}

// Cell returns the grid position the brick was created at.
func (b *Brick) Cell() (row, col int) {
	return b.row, b.col
}

// NewField lays out the brick grid for a difficulty preset, in row-major order.
func NewField(layout config.BricksConfig, preset config.DifficultyConfig) []*Brick {
	bricks := make([]*Brick, 0, layout.Rows*layout.Cols)

	for row := 0; row < layout.Rows; row++ {
		hits := preset.HitsForRow(row)
		color := core.ParseColor(layout.Colors[hits])

		for col := 0; col < layout.Cols; col++ {
			x := col*layout.SpacingX + layout.MarginLeft
			y := row*layout.SpacingY + layout.MarginTop

			b := NewBrick(x, y, layout.Width, layout.Height, hits, color)
			b.row, b.col = row, col
			bricks = append(bricks, b)
		}
	}
	return bricks
}
