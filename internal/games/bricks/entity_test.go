package bricks

import (
	"testing"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

var testCanvas = Canvas{W: 600, H: 400}

func TestBallWallReflection(t *testing.T) {
	tests := []struct {
		name           string
		x, y, dx, dy   int
		wantDX, wantDY int
	}{
		{"left wall", 3, 200, -5, 5, 5, 5},
		{"right wall", 587, 200, 5, 5, -5, 5},
		{"top wall", 300, 3, 5, -5, 5, 5},
		{"top-left corner", 2, 2, -5, -5, 5, 5},
		{"mid-field", 300, 200, -5, -5, -5, -5},
		{"bottom is open", 300, 395, 5, 5, 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBall(testCanvas, tc.x, tc.y, 10, 5)
			b.dx, b.dy = tc.dx, tc.dy
			b.Update()

			dx, dy := b.Velocity()
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Errorf("velocity = (%d, %d), expected (%d, %d)", dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestBallFlipsOncePerCrossing(t *testing.T) {
	b := NewBall(testCanvas, 13, 200, 10, 5)
	b.dx, b.dy = -5, 0

	flips := 0
	prev, _ := b.Velocity()
	for i := 0; i < 10; i++ {
		b.Update()
		dx, _ := b.Velocity()
		if dx != prev {
			flips++
		}
		prev = dx
	}
	// 13 -> 8 -> 3 -> -2 (flip) -> 3 -> 8 ...
	if flips != 1 {
		t.Errorf("dx flipped %d times, expected exactly 1", flips)
	}
}

func TestBallSpeedIsConstant(t *testing.T) {
	b := NewBall(testCanvas, 300, 340, 10, 7)
	for i := 0; i < 500; i++ {
		b.Update()
		dx, dy := b.Velocity()
		if core.Abs(dx) != 7 || core.Abs(dy) != 7 {
			t.Fatalf("velocity magnitude changed: (%d, %d)", dx, dy)
		}
		if b.Bounds().Bottom() >= testCanvas.H {
			return
		}
	}
}

func TestBallBounceUpAndReflect(t *testing.T) {
	b := NewBall(testCanvas, 300, 200, 10, 5)

	b.dy = 5
	b.BounceUp()
	if _, dy := b.Velocity(); dy != -5 {
		t.Errorf("BounceUp from downward: dy = %d, expected -5", dy)
	}

	b.BounceUp()
	if _, dy := b.Velocity(); dy != -5 {
		t.Errorf("BounceUp from upward: dy = %d, expected -5", dy)
	}

	b.Reflect()
	if _, dy := b.Velocity(); dy != 5 {
		t.Errorf("Reflect: dy = %d, expected 5", dy)
	}
}

func TestPaddleStartsCentered(t *testing.T) {
	p := NewPaddle(testCanvas, 350, 80, 10, 6)
	r := p.Bounds()
	if r.X != 260 || r.Y != 350 || r.W != 80 || r.H != 10 {
		t.Errorf("paddle bounds = %+v, expected {260 350 80 10}", r)
	}
}

func TestPaddleClampedToSurface(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		dir       int
		wantX     int
		wantRight int
	}{
		// 260 is not a multiple of 6: the final partial step is skipped
		{"medium left", 80, -1, 2, 82},
		{"medium right", 80, 1, 518, 598},
		{"hard left reaches edge", 60, -1, 0, 60},
		{"hard right reaches edge", 60, 1, 540, 600},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(testCanvas, 350, tc.width, 10, 6)
			p.StartMove(tc.dir)

			for i := 0; i < 200; i++ {
				p.Update()
				r := p.Bounds()
				if r.X < 0 || r.Right() > testCanvas.W {
					t.Fatalf("paddle left the surface: %+v", r)
				}
			}

			r := p.Bounds()
			if r.X != tc.wantX || r.Right() != tc.wantRight {
				t.Errorf("paddle = [%d, %d], expected [%d, %d]", r.X, r.Right(), tc.wantX, tc.wantRight)
			}
		})
	}
}

func TestPaddleMovementIntent(t *testing.T) {
	p := NewPaddle(testCanvas, 350, 80, 10, 6)

	p.StartMove(-3)
	if p.Movement() != -1 {
		t.Errorf("Movement() = %d, expected -1", p.Movement())
	}
	p.Update()
	if p.Bounds().X != 254 {
		t.Errorf("X = %d, expected 254", p.Bounds().X)
	}

	p.StopMove()
	p.Update()
	if p.Bounds().X != 254 {
		t.Errorf("stopped paddle moved to %d", p.Bounds().X)
	}
}

func TestNewFieldLayout(t *testing.T) {
	cfg := config.Default()
	preset, _ := cfg.Preset(config.DifficultyHard)
	field := NewField(cfg.Bricks, preset)

	if len(field) != 50 {
		t.Fatalf("field has %d bricks, expected 50", len(field))
	}

	// Row-major order
	b := field[2*10+3]
	if row, col := b.Cell(); row != 2 || col != 3 {
		t.Errorf("field[23].Cell() = (%d, %d), expected (2, 3)", row, col)
	}
	r := b.Bounds()
	if r.X != 190 || r.Y != 100 || r.W != 50 || r.H != 20 {
		t.Errorf("brick (2,3) bounds = %+v, expected {190 100 50 20}", r)
	}
}

func TestFieldHitsByDifficulty(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		difficulty config.Difficulty
		hits       []int
	}{
		{config.DifficultyEasy, []int{1, 1, 1, 1, 1}},
		{config.DifficultyMedium, []int{2, 2, 1, 1, 1}},
		{config.DifficultyHard, []int{3, 3, 2, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			preset, err := cfg.Preset(tc.difficulty)
			if err != nil {
				t.Fatal(err)
			}
			for _, b := range NewField(cfg.Bricks, preset) {
				row, col := b.Cell()
				if b.Hits() != tc.hits[row] {
					t.Errorf("brick (%d,%d) hits = %d, expected %d", row, col, b.Hits(), tc.hits[row])
				}
			}
		})
	}
}

func TestBrickColorFixedAtCreation(t *testing.T) {
	cfg := config.Default()
	preset, _ := cfg.Preset(config.DifficultyHard)
	field := NewField(cfg.Bricks, preset)

	wantByRow := []core.Color{core.ColorYellow, core.ColorYellow, core.ColorOrange, core.ColorOrange, core.ColorRed}
	for _, b := range field {
		row, _ := b.Cell()
		if b.Color() != wantByRow[row] {
			t.Errorf("row %d color = %d, expected %d", row, b.Color(), wantByRow[row])
		}
	}

	b := field[0]
	if b.Hit() {
		t.Fatal("3-hit brick broke after one hit")
	}
	if b.Hits() != 2 || b.Color() != core.ColorYellow {
		t.Errorf("after one hit: hits = %d color = %d, expected 2 and yellow", b.Hits(), b.Color())
	}
	b.Hit()
	if !b.Hit() {
		t.Error("3-hit brick should break on the third hit")
	}
}

func TestBodyDestroy(t *testing.T) {
	var e Entity = NewBrick(0, 0, 50, 20, 1, core.ColorRed)
	if e.Destroyed() {
		t.Fatal("new brick should not be destroyed")
	}
	e.Update()
	e.Destroy()
	if !e.Destroyed() {
		t.Error("Destroy() should mark the entity destroyed")
	}
}
