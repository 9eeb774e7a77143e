// Package config provides YAML-based game configuration loading and the
// difficulty presets for the brick breaker.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config contains all tunable parameters of a session.
type Config struct {
	Canvas       CanvasConfig                    `yaml:"canvas"`
	Paddle       PaddleConfig                    `yaml:"paddle"`
	Ball         BallConfig                      `yaml:"ball"`
	Bricks       BricksConfig                    `yaml:"bricks"`
	Gameplay     GameplayConfig                  `yaml:"gameplay"`
	Difficulties map[Difficulty]DifficultyConfig `yaml:"difficulties"`
}

// CanvasConfig defines the logical playing field size.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines paddle geometry shared by all difficulties.
type PaddleConfig struct {
	Y      int `yaml:"y"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Units per tick
}

// BallConfig defines ball size and the spawn point used on start and after a lost life.
type BallConfig struct {
	Size   int `yaml:"size"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int            `yaml:"rows"`
	Cols       int            `yaml:"cols"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	SpacingX   int            `yaml:"spacing_x"`
	SpacingY   int            `yaml:"spacing_y"`
	MarginLeft int            `yaml:"margin_left"`
	MarginTop  int            `yaml:"margin_top"`
	Points     int            `yaml:"points"`
	Colors     map[int]string `yaml:"colors"` // Initial hits -> color name
}

// GameplayConfig defines lives and loop timing.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	TickMillis int `yaml:"tick_millis"`

	// HoldMillis is how long a directional key counts as held after its
	// last press or autorepeat. Zero keeps the paddle moving until a stop
	// or opposite key.
	HoldMillis int `yaml:"hold_millis"`
}

// DifficultyConfig holds the values a difficulty preset changes.
type DifficultyConfig struct {
	BallSpeed   int   `yaml:"ball_speed"`
	PaddleWidth int   `yaml:"paddle_width"`
	HitsByRow   []int `yaml:"hits_by_row"` // Rows past the end reuse the last entry
}

// Difficulty represents a named difficulty preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the presets in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ErrUnknownDifficulty is returned for difficulty names outside the presets.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: %q: %w", s, ErrUnknownDifficulty)
}

// Title returns the capitalized preset name for display.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Preset returns the parameters for a difficulty.
func (c Config) Preset(d Difficulty) (DifficultyConfig, error) {
	p, ok := c.Difficulties[d]
	if !ok {
		return DifficultyConfig{}, fmt.Errorf("config: %q: %w", d, ErrUnknownDifficulty)
	}
	return p, nil
}

// HitsForRow returns how many hits a brick in the given row needs.
func (p DifficultyConfig) HitsForRow(row int) int {
	if len(p.HitsByRow) == 0 {
		return 1
	}
	if row >= len(p.HitsByRow) {
		return p.HitsByRow[len(p.HitsByRow)-1]
	}
	return p.HitsByRow[row]
}

// TickInterval returns the configured delay between ticks.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Gameplay.TickMillis) * time.Millisecond
}

// HoldTimeout returns the synthesized key release delay.
func (c Config) HoldTimeout() time.Duration {
	return time.Duration(c.Gameplay.HoldMillis) * time.Millisecond
}

// Validate checks that every size, count and preset is usable.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("canvas.width", c.Canvas.Width)
	positive("canvas.height", c.Canvas.Height)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.size", c.Ball.Size)
	positive("bricks.rows", c.Bricks.Rows)
	positive("bricks.cols", c.Bricks.Cols)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	positive("gameplay.lives", c.Gameplay.Lives)
	positive("gameplay.tick_millis", c.Gameplay.TickMillis)
	if c.Gameplay.HoldMillis < 0 {
		errs = append(errs, fmt.Errorf("gameplay.hold_millis must not be negative, got %d", c.Gameplay.HoldMillis))
	}
	if c.Bricks.Points < 0 {
		errs = append(errs, fmt.Errorf("bricks.points must not be negative, got %d", c.Bricks.Points))
	}

	for _, d := range Difficulties {
		p, ok := c.Difficulties[d]
		if !ok {
			errs = append(errs, fmt.Errorf("difficulties.%s is missing", d))
			continue
		}
		positive("difficulties."+string(d)+".ball_speed", p.BallSpeed)
		positive("difficulties."+string(d)+".paddle_width", p.PaddleWidth)
		if len(p.HitsByRow) == 0 {
			errs = append(errs, fmt.Errorf("difficulties.%s.hits_by_row is empty", d))
		}
		for i, h := range p.HitsByRow {
			if h < 1 {
				errs = append(errs, fmt.Errorf("difficulties.%s.hits_by_row[%d] must be at least 1, got %d", d, i, h))
			}
		}
	}
	for d := range c.Difficulties {
		if _, err := ParseDifficulty(string(d)); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}
