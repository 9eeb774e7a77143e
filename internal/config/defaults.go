package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// Default returns the built-in configuration. It mirrors defaults/bricks.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  600,
			Height: 400,
		},
		Paddle: PaddleConfig{
			Y:      350,
			Height: 10,
			Speed:  6,
		},
		Ball: BallConfig{
			Size:   10,
			SpawnX: 300,
			SpawnY: 340,
		},
		Bricks: BricksConfig{
			Rows:       5,
			Cols:       10,
			Width:      50,
			Height:     20,
			SpacingX:   60,
			SpacingY:   25,
			MarginLeft: 10,
			MarginTop:  50,
			Points:     10,
			Colors: map[int]string{
				1: "red",
				2: "orange",
				3: "yellow",
			},
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			TickMillis: 16,
			HoldMillis: 550,
		},
		Difficulties: map[Difficulty]DifficultyConfig{
			DifficultyEasy: {
				BallSpeed:   3,
				PaddleWidth: 100,
				HitsByRow:   []int{1, 1, 1, 1, 1},
			},
			DifficultyMedium: {
				BallSpeed:   5,
				PaddleWidth: 80,
				HitsByRow:   []int{2, 2, 1, 1, 1},
			},
			DifficultyHard: {
				BallSpeed:   7,
				PaddleWidth: 60,
				HitsByRow:   []int{3, 3, 2, 2, 1},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBricksYAML
}
