package core

import "time"

// RuntimeConfig contains settings the platform passes to the front end.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters
	ScreenH      int           // Terminal height in characters
	TickInterval time.Duration // Delay between simulation ticks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 16 * time.Millisecond,
	}
}
