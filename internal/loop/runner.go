package loop

import (
	"context"
	"time"
)

// DefaultMaxSteps bounds how many ticks one Advance may return, so a long
// stall does not turn into a burst of catch-up ticks.
const DefaultMaxSteps = 5

// Runner converts elapsed wall time into whole fixed-length ticks.
type Runner struct {
	Interval time.Duration
	MaxSteps int

	acc time.Duration
}

// NewRunner creates a runner for the given tick interval.
func NewRunner(interval time.Duration) *Runner {
	return &Runner{Interval: interval, MaxSteps: DefaultMaxSteps}
}

// Advance adds elapsed time and returns the number of ticks now due.
// Backlog beyond MaxSteps is discarded.
func (r *Runner) Advance(elapsed time.Duration) int {
	if r.Interval <= 0 || elapsed < 0 {
		return 0
	}
	r.acc += elapsed

	steps := int(r.acc / r.Interval)
	if r.MaxSteps > 0 && steps > r.MaxSteps {
		steps = r.MaxSteps
		r.acc = 0
		return steps
	}
	r.acc -= time.Duration(steps) * r.Interval
	return steps
}

// Run calls step once per due tick until step returns false or ctx is done.
// It returns ctx.Err() on cancellation and nil when step stops the loop.
func (r *Runner) Run(ctx context.Context, step func() bool) error {
	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			for i, n := 0, r.Advance(now.Sub(last)); i < n; i++ {
				if !step() {
					return nil
				}
			}
			last = now
		}
	}
}
