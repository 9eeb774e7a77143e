package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Autopilot steers the paddle toward the ball. It drives headless runs
// and demos; it only ever emits the same events a player could.
type Autopilot struct {
	// Deadzone is how far (in canvas units) the paddle center may drift from
	// the ball center before the autopilot moves.
	Deadzone int
}

// NewAutopilot creates an autopilot with a deadzone of half the paddle speed.
func NewAutopilot(s *Session) *Autopilot {
	return &Autopilot{Deadzone: core.Max(s.Config().Paddle.Speed/2, 1)}
}

// Input returns the event that moves the paddle toward the ball.
func (a *Autopilot) Input(s *Session) core.InputEvent {
	ballX, _ := s.Ball().Bounds().Center()
	paddleX, _ := s.Paddle().Bounds().Center()

	switch offset := ballX - paddleX; {
	case offset < -a.Deadzone:
		return core.Press(core.ActionLeft)
	case offset > a.Deadzone:
		return core.Press(core.ActionRight)
	default:
		return core.Press(core.ActionStop)
	}
}

// Step feeds one autopilot input to the session and runs one tick.
func (a *Autopilot) Step(s *Session) TickResult {
	s.HandleInput(a.Input(s))
	return s.Tick()
}

// Play steps the session until it reaches a terminal state or maxTicks
// ticks have run. maxTicks <= 0 means no limit.
func (a *Autopilot) Play(s *Session, maxTicks int) Status {
	for maxTicks <= 0 || s.Ticks() < maxTicks {
		if res := a.Step(s); !res.Rearm {
			break
		}
	}
	return s.Status()
}
