package bricks

import (
	"fmt"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

var (
	_ Entity = (*Ball)(nil)
	_ Entity = (*Paddle)(nil)
	_ Entity = (*Brick)(nil)
)

// Status is the session's position in its lifecycle.
type Status int

const (
	StatusRunning  Status = iota
	StatusPaused          // Ticks are suspended until resumed
	StatusGameOver        // Last life lost
	StatusVictory         // Every brick destroyed
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	case StatusVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will ever run.
func (s Status) Terminal() bool {
	return s == StatusGameOver || s == StatusVictory
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPaddleBounce EventKind = iota
	EventBrickHit
	EventBrickDestroyed
	EventLifeLost
	EventGameOver
	EventVictory
	EventWallBounce
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleBounce:
		return "paddle_bounce"
	case EventBrickHit:
		return "brick_hit"
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	case EventWallBounce:
		return "wall_bounce"
	default:
		return "unknown"
	}
}

// Event describes one occurrence within a tick.
type Event struct {
	Kind  EventKind
	Row   int // Brick events only
	Col   int // Brick events only
	Score int
	Lives int
}

// TickResult is returned by Tick.
type TickResult struct {
	Status Status
	Events []Event
	Rearm  bool // Whether the caller should schedule another tick
}

// Session is one play-through from difficulty selection to a terminal state.
// A session is never reused: restarting builds a new one.
type Session struct {
	cfg        config.Config
	difficulty config.Difficulty
	preset     config.DifficultyConfig
	canvas     Canvas

	paddle *Paddle
	ball   *Ball
	bricks []*Brick

	score  int
	lives  int
	ticks  int
	status Status
}

// NewSession creates a running session for the given difficulty.
func NewSession(cfg config.Config, difficulty config.Difficulty) (*Session, error) {
	preset, err := cfg.Preset(difficulty)
	if err != nil {
		return nil, fmt.Errorf("bricks: cannot start session: %w", err)
	}

	s := &Session{
		cfg:        cfg,
		difficulty: difficulty,
		preset:     preset,
		canvas:     Canvas{W: cfg.Canvas.Width, H: cfg.Canvas.Height},
		lives:      cfg.Gameplay.Lives,
		status:     StatusRunning,
	}

	s.paddle = NewPaddle(&s.canvas, cfg.Paddle.Y, preset.PaddleWidth, cfg.Paddle.Height, cfg.Paddle.Speed)
	s.ball = s.spawnBall()
	s.bricks = NewField(cfg.Bricks, preset)

	return s, nil
}

// spawnBall creates a ball at the fixed spawn point.
func (s *Session) spawnBall() *Ball {
	b := s.cfg.Ball
	return NewBall(&s.canvas, b.SpawnX, b.SpawnY, b.Size, s.preset.BallSpeed)
}

// Restart destroys this session and returns a fresh one with the same
// difficulty and configuration.
func (s *Session) Restart() (*Session, error) {
	s.Destroy()
	return NewSession(s.cfg, s.difficulty)
}

// Destroy removes every entity from play.
func (s *Session) Destroy() {
	s.paddle.Destroy()
	s.ball.Destroy()
	for _, b := range s.bricks {
		b.Destroy()
	}
	s.bricks = nil
}

// Resize changes the playing field dimensions. Entities read them on
// their next update; nothing already on the field is moved.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.canvas.W, s.canvas.H = w, h
}

// HandleInput applies a discrete input event. Directional presses set the
// paddle intent, releases clear it, the last event wins.
// Returns true if the tick cycle must be re-armed (resume from pause).
func (s *Session) HandleInput(ev core.InputEvent) bool {
	switch ev.Action {
	case core.ActionLeft, core.ActionRight:
		if ev.Released {
			s.paddle.StopMove()
		} else {
			s.paddle.StartMove(ev.Action.Direction())
		}
	case core.ActionStop:
		s.paddle.StopMove()
	case core.ActionPause:
		if !ev.Released {
			return s.TogglePause()
		}
	}
	return false
}

// TogglePause switches between running and paused. Terminal sessions
// ignore it. Returns true when the session resumed and needs a tick.
func (s *Session) TogglePause() bool {
	switch s.status {
	case StatusRunning:
		s.status = StatusPaused
	case StatusPaused:
		s.status = StatusRunning
		return true
	}
	return false
}

// Tick advances the simulation by one step. It does nothing unless the
// session is running.
func (s *Session) Tick() TickResult {
	if s.status != StatusRunning {
		return TickResult{Status: s.status}
	}
	s.ticks++

	var events []Event

	s.paddle.Update()

	dx, dy := s.ball.Velocity()
	s.ball.Update()
	if ndx, ndy := s.ball.Velocity(); ndx != dx || ndy != dy {
		events = append(events, s.event(EventWallBounce))
	}

	events = s.checkCollisions(events)

	// Ball lost off the bottom
	lastLife := false
	if s.ball.Bounds().Bottom() >= s.canvas.Height() {
		s.lives--
		events = append(events, s.event(EventLifeLost))
		if s.lives > 0 {
			s.ball.Destroy()
			s.ball = s.spawnBall()
		} else {
			lastLife = true
		}
	}

	// Victory is checked regardless of the life lost above
	switch {
	case len(s.bricks) == 0:
		s.status = StatusVictory
		events = append(events, s.event(EventVictory))
	case lastLife:
		s.status = StatusGameOver
		events = append(events, s.event(EventGameOver))
	}

	return TickResult{
		Status: s.status,
		Events: events,
		Rearm:  s.status == StatusRunning,
	}
}

// checkCollisions bounces the ball off the paddle and at most one brick.
func (s *Session) checkCollisions(events []Event) []Event {
	ball := s.ball.Bounds()

	if ball.Overlaps(s.paddle.Bounds()) {
		s.ball.BounceUp()
		events = append(events, s.event(EventPaddleBounce))
	}

	for i, brick := range s.bricks {
		if !ball.Overlaps(brick.Bounds()) {
			continue
		}

		row, col := brick.Cell()
		if brick.Hit() {
			brick.Destroy()
			s.bricks = append(s.bricks[:i], s.bricks[i+1:]...)
			s.score += s.cfg.Bricks.Points
			events = append(events, s.brickEvent(EventBrickDestroyed, row, col))
		} else {
			events = append(events, s.brickEvent(EventBrickHit, row, col))
		}
		s.ball.Reflect()
		break
	}

	return events
}

func (s *Session) event(kind EventKind) Event {
	return Event{Kind: kind, Row: -1, Col: -1, Score: s.score, Lives: s.lives}
}

func (s *Session) brickEvent(kind EventKind, row, col int) Event {
	ev := s.event(kind)
	ev.Row, ev.Col = row, col
	return ev
}

// Difficulty returns the preset this session was created with.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Config returns the configuration this session was created with.
func (s *Session) Config() config.Config { return s.cfg }

// Canvas returns the playing field dimensions.
func (s *Session) Canvas() Canvas { return s.canvas }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Ticks returns how many ticks have run.
func (s *Session) Ticks() int { return s.ticks }

// Status returns the lifecycle state.
func (s *Session) Status() Status { return s.status }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.status == StatusPaused }

// Paddle returns the session's paddle.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Ball returns the ball currently in play.
func (s *Session) Ball() *Ball { return s.ball }

// Bricks returns the remaining bricks in scan order. The slice must not be modified.
func (s *Session) Bricks() []*Brick { return s.bricks }
