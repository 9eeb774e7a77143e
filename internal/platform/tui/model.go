package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
	"github.com/vovakirdan/tui-bricks/internal/loop"
)

// GameModel is the Bubble Tea model for one difficulty. Restarting keeps
// the model and replaces the session.
type GameModel struct {
	session  *bricks.Session
	renderer *Renderer
	keys     KeyMap
	logger   *log.Logger
	interval time.Duration

	sched   loop.Scheduler
	initSeq uint64
	hold    holdTracker
	mouse   core.Action // Direction held with an on-screen button

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model running a fresh session. A nil logger
// discards output.
func NewGameModel(cfg config.Config, difficulty config.Difficulty, rt core.RuntimeConfig, logger *log.Logger) (GameModel, error) {
	session, err := bricks.NewSession(cfg, difficulty)
	if err != nil {
		return GameModel{}, fmt.Errorf("tui: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	interval := rt.TickInterval
	if interval <= 0 {
		interval = cfg.TickInterval()
	}

	m := GameModel{
		session:  session,
		renderer: NewRenderer(rt.ScreenW, rt.ScreenH),
		keys:     DefaultKeyMap(),
		logger:   logger,
		interval: interval,
		hold:     newHoldTracker(cfg.HoldTimeout()),
	}
	// Init has a value receiver, so the first tick is armed here.
	m.initSeq, _ = m.sched.Arm()
	m.syncKeys()

	logger.Info("session started", "difficulty", difficulty, "bricks", len(session.Bricks()))
	return m, nil
}

// Init starts the tick cycle.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.interval, m.initSeq)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case holdExpiredMsg:
		if a, ok := m.hold.expire(msg); ok && m.mouse == core.ActionNone {
			m.session.HandleInput(core.Release(a))
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.mouse = core.ActionNone
		m.session.HandleInput(core.Press(a))
		cmd := m.hold.press(a)
		return m, cmd

	case core.ActionStop:
		m.hold.clear()
		m.session.HandleInput(core.Press(a))

	case core.ActionPause:
		return m.togglePause()

	case core.ActionRestart:
		return m.restart()

	case core.ActionBack:
		m.backToMenu = true
		m.logger.Info("back to menu", "score", m.session.Score(), "status", m.session.Status())
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse maps clicks on the on-screen buttons. Mouse release is
// reported by the terminal, so button holds need no timeout.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		a, ok := m.renderer.ButtonAt(msg.X, msg.Y, m.session.Paused())
		if !ok {
			return m, nil
		}
		if a == core.ActionPause {
			return m.togglePause()
		}
		m.hold.clear()
		m.mouse = a
		m.session.HandleInput(core.Press(a))

	case tea.MouseActionRelease:
		if m.mouse != core.ActionNone {
			m.session.HandleInput(core.Release(m.mouse))
			m.mouse = core.ActionNone
		}
	}

	return m, nil
}

// handleTick runs one simulation step and re-arms the next one while the
// session keeps running.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Fire(msg.Seq) {
		return m, nil
	}

	res := m.session.Tick()
	m.logEvents(res.Events)
	if !res.Rearm {
		m.syncKeys()
		return m, nil
	}

	seq, ok := m.sched.Arm()
	if !ok {
		return m, nil
	}
	return m, tickCmd(m.interval, seq)
}

// togglePause flips the session and, on resume, arms a tick unless one is
// still pending from before the pause.
func (m GameModel) togglePause() (tea.Model, tea.Cmd) {
	resumed := m.session.TogglePause()
	m.syncKeys()
	m.logger.Debug("pause toggled", "paused", m.session.Paused())

	if !resumed {
		return m, nil
	}
	seq, ok := m.sched.Arm()
	if !ok {
		return m, nil
	}
	return m, tickCmd(m.interval, seq)
}

// restart replaces a finished session with a fresh one of the same
// difficulty.
func (m GameModel) restart() (tea.Model, tea.Cmd) {
	if !m.session.Status().Terminal() {
		return m, nil
	}

	next, err := m.session.Restart()
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		return m, nil
	}
	m.session = next
	m.hold.clear()
	m.mouse = core.ActionNone
	m.syncKeys()
	m.logger.Info("session restarted", "difficulty", next.Difficulty())

	m.sched.Cancel()
	seq, _ := m.sched.Arm()
	return m, tickCmd(m.interval, seq)
}

// syncKeys enables the bindings that make sense in the current state,
// which also drives what the help bar shows.
func (m *GameModel) syncKeys() {
	status := m.session.Status()
	m.keys.Pause.SetEnabled(!status.Terminal())
	m.keys.Restart.SetEnabled(status.Terminal())
	m.keys.Back.SetEnabled(status.Terminal() || status == bricks.StatusPaused)
}

func (m GameModel) logEvents(events []bricks.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case bricks.EventGameOver, bricks.EventVictory:
			m.logger.Info("session finished",
				"outcome", ev.Kind,
				"score", ev.Score,
				"ticks", m.session.Ticks(),
			)
		case bricks.EventLifeLost:
			m.logger.Info("life lost", "lives", ev.Lives)
		case bricks.EventBrickHit, bricks.EventBrickDestroyed:
			m.logger.Debug(ev.Kind.String(), "row", ev.Row, "col", ev.Col, "score", ev.Score)
		}
	}
}

// pressed returns the direction the paddle is moving, for button highlight.
func (m GameModel) pressed() core.Action {
	switch m.session.Paddle().Movement() {
	case -1:
		return core.ActionLeft
	case 1:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}

// saveScreenshot saves the current frame as plain text.
func (m GameModel) saveScreenshot() {
	m.renderer.Draw(m.session, m.pressed())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot: no home directory", "error", err)
		return
	}
	dir := filepath.Join(home, ".bricks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("bricks_%s_%s.txt", m.session.Difficulty(), timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.View(m.session, m.keys, m.pressed())
}

// Session returns the session currently played.
func (m GameModel) Session() *bricks.Session {
	return m.session
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameResult describes how a game program ended.
type GameResult struct {
	Difficulty config.Difficulty
	Score      int
	Status     bricks.Status
	BackToMenu bool
	Runtime    core.RuntimeConfig
}

// Run plays one difficulty in its own Bubble Tea program.
func Run(cfg config.Config, difficulty config.Difficulty, rt core.RuntimeConfig, logger *log.Logger, opts ...tea.ProgramOption) (GameResult, error) {
	model, err := NewGameModel(cfg, difficulty, rt, logger)
	if err != nil {
		return GameResult{}, err
	}

	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}, opts...)

	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return GameResult{}, fmt.Errorf("tui: game: %w", err)
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{Difficulty: difficulty, Runtime: rt}, nil
	}

	rt.ScreenW = m.renderer.Screen().Width()
	rt.ScreenH = m.renderer.Screen().Height() + helpRows
	return GameResult{
		Difficulty: difficulty,
		Score:      m.session.Score(),
		Status:     m.session.Status(),
		BackToMenu: m.BackToMenu(),
		Runtime:    rt,
	}, nil
}
