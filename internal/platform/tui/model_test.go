package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickInterval: 16 * time.Millisecond}

func newTestModel(t *testing.T, cfg config.Config) GameModel {
	t.Helper()
	m, err := NewGameModel(cfg, config.DifficultyMedium, testRuntime, nil)
	if err != nil {
		t.Fatalf("NewGameModel failed: %v", err)
	}
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

// quickLossConfig loses the only life on the first tick: the ball spawns
// touching the bottom edge.
func quickLossConfig() config.Config {
	cfg := config.Default()
	cfg.Canvas.Height = 345
	cfg.Gameplay.Lives = 1
	return cfg
}

func TestNewGameModelUnknownDifficulty(t *testing.T) {
	_, err := NewGameModel(config.Default(), config.Difficulty("nightmare"), testRuntime, nil)
	if err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestTickRearmsWhileRunning(t *testing.T) {
	m := newTestModel(t, config.Default())
	if m.Init() == nil {
		t.Fatal("Init() should schedule the first tick")
	}

	m, cmd := update(t, m, TickMsg{Seq: m.initSeq})
	if m.Session().Ticks() != 1 {
		t.Errorf("ticks = %d, expected 1", m.Session().Ticks())
	}
	if cmd == nil || !m.sched.Armed() {
		t.Error("a running session should re-arm the tick")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t, config.Default())

	m, cmd := update(t, m, TickMsg{Seq: m.initSeq + 7})
	if m.Session().Ticks() != 0 || cmd != nil {
		t.Errorf("stale tick ran: ticks=%d cmd=%v", m.Session().Ticks(), cmd != nil)
	}
}

func TestPauseResumeKeepsSingleTickChain(t *testing.T) {
	m := newTestModel(t, config.Default())

	m, _ = update(t, m, spaceKey)
	if !m.Session().Paused() {
		t.Fatal("space should pause")
	}

	// The first tick is still pending, so resuming must not start another
	m, cmd := update(t, m, spaceKey)
	if m.Session().Paused() {
		t.Fatal("second space should resume")
	}
	if cmd != nil {
		t.Error("resume armed a second tick while one was pending")
	}

	m, cmd = update(t, m, TickMsg{Seq: m.initSeq})
	if m.Session().Ticks() != 1 || cmd == nil {
		t.Errorf("pending tick should run and re-arm: ticks=%d", m.Session().Ticks())
	}
}

func TestPauseStopsChainAndResumeRestartsIt(t *testing.T) {
	m := newTestModel(t, config.Default())

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{Seq: m.initSeq})
	if m.Session().Ticks() != 0 {
		t.Error("a paused session must not tick")
	}
	if cmd != nil || m.sched.Armed() {
		t.Error("the tick chain should stop while paused")
	}

	m, cmd = update(t, m, runeKey('p'))
	if cmd == nil || !m.sched.Armed() {
		t.Error("resume should arm a tick")
	}
}

func TestDirectionKeysAndSynthesizedRelease(t *testing.T) {
	m := newTestModel(t, config.Default())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Session().Paddle().Movement() != -1 {
		t.Fatalf("movement = %d, expected -1", m.Session().Paddle().Movement())
	}
	if cmd == nil {
		t.Error("a direction key should schedule its release")
	}
	if m.pressed() != core.ActionLeft {
		t.Errorf("pressed() = %s, expected Left", m.pressed())
	}

	m, _ = update(t, m, holdExpiredMsg{gen: m.hold.gen})
	if m.Session().Paddle().Movement() != 0 {
		t.Errorf("movement after release = %d, expected 0", m.Session().Paddle().Movement())
	}

	// Last write wins
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Session().Paddle().Movement() != 1 {
		t.Errorf("movement = %d, expected 1", m.Session().Paddle().Movement())
	}

	m, _ = update(t, m, runeKey('s'))
	if m.Session().Paddle().Movement() != 0 {
		t.Errorf("stop key: movement = %d, expected 0", m.Session().Paddle().Movement())
	}
}

func TestMouseButtons(t *testing.T) {
	m := newTestModel(t, config.Default())
	buttons := m.renderer.buttons(false)
	left, pause := buttons[0], buttons[1]

	press := func(b button) tea.MouseMsg {
		return tea.MouseMsg{X: b.area.X, Y: b.area.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ = update(t, m, press(left))
	if m.Session().Paddle().Movement() != -1 {
		t.Fatalf("left button: movement = %d", m.Session().Paddle().Movement())
	}

	// Button holds ignore the key hold timeout
	m, _ = update(t, m, holdExpiredMsg{gen: m.hold.gen})
	if m.Session().Paddle().Movement() != -1 {
		t.Error("hold timeout released a mouse-held button")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	if m.Session().Paddle().Movement() != 0 {
		t.Errorf("release: movement = %d, expected 0", m.Session().Paddle().Movement())
	}

	m, _ = update(t, m, press(pause))
	if !m.Session().Paused() {
		t.Error("pause button should pause")
	}
	if !strings.Contains(m.View(), "[Resume]") {
		t.Error("pause button should read Resume while paused")
	}

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Session().Paused() {
		t.Error("a click outside the buttons changed the state")
	}
}

func TestRestartOnlyAfterTerminalState(t *testing.T) {
	m := newTestModel(t, quickLossConfig())

	m, _ = update(t, m, runeKey('r'))
	if m.Session().Status() != bricks.StatusRunning {
		t.Fatal("restart must be ignored while running")
	}

	m, cmd := update(t, m, TickMsg{Seq: m.initSeq})
	if m.Session().Status() != bricks.StatusGameOver {
		t.Fatalf("status = %s, expected game over", m.Session().Status())
	}
	if cmd != nil {
		t.Error("a finished session must not re-arm")
	}
	if !strings.Contains(m.View(), "R: Play again  B: Menu") {
		t.Error("game over overlay should offer play again")
	}

	old := m.Session()
	m, cmd = update(t, m, runeKey('r'))
	if m.Session() == old {
		t.Fatal("restart should build a new session")
	}
	if m.Session().Status() != bricks.StatusRunning || m.Session().Ticks() != 0 {
		t.Errorf("restarted session: status=%s ticks=%d", m.Session().Status(), m.Session().Ticks())
	}
	if m.Session().Difficulty() != config.DifficultyMedium {
		t.Errorf("difficulty = %s, expected medium", m.Session().Difficulty())
	}
	if cmd == nil || !m.sched.Armed() {
		t.Error("restart should arm a tick")
	}
}

func TestBackToMenu(t *testing.T) {
	m := newTestModel(t, config.Default())

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back must be ignored while running")
	}

	m, _ = update(t, m, spaceKey)
	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() || cmd == nil {
		t.Error("back while paused should leave the game")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, config.Default())

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestSessionModelFlow(t *testing.T) {
	m := NewSessionModel(config.Default(), testRuntime, nil)

	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		next, cmd := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = sm
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	if cmd := step(tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("starting a game should schedule its first tick")
	}
	if !m.InGame() {
		t.Fatal("enter should start a game")
	}
	if d := m.game.Session().Difficulty(); d != config.DifficultyHard {
		t.Errorf("difficulty = %s, expected hard", d)
	}

	step(spaceKey)
	step(runeKey('b'))
	if m.InGame() {
		t.Fatal("back should return to the menu")
	}
	if !strings.Contains(m.View(), "Select Difficulty:") {
		t.Error("menu should be shown after leaving a game")
	}

	step(runeKey('q'))
	if m.View() != "" {
		t.Error("quit should clear the view")
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(config.Default(), testRuntime)

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	// Cursor starts on medium and stops at both ends
	press(tea.KeyMsg{Type: tea.KeyUp})
	press(tea.KeyMsg{Type: tea.KeyUp})
	press(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || *m.Selected() != config.DifficultyEasy {
		t.Fatalf("Selected() = %v, expected easy", m.Selected())
	}

	view := NewMenuModel(config.Default(), testRuntime).View()
	for _, want := range []string{"Easy", "Medium", "Hard", "Select Difficulty:"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}
