package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bricks/internal/core"
)

// holdExpiredMsg reports that a held direction saw no key repeat in time.
type holdExpiredMsg struct {
	gen uint64
}

// holdTracker synthesizes key releases. Terminals only report presses,
// repeated while the key is held, so a direction counts as released once
// no repeat arrives within the timeout.
type holdTracker struct {
	timeout time.Duration
	action  core.Action
	gen     uint64
}

func newHoldTracker(timeout time.Duration) holdTracker {
	return holdTracker{timeout: timeout}
}

// press records a key press or repeat of a direction and returns the
// command that fires the release check. Returns nil when disabled.
func (h *holdTracker) press(a core.Action) tea.Cmd {
	h.gen++
	if h.timeout <= 0 {
		h.action = core.ActionNone
		return nil
	}
	h.action = a

	gen := h.gen
	return tea.Tick(h.timeout, func(time.Time) tea.Msg {
		return holdExpiredMsg{gen: gen}
	})
}

// expire returns the direction to release if msg is the latest check.
func (h *holdTracker) expire(msg holdExpiredMsg) (core.Action, bool) {
	if msg.gen != h.gen || h.action == core.ActionNone {
		return core.ActionNone, false
	}
	a := h.action
	h.action = core.ActionNone
	return a, true
}

// clear forgets the held direction. Pending checks become stale.
func (h *holdTracker) clear() {
	h.gen++
	h.action = core.ActionNone
}

// held returns the direction currently considered held.
func (h *holdTracker) held() core.Action {
	return h.action
}
