// Package tui provides the Bubble Tea front end for the brick breaker.
// It maps keys, mouse clicks and on-screen buttons to input events,
// schedules simulation ticks and draws the session into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Seq identifies the
// scheduled tick so stale ones can be dropped.
type TickMsg struct {
	Seq  uint64
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
// The handler re-arms it; nothing here repeats.
func tickCmd(interval time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Seq: seq, Time: t}
	})
}
