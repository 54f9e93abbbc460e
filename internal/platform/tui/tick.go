// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping and the tick scheduler.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. The timestamp is
// used to measure elapsed wall time between ticks.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Bubble Tea drops the pending tick on quit, which is
// what cancels the loop when the session ends.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
