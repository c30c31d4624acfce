// Package tui provides the Bubble Tea frontend: it feeds key messages into the
// input queue, steps the game machine on every tick and renders the canvas.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends the next tick on the next interval
// boundary of the system clock, so time spent in Step does not delay later
// ticks.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Every(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
