// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and score persistence.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after intervalMs.
func tickCmd(intervalMs int) tea.Cmd {
	interval := time.Duration(intervalMs) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
