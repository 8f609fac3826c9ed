package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMoveUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMoveDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMoveRight},
		{"w", runes("w"), core.ActionAttackUp},
		{"a", runes("a"), core.ActionAttackLeft},
		{"s", runes("s"), core.ActionAttackDown},
		{"d", runes("d"), core.ActionAttackRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionPause},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionCancel},
		{"1", runes("1"), core.ActionLevel1},
		{"3", runes("3"), core.ActionLevel3},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
