package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-zelda/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	AttackUp    key.Binding
	AttackDown  key.Binding
	AttackLeft  key.Binding
	AttackRight key.Binding
	Pause       key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Level1      key.Binding
	Level2      key.Binding
	Level3      key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings: arrows move, WASD attack.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up"), key.WithHelp("←↑↓→", "move")),
		Down:        key.NewBinding(key.WithKeys("down")),
		Left:        key.NewBinding(key.WithKeys("left")),
		Right:       key.NewBinding(key.WithKeys("right")),
		AttackUp:    key.NewBinding(key.WithKeys("w"), key.WithHelp("wasd", "throw sword")),
		AttackDown:  key.NewBinding(key.WithKeys("s")),
		AttackLeft:  key.NewBinding(key.WithKeys("a")),
		AttackRight: key.NewBinding(key.WithKeys("d")),
		Pause:       key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Level1:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1/2/3", "level")),
		Level2:      key.NewBinding(key.WithKeys("2")),
		Level3:      key.NewBinding(key.WithKeys("3")),
		Screenshot:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Level1, k.Up, k.AttackUp, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.AttackUp, k.Pause},
		{k.Level1, k.Confirm, k.Cancel},
		{k.Screenshot, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Quit, core.ActionQuit},
		{k.Up, core.ActionMoveUp},
		{k.Down, core.ActionMoveDown},
		{k.Left, core.ActionMoveLeft},
		{k.Right, core.ActionMoveRight},
		{k.AttackUp, core.ActionAttackUp},
		{k.AttackDown, core.ActionAttackDown},
		{k.AttackLeft, core.ActionAttackLeft},
		{k.AttackRight, core.ActionAttackRight},
		{k.Pause, core.ActionPause},
		{k.Confirm, core.ActionConfirm},
		{k.Cancel, core.ActionCancel},
		{k.Level1, core.ActionLevel1},
		{k.Level2, core.ActionLevel2},
		{k.Level3, core.ActionLevel3},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}
