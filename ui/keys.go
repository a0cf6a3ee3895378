package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Tab   key.Binding
	Help  key.Binding
	Back  key.Binding

	// Error generation
	Generate      key.Binding
	CycleCategory key.Binding

	// Error handling
	Dismiss key.Binding
	Recover key.Binding
	Action1 key.Binding
	Action2 key.Binding
	Action3 key.Binding

	// Scenario control
	StartScenario key.Binding
	StopScenario  key.Binding

	// Engine control
	ToggleEnabled key.Binding
	Reset         key.Binding
	Export        key.Binding

	// Application control
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to dashboard"),
		),

		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "generate random error"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next error category"),
		),

		Dismiss: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss error"),
		),
		Recover: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "begin recovery"),
		),
		Action1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "first action"),
		),
		Action2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "second action"),
		),
		Action3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "third action"),
		),

		StartScenario: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start next scenario"),
		),
		StopScenario: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "stop scenario"),
		),

		ToggleEnabled: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "toggle error handling"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset tracking"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export history"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
