package main

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the controller matches against. Prompt modes
// only use confirm, cancel and backspace; any other printable key is text.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Create     key.Binding
	MoveInto   key.Binding
	MoveOut    key.Binding
	MoveMarked key.Binding
	Select     key.Binding
	CopyPath   key.Binding
	Open       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Backspace  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Create: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "create"),
		),
		MoveInto: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move into"),
		),
		MoveOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "move out"),
		),
		MoveMarked: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "move bookmarked"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		CopyPath: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy path"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "delete char"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the status bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp implements help.KeyMap for the help window.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.MoveInto, k.MoveOut},
		{k.Select, k.Create, k.MoveMarked, k.CopyPath, k.Open},
		{k.Cancel, k.Help, k.Quit},
	}
}
