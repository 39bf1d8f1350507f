package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Enter        key.Binding
	Quit         key.Binding
	Toggle       key.Binding
	SelectAll    key.Binding
	ClearSel     key.Binding
	Search       key.Binding
	Help         key.Binding
	Project      key.Binding
	Delete       key.Binding
	DeleteOlder  key.Binding
	Export       key.Binding
	Archive      key.Binding
	Refresh      key.Binding
	SortField    key.Binding
	SortReverse  key.Binding
	CopyResume   key.Binding
	CopyPath     key.Binding
	OpenEditor   key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("k/up", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("j/dn", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "preview"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	ClearSel: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "clear selection"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Project: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "project filter"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	DeleteOlder: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete old"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export md"),
	),
	Archive: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "archive"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	SortField: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort field"),
	),
	SortReverse: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "sort order"),
	),
	CopyResume: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy resume cmd"),
	),
	CopyPath: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy path"),
	),
	OpenEditor: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "open in $EDITOR"),
	),
	NextMatch: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	PrevMatch: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "prev match"),
	),
}
