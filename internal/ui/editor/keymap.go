package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	moveUp    key.Binding
	moveDown  key.Binding
	addRoot   key.Binding
	addChild  key.Binding
	rename    key.Binding
	cycleType key.Binding
	toggle    key.Binding
	remove    key.Binding

	// while renaming
	commit key.Binding
	cancel key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:   key.NewBinding(key.WithKeys("up", "k")),
		down: key.NewBinding(key.WithKeys("down", "j")),
		moveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/↓", "reorder"),
		),
		moveDown: key.NewBinding(key.WithKeys("shift+down", "J")),
		addRoot: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add"),
		),
		addChild: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add child"),
		),
		rename: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "rename"),
		),
		cycleType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "enable/disable"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		commit: key.NewBinding(key.WithKeys("enter")),
		cancel: key.NewBinding(key.WithKeys("esc")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.addRoot,
		k.addChild,
		k.rename,
		k.cycleType,
		k.toggle,
		k.remove,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.ShortHelp(),
		{k.moveUp},
	}
}
